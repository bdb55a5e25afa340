// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// Validate checks that the client view is usable.
func (cfg *ClientConfig) Validate() error {
	switch cfg.Storage.Keys.Backend {
	case KeysBackendSQLite, KeysBackendBadger:
	default:
		return fmt.Errorf("%w: unknown key store backend %q", ErrInvalidStorageConfigs, cfg.Storage.Keys.Backend)
	}
	if cfg.Storage.Keys.Path == "" {
		return fmt.Errorf("%w: empty key store path", ErrInvalidStorageConfigs)
	}

	if u, err := url.Parse(cfg.Adapter.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid server url %q", ErrInvalidAdapterConfigs, cfg.Adapter.ServerURL)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.MaxRetries < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.DecryptConcurrency <= 0 || cfg.Workers.KeyCacheTTL < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.OwnerID < 0 || cfg.App.AgeWorkFactor <= 0 || cfg.App.AgeWorkFactor > 30 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// Validate checks that the server view is usable.
func (cfg *ServerConfig) Validate() error {
	if cfg.DSN == "" || cfg.BlobDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
