// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported by the CLI.
	Version string
	// OwnerID is the default owner; the CLI may override it.
	OwnerID int64
	// KeyPassphrase seals private keys at rest when non-empty.
	KeyPassphrase string
	// AgeWorkFactor is the scrypt work factor for sealing.
	AgeWorkFactor int
	// LogFile receives the client log.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the record server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// MaxRetries is the retry budget for transient failures.
	MaxRetries int
}

// ClientKeys contains local key pair store settings.
type ClientKeys struct {
	// Backend is [KeysBackendSQLite] or [KeysBackendBadger].
	Backend string
	// Path is the SQLite file or Badger directory.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Keys holds the local key store settings.
	Keys ClientKeys
}

// ClientWorkers contains client concurrency settings.
type ClientWorkers struct {
	// DecryptConcurrency limits parallel decryption in listings.
	DecryptConcurrency int
	// KeyCacheTTL is how long opened key pairs stay cached.
	KeyCacheTTL time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the record server endpoint and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains concurrency settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Command-line handling belongs to the CLI,
// so only defaults, environment and the JSON file (CONFIG) are read here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.Validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:       cfg.App.Version,
			OwnerID:       cfg.App.OwnerID,
			KeyPassphrase: cfg.App.KeyPassphrase,
			AgeWorkFactor: cfg.App.AgeWorkFactor,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			MaxRetries:     cfg.Adapter.MaxRetries,
		},
		Storage: ClientStorage{
			Keys: ClientKeys{
				Backend: cfg.Storage.Keys.Backend,
				Path:    cfg.Storage.Keys.Path,
			},
		},
		Workers: ClientWorkers{
			DecryptConcurrency: cfg.Workers.DecryptConcurrency,
			KeyCacheTTL:        cfg.Workers.KeyCacheTTL,
		},
	}
}
