// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the record server view of [StructuredConfig].
type ServerConfig struct {
	Version        string
	HTTPAddress    string
	RequestTimeout time.Duration
	DSN            string
	BlobDir        string
}

// GetServerConfig loads the configuration from defaults, env, args and JSON
// and returns the validated server view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.Validate()
}

// NewServerConfig maps the server-relevant fields of cfg.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Version:        cfg.App.Version,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		BlobDir:        cfg.Storage.Files.BlobDir,
	}
}
