// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// KeysBackendSQLite stores key pairs in a local SQLite file.
	KeysBackendSQLite = "sqlite"
	// KeysBackendBadger stores key pairs in a local Badger directory.
	KeysBackendBadger = "badger"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AgeWorkFactor: 18,
			LogFile:       "clinic-vault.log",
		},
		Storage: Storage{
			Keys: Keys{
				Backend: KeysBackendSQLite,
				Path:    "clinic-vault-keys.db",
			},
			Files: Files{
				BlobDir: "blobs",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
			MaxRetries:     3,
		},
		Workers: Workers{
			DecryptConcurrency: 8,
			KeyCacheTTL:        5 * time.Minute,
		},
	}
}
