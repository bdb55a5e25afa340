// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// record server and the client CLI. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, the acting owner and
	// the protection of private keys at rest.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the record
	// database, the local key store and the blob directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the record server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds concurrency and caching settings for the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// OwnerID identifies the clinic user acting on this device. Key pairs
	// and records are scoped to it.
	// Env: APP_OWNER_ID
	OwnerID int64 `env:"OWNER_ID"`

	// KeyPassphrase, when set, seals private keys in the local key store
	// with an age scrypt recipient. Must be kept confidential.
	// Env: APP_KEY_PASSPHRASE
	KeyPassphrase string `env:"KEY_PASSPHRASE"`

	// AgeWorkFactor is the scrypt work factor (log2 N) used when sealing.
	// Env: APP_AGE_WORK_FACTOR
	AgeWorkFactor int `env:"AGE_WORK_FACTOR"`

	// LogFile is where the client writes its logs. The terminal is owned by
	// the CLI output and the note browser.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the record server database settings.
	DB DB `envPrefix:"DB_"`

	// Keys holds the local key pair store settings.
	Keys Keys `envPrefix:"KEYS_"`

	// Files holds the blob directory used by the record server.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the record server database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Keys holds settings of the device-local key pair store.
type Keys struct {
	// Backend is either "sqlite" or "badger".
	// Env: STORAGE_KEYS_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the SQLite file or the Badger directory.
	// Env: STORAGE_KEYS_PATH
	Path string `env:"PATH"`
}

// Files holds file-system settings for encrypted attachment blobs.
type Files struct {
	// BlobDir is the directory where encrypted blobs are written.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound settings for the record server.
type Adapter struct {
	// ServerURL is the base URL of the record server.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRetries is the number of retries on transient failures.
	// Env: ADAPTER_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
}

// Workers holds client-side concurrency and caching settings.
type Workers struct {
	// DecryptConcurrency limits parallel envelope decryption in listings.
	// Env: WORKERS_DECRYPT_CONCURRENCY
	DecryptConcurrency int `env:"DECRYPT_CONCURRENCY"`

	// KeyCacheTTL is how long an opened key pair stays in memory.
	// Env: WORKERS_KEY_CACHE_TTL
	KeyCacheTTL time.Duration `env:"KEY_CACHE_TTL"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
