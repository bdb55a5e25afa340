// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version       string `json:"version"`
		OwnerID       int64  `json:"owner_id"`
		KeyPassphrase string `json:"key_passphrase"`
		AgeWorkFactor int    `json:"age_work_factor"`
		LogFile       string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Keys struct {
			Backend string `json:"backend"`
			Path    string `json:"path"`
		} `json:"keys,omitempty"`

		Files struct {
			BlobDir string `json:"blob_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxRetries     int      `json:"max_retries"`
	} `json:"adapter,omitempty"`

	Workers struct {
		DecryptConcurrency int      `json:"decrypt_concurrency"`
		KeyCacheTTL        Duration `json:"key_cache_ttl"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			OwnerID:       jsonCfg.App.OwnerID,
			KeyPassphrase: jsonCfg.App.KeyPassphrase,
			AgeWorkFactor: jsonCfg.App.AgeWorkFactor,
			LogFile:       jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Keys: Keys{
				Backend: jsonCfg.Storage.Keys.Backend,
				Path:    jsonCfg.Storage.Keys.Path,
			},
			Files: Files{
				BlobDir: jsonCfg.Storage.Files.BlobDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			ServerURL:      jsonCfg.Adapter.ServerURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			MaxRetries:     jsonCfg.Adapter.MaxRetries,
		},
		Workers: Workers{
			DecryptConcurrency: jsonCfg.Workers.DecryptConcurrency,
			KeyCacheTTL:        time.Duration(jsonCfg.Workers.KeyCacheTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
