// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/config"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
)

// ClientStorages groups all client-side storage repositories.
type ClientStorages struct {
	// KeyPairRepository holds this device's key pairs.
	KeyPairRepository KeyPairRepository
}

// NewClientStorages opens the key store selected by cfg.Keys.Backend. For
// SQLite it also runs the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("backend", cfg.Keys.Backend).Msg("creating client storages...")

	switch cfg.Keys.Backend {
	case config.KeysBackendBadger:
		repo, err := NewBadgerKeyPairRepository(cfg.Keys.Path, logger)
		if err != nil {
			return nil, err
		}
		return &ClientStorages{KeyPairRepository: repo}, nil

	case config.KeysBackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.Keys.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{KeyPairRepository: NewKeyPairRepository(db, logger)}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidStorageConfigs, cfg.Keys.Backend)
	}
}

// Close releases the key store.
func (s *ClientStorages) Close() error {
	return s.KeyPairRepository.Close()
}
