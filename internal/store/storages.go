// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/config"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
)

// Storages groups the record server repositories.
type Storages struct {
	RecordRepository RecordRepository
	BlobRepository   BlobRepository
	BlobFiles        BlobFileStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and prepares the
// blob directory.
func NewStorages(ctx context.Context, cfg *config.ServerConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	files, err := NewBlobFileStorage(cfg.BlobDir, logger)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		RecordRepository: NewRecordRepository(db, logger),
		BlobRepository:   NewBlobRepository(db, logger),
		BlobFiles:        files,
		db:               db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
