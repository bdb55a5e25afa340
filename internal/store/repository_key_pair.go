// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/models"
)

// keyPairRepository is the SQLite-backed [KeyPairRepository].
type keyPairRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyPairRepository constructs a [KeyPairRepository] on top of an SQLite
// connection obtained from [NewConnectSQLite].
func NewKeyPairRepository(db *DB, logger *logger.Logger) KeyPairRepository {
	return &keyPairRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveKeyPair implements [KeyPairRepository]. INSERT OR IGNORE keeps the
// first pair written for an owner and purpose.
func (r *keyPairRepository) SaveKeyPair(ctx context.Context, pair models.StoredKeyPair) (bool, error) {
	log := logger.FromContext(ctx)

	createdAt := time.Now().UTC()
	if pair.CreatedAt != nil {
		createdAt = *pair.CreatedAt
	}

	result, err := r.DB.ExecContext(ctx, insertKeyPair,
		pair.OwnerID,
		pair.Purpose.String(),
		pair.PublicKey,
		pair.SealedPrivateKey,
		createdAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "keyPairRepository.SaveKeyPair").
			Int64("owner_id", pair.OwnerID).
			Str("purpose", pair.Purpose.String()).
			Msg("failed to insert key pair")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected == 1, nil
}

// GetKeyPair implements [KeyPairRepository].
func (r *keyPairRepository) GetKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) (models.StoredKeyPair, error) {
	log := logger.FromContext(ctx)

	var (
		pair      models.StoredKeyPair
		purposeDB string
		createdAt time.Time
	)

	err := r.DB.QueryRowContext(ctx, selectKeyPair, ownerID, purpose.String()).Scan(
		&pair.OwnerID,
		&purposeDB,
		&pair.PublicKey,
		&pair.SealedPrivateKey,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredKeyPair{}, ErrKeyPairNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "keyPairRepository.GetKeyPair").
			Int64("owner_id", ownerID).
			Str("purpose", purpose.String()).
			Msg("failed to scan key pair row")
		return models.StoredKeyPair{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	pair.Purpose = models.Purpose(purposeDB)
	pair.CreatedAt = &createdAt

	return pair, nil
}

// PurgePrivateKey implements [KeyPairRepository].
func (r *keyPairRepository) PurgePrivateKey(ctx context.Context, ownerID int64, purpose models.Purpose) error {
	return r.execOne(ctx, "keyPairRepository.PurgePrivateKey", purgePrivateKey, ownerID, purpose)
}

// DeleteKeyPair implements [KeyPairRepository].
func (r *keyPairRepository) DeleteKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) error {
	return r.execOne(ctx, "keyPairRepository.DeleteKeyPair", deleteKeyPair, ownerID, purpose)
}

func (r *keyPairRepository) execOne(ctx context.Context, funcName, query string, ownerID int64, purpose models.Purpose) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, ownerID, purpose.String())
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Str("purpose", purpose.String()).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrKeyPairNotFound
	}

	return nil
}

func (r *keyPairRepository) Close() error {
	return r.DB.Close()
}
