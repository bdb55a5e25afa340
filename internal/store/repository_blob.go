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

// blobRepository keeps blob metadata in PostgreSQL. The ciphertext itself
// goes to a [BlobFileStorage].
type blobRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlobRepository constructs a [BlobRepository] backed by db.
func NewBlobRepository(db *DB, logger *logger.Logger) BlobRepository {
	return &blobRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBlob implements [BlobRepository]. Ciphertext is ignored.
func (r *blobRepository) SaveBlob(ctx context.Context, blob models.EncryptedBlob) (models.EncryptedBlob, error) {
	createdAt := time.Now().UTC()
	if blob.CreatedAt != nil {
		createdAt = *blob.CreatedAt
	}

	var saved time.Time
	err := r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, insertBlob,
			blob.ID,
			blob.OwnerID,
			blob.Purpose.String(),
			blob.Name,
			blob.WrappedKey,
			blob.Size,
			createdAt,
		).Scan(&saved)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blobRepository.SaveBlob").
			Int64("owner_id", blob.OwnerID).
			Str("blob_id", blob.ID).
			Msg("failed to insert blob")
		if isUniqueViolation(err) {
			return models.EncryptedBlob{}, ErrRecordAlreadyExists
		}
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	blob.CreatedAt = &saved
	blob.Ciphertext = nil
	return blob, nil
}

// GetBlob implements [BlobRepository]. Ciphertext is left empty.
func (r *blobRepository) GetBlob(ctx context.Context, ownerID int64, id string) (models.EncryptedBlob, error) {
	var blob models.EncryptedBlob

	err := r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, selectBlob, ownerID, id).Scan(
			&blob.ID,
			&blob.OwnerID,
			&blob.Purpose,
			&blob.Name,
			&blob.WrappedKey,
			&blob.Size,
			&blob.CreatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedBlob{}, ErrBlobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blobRepository.GetBlob").
			Int64("owner_id", ownerID).
			Str("blob_id", id).
			Msg("failed to scan blob row")
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

// DeleteBlob implements [BlobRepository].
func (r *blobRepository) DeleteBlob(ctx context.Context, ownerID int64, id string) error {
	var affected int64

	err := r.withRetry(ctx, func() error {
		result, err := r.DB.ExecContext(ctx, deleteBlob, ownerID, id)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlobNotFound
	}

	return nil
}
