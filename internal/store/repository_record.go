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

// recordRepository is the PostgreSQL-backed [RecordRepository]. It only ever
// sees envelopes: encrypted content and wrapped keys.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveRecord implements [RecordRepository].
func (r *recordRepository) SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	createdAt := time.Now().UTC()
	if record.CreatedAt != nil {
		createdAt = *record.CreatedAt
	}

	var saved models.EncryptedRecord
	err := r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, insertRecord,
			record.ID,
			record.OwnerID,
			record.Purpose.String(),
			record.EncryptedContent,
			record.WrappedKey,
			createdAt,
		).Scan(scanRecordDest(&saved)...)
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.SaveRecord").
			Int64("owner_id", record.OwnerID).
			Str("record_id", record.ID).
			Msg("failed to insert record")
		if isUniqueViolation(err) {
			return models.EncryptedRecord{}, ErrRecordAlreadyExists
		}
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedRecord{}, ErrRecordNotSaved
		}
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}

// GetRecord implements [RecordRepository].
func (r *recordRepository) GetRecord(ctx context.Context, ownerID int64, id string) (models.EncryptedRecord, error) {
	var record models.EncryptedRecord

	err := r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, selectRecord, ownerID, id).Scan(scanRecordDest(&record)...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedRecord{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "recordRepository.GetRecord").
			Int64("owner_id", ownerID).
			Str("record_id", id).
			Msg("failed to scan record row")
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// ListRecords implements [RecordRepository]. Results are ordered newest
// first.
func (r *recordRepository) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Int64("owner_id", filter.OwnerID).
			Msg("failed to create query")
		return nil, err
	}

	var records []models.EncryptedRecord
	err = r.withRetry(ctx, func() error {
		records, err = r.queryRecords(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.ListRecords").
			Int64("owner_id", filter.OwnerID).
			Str("purpose", filter.Purpose.String()).
			Msg("failed to list records")
		return nil, err
	}

	return records, nil
}

func (r *recordRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.EncryptedRecord, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.EncryptedRecord, 0, 50)
	for rows.Next() {
		var record models.EncryptedRecord
		if err = rows.Scan(scanRecordDest(&record)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// UpdateWrappedKey implements [RecordRepository].
func (r *recordRepository) UpdateWrappedKey(ctx context.Context, update models.WrappedKeyUpdate) error {
	return r.execOne(ctx, "recordRepository.UpdateWrappedKey", update.OwnerID, update.ID,
		updateWrappedKey, update.WrappedKey, update.OwnerID, update.ID)
}

// DeleteRecord implements [RecordRepository].
func (r *recordRepository) DeleteRecord(ctx context.Context, ownerID int64, id string) error {
	return r.execOne(ctx, "recordRepository.DeleteRecord", ownerID, id, deleteRecord, ownerID, id)
}

func (r *recordRepository) execOne(ctx context.Context, funcName string, ownerID int64, id, query string, args ...any) error {
	var affected int64

	err := r.withRetry(ctx, func() error {
		result, err := r.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", funcName).
			Int64("owner_id", ownerID).
			Str("record_id", id).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func scanRecordDest(record *models.EncryptedRecord) []any {
	return []any{
		&record.ID,
		&record.OwnerID,
		&record.Purpose,
		&record.EncryptedContent,
		&record.WrappedKey,
		&record.CreatedAt,
		&record.UpdatedAt,
	}
}
