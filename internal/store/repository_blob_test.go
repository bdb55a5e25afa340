// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/models"
)

const blobID = "9a8b7c6d-1111-4222-8333-444455556666"

var blobColumns = []string{"id", "owner_id", "purpose", "name", "client_public_key", "size", "created_at"}

func testBlob() models.EncryptedBlob {
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	return models.EncryptedBlob{
		ID:         blobID,
		OwnerID:    10,
		Purpose:    models.PurposeAttachments,
		Name:       "scan.pdf",
		Ciphertext: []byte("ciphertext"),
		WrappedKey: "wk",
		Size:       10,
		CreatedAt:  &created,
	}
}

func TestBlobRepository_SaveBlob(t *testing.T) {
	blob := testBlob()

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blobs")).
					WithArgs(blob.ID, blob.OwnerID, "attachments", "scan.pdf", "wk", int64(10), *blob.CreatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(*blob.CreatedAt))
			},
		},
		{
			name: "duplicate id",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blobs")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: ErrRecordAlreadyExists,
		},
		{
			name: "transient error is retried",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blobs")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blobs")).
					WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(*blob.CreatedAt))
			},
		},
		{
			name: "permanent error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO blobs")).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation})
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setupMock(mock)

			repo := NewBlobRepository(newPostgresDBFromSQL(db), logger.Nop())
			saved, err := repo.SaveBlob(testContext(), blob)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, blob.ID, saved.ID)
				assert.Nil(t, saved.Ciphertext)
				require.NotNil(t, saved.CreatedAt)
				assert.True(t, blob.CreatedAt.Equal(*saved.CreatedAt))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBlobRepository_GetBlob(t *testing.T) {
	blob := testBlob()

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM blobs")).
			WithArgs(blob.OwnerID, blob.ID).
			WillReturnRows(sqlmock.NewRows(blobColumns).
				AddRow(blob.ID, blob.OwnerID, "attachments", blob.Name, blob.WrappedKey, blob.Size, *blob.CreatedAt))

		got, err := NewBlobRepository(newPostgresDBFromSQL(db), logger.Nop()).GetBlob(testContext(), blob.OwnerID, blob.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PurposeAttachments, got.Purpose)
		assert.Equal(t, "scan.pdf", got.Name)
		assert.Equal(t, "wk", got.WrappedKey)
		assert.Equal(t, int64(10), got.Size)
		assert.Empty(t, got.Ciphertext)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM blobs")).
			WithArgs(int64(99), blob.ID).
			WillReturnRows(sqlmock.NewRows(blobColumns))

		_, err := NewBlobRepository(newPostgresDBFromSQL(db), logger.Nop()).GetBlob(testContext(), 99, blob.ID)
		assert.ErrorIs(t, err, ErrBlobNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM blobs")).
			WillReturnError(errors.New("boom"))

		_, err := NewBlobRepository(newPostgresDBFromSQL(db), logger.Nop()).GetBlob(testContext(), blob.OwnerID, blob.ID)
		assert.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestBlobRepository_DeleteBlob(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blobs")).
			WithArgs(int64(10), blobID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewBlobRepository(newPostgresDBFromSQL(db), logger.Nop()).DeleteBlob(testContext(), 10, blobID)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blobs")).
			WithArgs(int64(10), blobID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewBlobRepository(newPostgresDBFromSQL(db), logger.Nop()).DeleteBlob(testContext(), 10, blobID)
		assert.ErrorIs(t, err, ErrBlobNotFound)
	})
}
