// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/models"
)

func TestKeyPairRepository_SaveKeyPair(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	pair := models.StoredKeyPair{
		OwnerID:          7,
		Purpose:          models.PurposeSessionNotes,
		PublicKey:        []byte("pub"),
		SealedPrivateKey: []byte("priv"),
		CreatedAt:        &created,
	}

	tests := []struct {
		name         string
		setupMock    func(mock sqlmock.Sqlmock)
		wantInserted bool
		wantErr      error
	}{
		{
			name: "inserted",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO key_pairs")).
					WithArgs(int64(7), "session_notes", []byte("pub"), []byte("priv"), created).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			wantInserted: true,
		},
		{
			name: "already present",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO key_pairs")).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantInserted: false,
		},
		{
			name: "exec error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT OR IGNORE INTO key_pairs")).
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setupMock(mock)

			repo := NewKeyPairRepository(newSQLiteDBFromSQL(db), logger.Nop())
			inserted, err := repo.SaveKeyPair(testContext(), pair)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantInserted, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestKeyPairRepository_GetKeyPair(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	columns := []string{"owner_id", "purpose", "public_key", "sealed_private_key", "created_at"}

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM key_pairs")).
			WithArgs(int64(7), "session_notes").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(7), "session_notes", []byte("pub"), nil, created))

		repo := NewKeyPairRepository(newSQLiteDBFromSQL(db), logger.Nop())
		pair, err := repo.GetKeyPair(testContext(), 7, models.PurposeSessionNotes)
		require.NoError(t, err)

		assert.Equal(t, models.PurposeSessionNotes, pair.Purpose)
		assert.Equal(t, []byte("pub"), pair.PublicKey)
		assert.Nil(t, pair.SealedPrivateKey)
		require.NotNil(t, pair.CreatedAt)
		assert.True(t, created.Equal(*pair.CreatedAt))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM key_pairs")).
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewKeyPairRepository(newSQLiteDBFromSQL(db), logger.Nop())
		_, err := repo.GetKeyPair(testContext(), 7, models.PurposeSessionNotes)
		assert.ErrorIs(t, err, ErrKeyPairNotFound)
	})
}

func TestKeyPairRepository_PurgeAndDelete(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("SET sealed_private_key = NULL")).
		WithArgs(int64(7), "test_results").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET sealed_private_key = NULL")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM key_pairs")).
		WithArgs(int64(7), "test_results").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewKeyPairRepository(newSQLiteDBFromSQL(db), logger.Nop())
	ctx := testContext()

	require.NoError(t, repo.PurgePrivateKey(ctx, 7, models.PurposeTestResults))
	assert.ErrorIs(t, repo.PurgePrivateKey(ctx, 7, models.PurposeTestResults), ErrKeyPairNotFound)
	require.NoError(t, repo.DeleteKeyPair(ctx, 7, models.PurposeTestResults))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestKeyPairRepository_SQLite runs against a real SQLite file to check the
// schema and the insert-if-absent semantics end to end.
func TestKeyPairRepository_SQLite(t *testing.T) {
	ctx := testContext()
	db, err := NewConnectSQLite(ctx, filepath.Join(t.TempDir(), "nested", "keys.db"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	repo := NewKeyPairRepository(db, logger.Nop())
	t.Cleanup(func() { repo.Close() })

	first := models.StoredKeyPair{OwnerID: 1, Purpose: models.PurposeSessionNotes, PublicKey: []byte("pub-1"), SealedPrivateKey: []byte("priv-1")}
	second := models.StoredKeyPair{OwnerID: 1, Purpose: models.PurposeSessionNotes, PublicKey: []byte("pub-2"), SealedPrivateKey: []byte("priv-2")}

	inserted, err := repo.SaveKeyPair(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.SaveKeyPair(ctx, second)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.GetKeyPair(ctx, 1, models.PurposeSessionNotes)
	require.NoError(t, err)
	assert.Equal(t, []byte("pub-1"), got.PublicKey)
	assert.Equal(t, []byte("priv-1"), got.SealedPrivateKey)

	require.NoError(t, repo.PurgePrivateKey(ctx, 1, models.PurposeSessionNotes))
	got, err = repo.GetKeyPair(ctx, 1, models.PurposeSessionNotes)
	require.NoError(t, err)
	assert.Equal(t, []byte("pub-1"), got.PublicKey)
	assert.Empty(t, got.SealedPrivateKey)

	_, err = repo.GetKeyPair(ctx, 1, models.PurposeTestResults)
	assert.ErrorIs(t, err, ErrKeyPairNotFound)
}

func TestBadgerKeyPairRepository(t *testing.T) {
	ctx := testContext()
	repo, err := NewBadgerKeyPairRepository("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	pair := models.StoredKeyPair{OwnerID: 2, Purpose: models.PurposeAttachments, PublicKey: []byte("pub"), SealedPrivateKey: []byte("priv")}

	inserted, err := repo.SaveKeyPair(ctx, pair)
	require.NoError(t, err)
	assert.True(t, inserted)

	other := pair
	other.PublicKey = []byte("other")
	inserted, err = repo.SaveKeyPair(ctx, other)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := repo.GetKeyPair(ctx, 2, models.PurposeAttachments)
	require.NoError(t, err)
	assert.Equal(t, []byte("pub"), got.PublicKey)
	assert.Equal(t, []byte("priv"), got.SealedPrivateKey)
	assert.NotNil(t, got.CreatedAt)

	require.NoError(t, repo.PurgePrivateKey(ctx, 2, models.PurposeAttachments))
	got, err = repo.GetKeyPair(ctx, 2, models.PurposeAttachments)
	require.NoError(t, err)
	assert.Empty(t, got.SealedPrivateKey)
	assert.Equal(t, []byte("pub"), got.PublicKey)

	require.NoError(t, repo.DeleteKeyPair(ctx, 2, models.PurposeAttachments))
	_, err = repo.GetKeyPair(ctx, 2, models.PurposeAttachments)
	assert.ErrorIs(t, err, ErrKeyPairNotFound)

	assert.ErrorIs(t, repo.PurgePrivateKey(ctx, 2, models.PurposeAttachments), ErrKeyPairNotFound)
	assert.ErrorIs(t, repo.DeleteKeyPair(ctx, 2, models.PurposeAttachments), ErrKeyPairNotFound)
}

func TestBadgerKeyPairRepository_ConcurrentSave(t *testing.T) {
	ctx := testContext()
	repo, err := NewBadgerKeyPairRepository("", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	const writers = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.SaveKeyPair(ctx, models.StoredKeyPair{
				OwnerID:   3,
				Purpose:   models.PurposeSessionNotes,
				PublicKey: []byte{byte(i)},
			})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				inserted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, inserted)
}
