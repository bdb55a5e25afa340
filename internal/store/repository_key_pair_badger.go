// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/models"
)

const keyPairPrefix = "keypair/"

// badgerKeyPairRepository is a [KeyPairRepository] on an embedded Badger
// key-value store. Values are JSON-encoded [models.StoredKeyPair].
type badgerKeyPairRepository struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerKeyPairRepository opens (or creates) a Badger store in dir. An
// empty dir opens an in-memory store.
func NewBadgerKeyPairRepository(dir string, log *logger.Logger) (KeyPairRepository, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerKeyPairRepository").Msg("error opening badger store")
		return nil, fmt.Errorf("error opening badger key store: %w", err)
	}

	return &badgerKeyPairRepository{db: db, logger: log}, nil
}

func keyPairKey(ownerID int64, purpose models.Purpose) []byte {
	return []byte(keyPairPrefix + strconv.FormatInt(ownerID, 10) + "/" + purpose.String())
}

// SaveKeyPair implements [KeyPairRepository]. Existence check and write run
// in one transaction; a concurrent writer makes the commit fail with
// badger.ErrConflict, which is reported as "not inserted".
func (r *badgerKeyPairRepository) SaveKeyPair(ctx context.Context, pair models.StoredKeyPair) (bool, error) {
	log := logger.FromContext(ctx)

	if pair.CreatedAt == nil {
		now := time.Now().UTC()
		pair.CreatedAt = &now
	}

	value, err := json.Marshal(pair)
	if err != nil {
		return false, fmt.Errorf("encode key pair: %w", err)
	}

	key := keyPairKey(pair.OwnerID, pair.Purpose)
	inserted := false

	err = r.db.Update(func(txn *badger.Txn) error {
		_, getErr := txn.Get(key)
		if getErr == nil {
			return nil
		}
		if !errors.Is(getErr, badger.ErrKeyNotFound) {
			return getErr
		}

		if setErr := txn.Set(key, value); setErr != nil {
			return setErr
		}
		inserted = true
		return nil
	})
	if errors.Is(err, badger.ErrConflict) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "badgerKeyPairRepository.SaveKeyPair").
			Int64("owner_id", pair.OwnerID).
			Str("purpose", pair.Purpose.String()).
			Msg("failed to save key pair")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return inserted, nil
}

// GetKeyPair implements [KeyPairRepository].
func (r *badgerKeyPairRepository) GetKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) (models.StoredKeyPair, error) {
	var pair models.StoredKeyPair

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyPairKey(ownerID, purpose))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pair)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.StoredKeyPair{}, ErrKeyPairNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "badgerKeyPairRepository.GetKeyPair").
			Int64("owner_id", ownerID).
			Str("purpose", purpose.String()).
			Msg("failed to read key pair")
		return models.StoredKeyPair{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return pair, nil
}

// PurgePrivateKey implements [KeyPairRepository].
func (r *badgerKeyPairRepository) PurgePrivateKey(ctx context.Context, ownerID int64, purpose models.Purpose) error {
	key := keyPairKey(ownerID, purpose)

	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		var pair models.StoredKeyPair
		if err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pair)
		}); err != nil {
			return err
		}

		pair.SealedPrivateKey = nil
		value, err := json.Marshal(pair)
		if err != nil {
			return err
		}
		return txn.Set(key, value)
	})

	return r.mapError(ctx, "badgerKeyPairRepository.PurgePrivateKey", err)
}

// DeleteKeyPair implements [KeyPairRepository].
func (r *badgerKeyPairRepository) DeleteKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) error {
	key := keyPairKey(ownerID, purpose)

	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})

	return r.mapError(ctx, "badgerKeyPairRepository.DeleteKeyPair", err)
}

func (r *badgerKeyPairRepository) mapError(ctx context.Context, funcName string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrKeyPairNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("badger transaction failed")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func (r *badgerKeyPairRepository) Close() error {
	return r.db.Close()
}
