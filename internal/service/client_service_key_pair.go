// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-clinic-vault/internal/crypto"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/pmylund/go-cache"
)

type keyPairStore struct {
	keyPairRepository store.KeyPairRepository
	wrapper           crypto.KeyWrapper
	sealer            crypto.PrivateKeySealer

	// opened key pairs; nil when caching is disabled
	cache *cache.Cache
	// serializes first-use generation within this process
	mu sync.Mutex

	logger *logger.Logger
}

// NewKeyPairStore returns a [KeyPairStore] over keyPairRepository. Private
// keys pass through sealer on their way to and from the repository. Opened
// pairs are kept in memory for cacheTTL; a non-positive cacheTTL disables
// the cache.
func NewKeyPairStore(keyPairRepository store.KeyPairRepository, wrapper crypto.KeyWrapper, sealer crypto.PrivateKeySealer, cacheTTL time.Duration, logger *logger.Logger) KeyPairStore {
	s := &keyPairStore{
		keyPairRepository: keyPairRepository,
		wrapper:           wrapper,
		sealer:            sealer,
		logger:            logger,
	}
	if cacheTTL > 0 {
		s.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return s
}

func (s *keyPairStore) InitializeKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) (models.KeyPair, error) {
	if err := validateScope(ownerID, purpose); err != nil {
		return models.KeyPair{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.keyPairRepository.GetKeyPair(ctx, ownerID, purpose)
	if err == nil {
		return s.open(ctx, stored), nil
	}
	if !errors.Is(err, store.ErrKeyPairNotFound) {
		return models.KeyPair{}, fmt.Errorf("load key pair: %w", err)
	}

	publicKey, privateKey, err := s.wrapper.GenerateKeyPair()
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("generate key pair: %w", err)
	}

	sealed, err := s.sealer.Seal(privateKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("seal private key: %w", err)
	}

	now := time.Now().UTC()
	inserted, err := s.keyPairRepository.SaveKeyPair(ctx, models.StoredKeyPair{
		OwnerID:          ownerID,
		Purpose:          purpose,
		PublicKey:        publicKey,
		SealedPrivateKey: sealed,
		CreatedAt:        &now,
	})
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("save key pair: %w", err)
	}

	if !inserted {
		// another process stored a pair first; its pair wins
		stored, err = s.keyPairRepository.GetKeyPair(ctx, ownerID, purpose)
		if err != nil {
			return models.KeyPair{}, fmt.Errorf("reload key pair: %w", err)
		}
		return s.open(ctx, stored), nil
	}

	s.logger.Info().
		Str("func", "keyPairStore.InitializeKeyPair").
		Int64("owner_id", ownerID).
		Str("purpose", purpose.String()).
		Msg("key pair generated")

	pair := models.KeyPair{
		OwnerID:    ownerID,
		Purpose:    purpose,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
		CreatedAt:  &now,
	}
	s.remember(pair)

	return pair, nil
}

func (s *keyPairStore) RetrieveKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) models.KeyPair {
	if pair, ok := s.cached(ownerID, purpose); ok {
		return pair
	}

	stored, err := s.keyPairRepository.GetKeyPair(ctx, ownerID, purpose)
	if err != nil {
		event := s.logger.Warn()
		if errors.Is(err, store.ErrKeyPairNotFound) {
			event = s.logger.Debug()
		}
		event.Err(err).
			Str("func", "keyPairStore.RetrieveKeyPair").
			Int64("owner_id", ownerID).
			Str("purpose", purpose.String()).
			Msg("no key pair available")
		return models.KeyPair{OwnerID: ownerID, Purpose: purpose}
	}

	return s.open(ctx, stored)
}

func (s *keyPairStore) PurgePrivateKey(ctx context.Context, ownerID int64, purpose models.Purpose) error {
	if err := validateScope(ownerID, purpose); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.keyPairRepository.PurgePrivateKey(ctx, ownerID, purpose); err != nil {
		return fmt.Errorf("purge private key: %w", err)
	}
	s.forget(ownerID, purpose)

	s.logger.Info().
		Str("func", "keyPairStore.PurgePrivateKey").
		Int64("owner_id", ownerID).
		Str("purpose", purpose.String()).
		Msg("private key purged")

	return nil
}

// open turns a stored pair into a usable one. A private key that cannot be
// unsealed, or that does not match the stored public key, is dropped and the
// pair is returned public-only without being cached.
func (s *keyPairStore) open(ctx context.Context, stored models.StoredKeyPair) models.KeyPair {
	pair := models.KeyPair{
		OwnerID:   stored.OwnerID,
		Purpose:   stored.Purpose,
		PublicKey: stored.PublicKey,
		CreatedAt: stored.CreatedAt,
	}

	if len(stored.SealedPrivateKey) == 0 {
		s.remember(pair)
		return pair
	}

	privateKey, err := s.sealer.Open(stored.SealedPrivateKey)
	if err == nil {
		var derived []byte
		derived, err = s.wrapper.PublicKeyFromPrivate(privateKey)
		if err == nil && !bytes.Equal(derived, stored.PublicKey) {
			err = fmt.Errorf("%w: private key does not match public key", crypto.ErrInvalidKeyMaterial)
		}
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "keyPairStore.open").
			Int64("owner_id", stored.OwnerID).
			Str("purpose", stored.Purpose.String()).
			Msg("private key unavailable, continuing with public key only")
		return pair
	}

	pair.PrivateKey = privateKey
	s.remember(pair)
	return pair
}

func (s *keyPairStore) cached(ownerID int64, purpose models.Purpose) (models.KeyPair, bool) {
	if s.cache == nil {
		return models.KeyPair{}, false
	}
	v, ok := s.cache.Get(cacheKey(ownerID, purpose))
	if !ok {
		return models.KeyPair{}, false
	}
	pair, ok := v.(models.KeyPair)
	if !ok {
		return models.KeyPair{}, false
	}
	return cloneKeys(pair), true
}

// remember stores a private copy of pair, so callers never share key bytes
// with the cache.
func (s *keyPairStore) remember(pair models.KeyPair) {
	if s.cache == nil {
		return
	}
	s.cache.Set(cacheKey(pair.OwnerID, pair.Purpose), cloneKeys(pair), cache.DefaultExpiration)
}

func cloneKeys(pair models.KeyPair) models.KeyPair {
	pair.PublicKey = bytes.Clone(pair.PublicKey)
	pair.PrivateKey = bytes.Clone(pair.PrivateKey)
	return pair
}

func (s *keyPairStore) forget(ownerID int64, purpose models.Purpose) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(cacheKey(ownerID, purpose))
}

func cacheKey(ownerID int64, purpose models.Purpose) string {
	return strconv.FormatInt(ownerID, 10) + "/" + purpose.String()
}

func validateScope(ownerID int64, purpose models.Purpose) error {
	if ownerID <= 0 {
		return ErrValidationNoOwnerID
	}
	if !purpose.Valid() {
		return fmt.Errorf("%w: %q", ErrValidationPurpose, purpose)
	}
	return nil
}
