// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/go-clinic-vault/models"
)

const (
	// KeySize is the size of a symmetric key in bytes (256 bits).
	KeySize = 32
	// NonceSize is the size of an AES-GCM nonce in bytes (96 bits).
	NonceSize = 12
)

// keyMaterialGenerator is the default [KeyMaterialGenerator]. It reads from
// the injected randomness source, crypto/rand.Reader unless overridden.
type keyMaterialGenerator struct {
	random io.Reader
}

// NewKeyMaterialGenerator returns a [KeyMaterialGenerator] backed by the OS
// CSPRNG.
func NewKeyMaterialGenerator() KeyMaterialGenerator {
	return &keyMaterialGenerator{random: rand.Reader}
}

// NewKeyMaterialGeneratorFromReader returns a [KeyMaterialGenerator] that
// reads from random. Used by tests to simulate a broken CSPRNG.
func NewKeyMaterialGeneratorFromReader(random io.Reader) KeyMaterialGenerator {
	return &keyMaterialGenerator{random: random}
}

// GenerateKey implements [KeyMaterialGenerator].
func (g *keyMaterialGenerator) GenerateKey() (models.SymmetricKey, error) {
	buf, err := g.read(KeySize)
	if err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return models.SymmetricKey(hex.EncodeToString(buf)), nil
}

// GenerateNonce implements [KeyMaterialGenerator].
func (g *keyMaterialGenerator) GenerateNonce() (models.Nonce, error) {
	buf, err := g.read(NonceSize)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return models.Nonce(hex.EncodeToString(buf)), nil
}

// GenerateKeyAndNonce implements [KeyMaterialGenerator].
func (g *keyMaterialGenerator) GenerateKeyAndNonce() (models.SymmetricKey, models.Nonce, error) {
	key, err := g.GenerateKey()
	if err != nil {
		return "", "", err
	}
	nonce, err := g.GenerateNonce()
	if err != nil {
		return "", "", err
	}
	return key, nonce, nil
}

// Read implements [KeyMaterialGenerator].
func (g *keyMaterialGenerator) Read(n int) ([]byte, error) {
	return g.read(n)
}

func (g *keyMaterialGenerator) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(g.random, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratorFailure, err)
	}
	return buf, nil
}

// decodeKey validates and decodes a hex symmetric key.
func decodeKey(key models.SymmetricKey) ([]byte, error) {
	raw, err := hex.DecodeString(string(key))
	if err != nil {
		return nil, fmt.Errorf("%w: key is not hex: %w", ErrInvalidKeyMaterial, err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("%w: key length %d, want %d", ErrInvalidKeyMaterial, len(raw), KeySize)
	}
	return raw, nil
}

// decodeNonce validates and decodes a hex nonce.
func decodeNonce(nonce models.Nonce) ([]byte, error) {
	raw, err := hex.DecodeString(string(nonce))
	if err != nil {
		return nil, fmt.Errorf("%w: nonce is not hex: %w", ErrInvalidKeyMaterial, err)
	}
	if len(raw) != NonceSize {
		return nil, fmt.Errorf("%w: nonce length %d, want %d", ErrInvalidKeyMaterial, len(raw), NonceSize)
	}
	return raw, nil
}

// wipe zeroes b.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
