// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/models"
)

// aesGCMCipher is the stateless AES-256-GCM implementation of
// [SymmetricCipher].
type aesGCMCipher struct{}

// NewSymmetricCipher returns the AES-256-GCM [SymmetricCipher].
func NewSymmetricCipher() SymmetricCipher {
	return aesGCMCipher{}
}

// Encrypt implements [SymmetricCipher]. It marshals payload to JSON, seals
// it with key and nonce and returns base64(ciphertext ‖ tag).
func (c aesGCMCipher) Encrypt(payload any, key models.SymmetricKey, nonce models.Nonce) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal payload: %w", ErrSerializationFailure, err)
	}
	defer wipe(plaintext)

	sealed, err := c.EncryptBytes(plaintext, key, nonce)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [SymmetricCipher]. The returned JSON is guaranteed to
// be valid; a plaintext that does not parse yields [ErrSerializationFailure].
func (c aesGCMCipher) Decrypt(ciphertext string, key models.SymmetricKey, nonce models.Nonce) (json.RawMessage, error) {
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %w", ErrMalformedCiphertext, err)
	}

	plaintext, err := c.DecryptBytes(sealed, key, nonce)
	if err != nil {
		return nil, err
	}

	if !json.Valid(plaintext) {
		return nil, fmt.Errorf("%w: decrypted content is not valid JSON", ErrSerializationFailure)
	}

	return json.RawMessage(plaintext), nil
}

// EncryptBytes implements [SymmetricCipher].
func (c aesGCMCipher) EncryptBytes(plaintext []byte, key models.SymmetricKey, nonce models.Nonce) ([]byte, error) {
	gcm, rawNonce, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, rawNonce, plaintext, nil), nil
}

// DecryptBytes implements [SymmetricCipher].
func (c aesGCMCipher) DecryptBytes(sealed []byte, key models.SymmetricKey, nonce models.Nonce) ([]byte, error) {
	gcm, rawNonce, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrMalformedCiphertext)
	}

	// Open verifies the tag; any mismatch means tampering or a wrong
	// key/nonce, never a partially valid plaintext.
	plaintext, err := gcm.Open(nil, rawNonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}

	return plaintext, nil
}

func newGCM(key models.SymmetricKey, nonce models.Nonce) (cipher.AEAD, []byte, error) {
	rawKey, err := decodeKey(key)
	if err != nil {
		return nil, nil, err
	}
	defer wipe(rawKey)

	rawNonce, err := decodeNonce(nonce)
	if err != nil {
		return nil, nil, err
	}

	gcm, err := newAEAD(rawKey)
	if err != nil {
		return nil, nil, err
	}

	return gcm, rawNonce, nil
}

// newAEAD builds AES-256-GCM from a raw 32-byte key.
func newAEAD(rawKey []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrInvalidKeyMaterial, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrGeneratorFailure, err)
	}
	return gcm, nil
}
