// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"
)

const (
	// PublicKeySize and PrivateKeySize are the sizes of raw X25519 keys.
	PublicKeySize  = curve25519.PointSize
	PrivateKeySize = curve25519.ScalarSize

	wrapVersion    byte = 0x01
	wrapHeaderSize      = 1 + PublicKeySize + NonceSize
	gcmTagSize          = 16
)

// wrapInfo domain-separates the key-encryption keys derived for wrapping
// from any other use of the same shared secret.
var wrapInfo = []byte("go-clinic-vault/key-wrap/v1")

// x25519KeyWrapper implements [KeyWrapper] with an ephemeral-static X25519
// exchange, HKDF-SHA256 and AES-256-GCM.
//
// Wrapped format, base64 (std):
//
//	version(1) ‖ ephemeralPub(32) ‖ nonce(12) ‖ AES-GCM(kek, material)
//
// The version byte and ephemeral public key are authenticated as associated
// data. kek = HKDF-SHA256(X25519(eph, recipient), salt = ephPub ‖ recipientPub).
type x25519KeyWrapper struct {
	generator KeyMaterialGenerator
}

// NewKeyWrapper returns a [KeyWrapper] that draws randomness from generator.
func NewKeyWrapper(generator KeyMaterialGenerator) KeyWrapper {
	return &x25519KeyWrapper{generator: generator}
}

// GenerateKeyPair implements [KeyWrapper].
func (w *x25519KeyWrapper) GenerateKeyPair() (publicKey, privateKey []byte, err error) {
	privateKey, err = w.generator.Read(PrivateKeySize)
	if err != nil {
		return nil, nil, fmt.Errorf("generate private key: %w", err)
	}

	publicKey, err = curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: derive public key: %w", ErrGeneratorFailure, err)
	}

	return publicKey, privateKey, nil
}

// PublicKeyFromPrivate implements [KeyWrapper].
func (w *x25519KeyWrapper) PublicKeyFromPrivate(privateKey []byte) ([]byte, error) {
	if len(privateKey) != PrivateKeySize {
		return nil, fmt.Errorf("%w: private key length %d, want %d", ErrInvalidKeyMaterial, len(privateKey), PrivateKeySize)
	}
	pub, err := curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}
	return pub, nil
}

// Wrap implements [KeyWrapper].
func (w *x25519KeyWrapper) Wrap(material, recipientPublicKey []byte) (string, error) {
	if len(recipientPublicKey) != PublicKeySize {
		return "", fmt.Errorf("%w: public key length %d, want %d", ErrInvalidKeyMaterial, len(recipientPublicKey), PublicKeySize)
	}

	ephemeralPub, ephemeralPriv, err := w.GenerateKeyPair()
	if err != nil {
		return "", err
	}
	defer wipe(ephemeralPriv)

	shared, err := curve25519.X25519(ephemeralPriv, recipientPublicKey)
	if err != nil {
		// low-order recipient point
		return "", fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}
	defer wipe(shared)

	kek, err := deriveKEK(shared, ephemeralPub, recipientPublicKey)
	if err != nil {
		return "", err
	}
	defer wipe(kek)

	gcm, err := newAEAD(kek)
	if err != nil {
		return "", err
	}

	nonce, err := w.generator.Read(NonceSize)
	if err != nil {
		return "", fmt.Errorf("generate wrap nonce: %w", err)
	}

	header := make([]byte, 0, wrapHeaderSize+len(material)+gcm.Overhead())
	header = append(header, wrapVersion)
	header = append(header, ephemeralPub...)
	aad := bytes.Clone(header)
	header = append(header, nonce...)

	blob := gcm.Seal(header, nonce, material, aad)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Unwrap implements [KeyWrapper].
func (w *x25519KeyWrapper) Unwrap(wrapped string, privateKey []byte) ([]byte, error) {
	if len(privateKey) == 0 {
		return nil, ErrKeyUnavailable
	}

	recipientPub, err := w.PublicKeyFromPrivate(privateKey)
	if err != nil {
		return nil, err
	}

	blob, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("%w: decode wrapped key: %w", ErrMalformedCiphertext, err)
	}
	if len(blob) < wrapHeaderSize+gcmTagSize {
		return nil, fmt.Errorf("%w: wrapped key too short", ErrMalformedCiphertext)
	}
	if blob[0] != wrapVersion {
		return nil, fmt.Errorf("%w: unsupported wrap version %d", ErrMalformedCiphertext, blob[0])
	}

	aad := blob[:1+PublicKeySize]
	ephemeralPub := blob[1 : 1+PublicKeySize]
	nonce := blob[1+PublicKeySize : wrapHeaderSize]
	sealed := blob[wrapHeaderSize:]

	shared, err := curve25519.X25519(privateKey, ephemeralPub)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}
	defer wipe(shared)

	kek, err := deriveKEK(shared, ephemeralPub, recipientPub)
	if err != nil {
		return nil, err
	}
	defer wipe(kek)

	gcm, err := newAEAD(kek)
	if err != nil {
		return nil, err
	}

	material, err := gcm.Open(nil, nonce, sealed, aad)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap key: %w", ErrAuthenticationFailure, err)
	}

	return material, nil
}

func deriveKEK(shared, ephemeralPub, recipientPub []byte) ([]byte, error) {
	salt := make([]byte, 0, len(ephemeralPub)+len(recipientPub))
	salt = append(salt, ephemeralPub...)
	salt = append(salt, recipientPub...)

	kek := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, shared, salt, wrapInfo), kek); err != nil {
		return nil, fmt.Errorf("%w: derive kek: %w", ErrGeneratorFailure, err)
	}
	return kek, nil
}
