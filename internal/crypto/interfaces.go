// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side envelope encryption used for
// clinic records: fresh AES-256-GCM key material per record, wrapped under
// the recipient's X25519 public key.
package crypto

import (
	"encoding/json"

	"github.com/MKhiriev/go-clinic-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyMaterialGenerator produces cryptographically secure random values.
// Every failure of the underlying randomness source is reported as
// [ErrGeneratorFailure]; the generator never falls back to weak randomness.
type KeyMaterialGenerator interface {
	// GenerateKey returns 32 random bytes, hex encoded.
	GenerateKey() (models.SymmetricKey, error)
	// GenerateNonce returns 12 random bytes, hex encoded.
	GenerateNonce() (models.Nonce, error)
	// GenerateKeyAndNonce returns a fresh, unrelated key and nonce.
	GenerateKeyAndNonce() (models.SymmetricKey, models.Nonce, error)
	// Read returns n random bytes.
	Read(n int) ([]byte, error)
}

// SymmetricCipher is authenticated AES-256-GCM with an explicit nonce.
// The 16-byte tag is appended to the ciphertext.
type SymmetricCipher interface {
	// Encrypt serializes payload to JSON and returns base64(ct ‖ tag).
	Encrypt(payload any, key models.SymmetricKey, nonce models.Nonce) (string, error)
	// Decrypt reverses Encrypt. The result is guaranteed to be valid JSON.
	Decrypt(ciphertext string, key models.SymmetricKey, nonce models.Nonce) (json.RawMessage, error)
	// EncryptBytes seals raw bytes without any text encoding.
	EncryptBytes(plaintext []byte, key models.SymmetricKey, nonce models.Nonce) ([]byte, error)
	// DecryptBytes opens the output of EncryptBytes.
	DecryptBytes(sealed []byte, key models.SymmetricKey, nonce models.Nonce) ([]byte, error)
}

// KeyWrapper is the asymmetric half of the envelope: it wraps small key
// material under a public key.
type KeyWrapper interface {
	GenerateKeyPair() (publicKey, privateKey []byte, err error)
	PublicKeyFromPrivate(privateKey []byte) ([]byte, error)
	Wrap(material, recipientPublicKey []byte) (string, error)
	Unwrap(wrapped string, privateKey []byte) ([]byte, error)
}

// EnvelopeEncryptor encrypts a record payload for a single recipient.
type EnvelopeEncryptor interface {
	EncryptForRecipient(payload any, recipientPublicKey []byte) (models.Envelope, error)
}

// EnvelopeDecryptor opens envelopes produced by [EnvelopeEncryptor].
type EnvelopeDecryptor interface {
	// DecryptWithPrivateKey never fails on bad input: such records are
	// returned with Undecryptable set. The error is non-nil only when the
	// crypto provider itself failed.
	DecryptWithPrivateKey(env models.Envelope, privateKey []byte) (models.PlaintextRecord, error)
	// Rewrap re-wraps the key material of env for another public key.
	Rewrap(env models.Envelope, privateKey, recipientPublicKey []byte) (models.Envelope, error)
}

// EnvelopeService combines both directions.
type EnvelopeService interface {
	EnvelopeEncryptor
	EnvelopeDecryptor
}

// FileEnvelope encrypts binary attachments with the same scheme as records.
type FileEnvelope interface {
	EncryptFile(data []byte, recipientPublicKey []byte) (models.EncryptedBlob, error)
	DecryptFile(blob models.EncryptedBlob, privateKey []byte) ([]byte, error)
}

// PrivateKeySealer protects private keys at rest in the local key store.
type PrivateKeySealer interface {
	Seal(privateKey []byte) ([]byte, error)
	Open(sealed []byte) ([]byte, error)
}
