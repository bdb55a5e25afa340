// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Error taxonomy of the encryption subsystem. Lower layers wrap the
// underlying cause with one of these values; callers match with [errors.Is].
var (
	// ErrKeyUnavailable is returned when no private key is available for
	// the requested purpose. Recoverable: content stays encrypted and is
	// shown as a placeholder.
	ErrKeyUnavailable = errors.New("private key is not available")

	// ErrAuthenticationFailure is returned when an AES-GCM tag does not
	// verify: the ciphertext was tampered with, or the key or nonce is
	// wrong. The record is left untouched.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrGeneratorFailure is returned when the CSPRNG or the crypto
	// provider cannot produce key material. Fatal for the operation.
	ErrGeneratorFailure = errors.New("key material generator failure")

	// ErrSerializationFailure is returned when a payload cannot be
	// marshalled to JSON, or when decrypted bytes are not valid JSON.
	ErrSerializationFailure = errors.New("serialization failure")

	// ErrInvalidKeyMaterial is returned for keys, nonces or public keys
	// that are malformed (bad hex, wrong length, low-order point).
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrMalformedCiphertext is returned when a ciphertext or wrapped key
	// cannot be decoded or is too short to contain its header.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)
