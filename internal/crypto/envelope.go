// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/models"
)

// wrappedMaterialSize is the size of the unwrapped key material:
// symmetric key ‖ nonce.
const wrappedMaterialSize = KeySize + NonceSize

// envelopeService implements [EnvelopeService] on top of the three
// primitives. It holds no per-record state.
type envelopeService struct {
	generator KeyMaterialGenerator
	cipher    SymmetricCipher
	wrapper   KeyWrapper
	logger    *logger.Logger
}

// NewEnvelopeService composes an [EnvelopeService].
func NewEnvelopeService(generator KeyMaterialGenerator, cipher SymmetricCipher, wrapper KeyWrapper, logger *logger.Logger) EnvelopeService {
	return &envelopeService{
		generator: generator,
		cipher:    cipher,
		wrapper:   wrapper,
		logger:    logger,
	}
}

// EncryptForRecipient implements [EnvelopeEncryptor].
//
// A fresh key and nonce are generated for every call, the payload goes
// through AES-GCM and only key ‖ nonce goes through the asymmetric wrap.
func (e *envelopeService) EncryptForRecipient(payload any, recipientPublicKey []byte) (models.Envelope, error) {
	key, nonce, err := e.generator.GenerateKeyAndNonce()
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt for recipient: %w", err)
	}

	content, err := e.cipher.Encrypt(payload, key, nonce)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt content: %w", err)
	}

	wrapped, err := e.wrapKeyMaterial(key, nonce, recipientPublicKey)
	if err != nil {
		return models.Envelope{}, err
	}

	return models.Envelope{EncryptedContent: content, WrappedKey: wrapped}, nil
}

// DecryptWithPrivateKey implements [EnvelopeDecryptor].
//
// Missing keys, authentication failures, malformed envelopes and invalid
// JSON all yield an undecryptable record with a nil error. Only a
// crypto-provider failure is returned as an error.
func (e *envelopeService) DecryptWithPrivateKey(env models.Envelope, privateKey []byte) (models.PlaintextRecord, error) {
	if len(privateKey) == 0 {
		return undecryptable(ErrKeyUnavailable), nil
	}

	key, nonce, err := e.unwrapKeyMaterial(env.WrappedKey, privateKey)
	if err != nil {
		return e.degrade("unwrap key", err)
	}

	content, err := e.cipher.Decrypt(env.EncryptedContent, key, nonce)
	if err != nil {
		return e.degrade("decrypt content", err)
	}

	return models.PlaintextRecord{Content: content}, nil
}

// Rewrap implements [EnvelopeDecryptor]. The encrypted content is returned
// unchanged; only the wrapped key is replaced.
func (e *envelopeService) Rewrap(env models.Envelope, privateKey, recipientPublicKey []byte) (models.Envelope, error) {
	if len(privateKey) == 0 {
		return models.Envelope{}, ErrKeyUnavailable
	}

	key, nonce, err := e.unwrapKeyMaterial(env.WrappedKey, privateKey)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("rewrap: %w", err)
	}

	// the content must still open with the recovered key before it is
	// handed to another recipient
	if _, err = e.cipher.Decrypt(env.EncryptedContent, key, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("rewrap: %w", err)
	}

	wrapped, err := e.wrapKeyMaterial(key, nonce, recipientPublicKey)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("rewrap: %w", err)
	}

	return models.Envelope{EncryptedContent: env.EncryptedContent, WrappedKey: wrapped}, nil
}

func (e *envelopeService) degrade(step string, err error) (models.PlaintextRecord, error) {
	if errors.Is(err, ErrGeneratorFailure) {
		return models.PlaintextRecord{}, fmt.Errorf("%s: %w", step, err)
	}

	event := e.logger.Warn()
	if errors.Is(err, ErrAuthenticationFailure) {
		event = e.logger.Error()
	}
	event.Err(err).
		Str("func", "envelopeService.DecryptWithPrivateKey").
		Str("step", step).
		Msg("record left undecryptable")

	return undecryptable(err), nil
}

func undecryptable(cause error) models.PlaintextRecord {
	return models.PlaintextRecord{Undecryptable: true, Cause: cause}
}

func (e *envelopeService) wrapKeyMaterial(key models.SymmetricKey, nonce models.Nonce, recipientPublicKey []byte) (string, error) {
	return wrapKeyMaterial(e.wrapper, key, nonce, recipientPublicKey)
}

func (e *envelopeService) unwrapKeyMaterial(wrapped string, privateKey []byte) (models.SymmetricKey, models.Nonce, error) {
	return unwrapKeyMaterial(e.wrapper, wrapped, privateKey)
}

// wrapKeyMaterial wraps key ‖ nonce under recipientPublicKey.
func wrapKeyMaterial(wrapper KeyWrapper, key models.SymmetricKey, nonce models.Nonce, recipientPublicKey []byte) (string, error) {
	rawKey, err := decodeKey(key)
	if err != nil {
		return "", err
	}
	defer wipe(rawKey)

	rawNonce, err := decodeNonce(nonce)
	if err != nil {
		return "", err
	}

	material := make([]byte, 0, wrappedMaterialSize)
	material = append(material, rawKey...)
	material = append(material, rawNonce...)
	defer wipe(material)

	wrapped, err := wrapper.Wrap(material, recipientPublicKey)
	if err != nil {
		return "", fmt.Errorf("wrap key: %w", err)
	}
	return wrapped, nil
}

// unwrapKeyMaterial reverses [wrapKeyMaterial].
func unwrapKeyMaterial(wrapper KeyWrapper, wrapped string, privateKey []byte) (models.SymmetricKey, models.Nonce, error) {
	material, err := wrapper.Unwrap(wrapped, privateKey)
	if err != nil {
		return "", "", err
	}
	defer wipe(material)

	if len(material) != wrappedMaterialSize {
		return "", "", fmt.Errorf("%w: key material length %d, want %d", ErrMalformedCiphertext, len(material), wrappedMaterialSize)
	}

	key := models.SymmetricKey(hex.EncodeToString(material[:KeySize]))
	nonce := models.Nonce(hex.EncodeToString(material[KeySize:]))
	return key, nonce, nil
}
