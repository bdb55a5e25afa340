// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/models"
)

// fileEnvelope applies the record envelope to raw attachment bytes.
type fileEnvelope struct {
	generator KeyMaterialGenerator
	cipher    SymmetricCipher
	wrapper   KeyWrapper
}

// NewFileEnvelope returns the default [FileEnvelope].
func NewFileEnvelope(generator KeyMaterialGenerator, cipher SymmetricCipher, wrapper KeyWrapper) FileEnvelope {
	return &fileEnvelope{generator: generator, cipher: cipher, wrapper: wrapper}
}

// EncryptFile implements [FileEnvelope]. Only Ciphertext, WrappedKey and
// Size are filled; identity fields are the caller's concern.
func (f *fileEnvelope) EncryptFile(data []byte, recipientPublicKey []byte) (models.EncryptedBlob, error) {
	key, nonce, err := f.generator.GenerateKeyAndNonce()
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("encrypt file: %w", err)
	}

	ciphertext, err := f.cipher.EncryptBytes(data, key, nonce)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("encrypt file content: %w", err)
	}

	wrapped, err := wrapKeyMaterial(f.wrapper, key, nonce, recipientPublicKey)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	return models.EncryptedBlob{
		Ciphertext: ciphertext,
		WrappedKey: wrapped,
		Size:       int64(len(data)),
	}, nil
}

// DecryptFile implements [FileEnvelope].
func (f *fileEnvelope) DecryptFile(blob models.EncryptedBlob, privateKey []byte) ([]byte, error) {
	if len(privateKey) == 0 {
		return nil, ErrKeyUnavailable
	}

	key, nonce, err := unwrapKeyMaterial(f.wrapper, blob.WrappedKey, privateKey)
	if err != nil {
		return nil, fmt.Errorf("decrypt file: %w", err)
	}

	data, err := f.cipher.DecryptBytes(blob.Ciphertext, key, nonce)
	if err != nil {
		return nil, fmt.Errorf("decrypt file content: %w", err)
	}

	return data, nil
}
