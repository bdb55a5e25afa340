// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"filippo.io/age"
)

// DefaultWorkFactor is the scrypt work factor used when none is configured.
const DefaultWorkFactor = 18

// passphraseSealer seals private keys with an age scrypt recipient.
type passphraseSealer struct {
	passphrase string
	workFactor int
}

// NewPassphraseSealer returns a [PrivateKeySealer] that encrypts private
// keys with age using a passphrase-derived scrypt key. workFactor <= 0 falls
// back to [DefaultWorkFactor].
func NewPassphraseSealer(passphrase string, workFactor int) (PrivateKeySealer, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty passphrase", ErrInvalidKeyMaterial)
	}
	if workFactor <= 0 {
		workFactor = DefaultWorkFactor
	}
	return &passphraseSealer{passphrase: passphrase, workFactor: workFactor}, nil
}

// Seal implements [PrivateKeySealer].
func (s *passphraseSealer) Seal(privateKey []byte) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(s.passphrase)
	if err != nil {
		return nil, fmt.Errorf("create scrypt recipient: %w", err)
	}
	recipient.SetWorkFactor(s.workFactor)

	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneratorFailure, err)
	}
	if _, err = w.Write(privateKey); err != nil {
		return nil, fmt.Errorf("seal private key: %w", err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("seal private key: %w", err)
	}

	return buf.Bytes(), nil
}

// Open implements [PrivateKeySealer]. A wrong passphrase is reported as
// [ErrAuthenticationFailure].
func (s *passphraseSealer) Open(sealed []byte) ([]byte, error) {
	identity, err := age.NewScryptIdentity(s.passphrase)
	if err != nil {
		return nil, fmt.Errorf("create scrypt identity: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(sealed), identity)
	if err != nil {
		var noMatch *age.NoIdentityMatchError
		if errors.As(err, &noMatch) {
			return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	privateKey, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailure, err)
	}
	return privateKey, nil
}

// plainSealer stores private keys as is. Used when no passphrase is set.
type plainSealer struct{}

// NewPlainSealer returns a pass-through [PrivateKeySealer].
func NewPlainSealer() PrivateKeySealer {
	return plainSealer{}
}

func (plainSealer) Seal(privateKey []byte) ([]byte, error) {
	return bytes.Clone(privateKey), nil
}

func (plainSealer) Open(sealed []byte) ([]byte, error) {
	return bytes.Clone(sealed), nil
}
