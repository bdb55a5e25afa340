// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testWorkFactor keeps scrypt fast in tests.
const testWorkFactor = 10

func TestPassphraseSealer_RoundTrip(t *testing.T) {
	s, err := NewPassphraseSealer("correct horse", testWorkFactor)
	require.NoError(t, err)

	_, priv, err := NewKeyWrapper(NewKeyMaterialGenerator()).GenerateKeyPair()
	require.NoError(t, err)

	sealed, err := s.Seal(priv)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), string(priv))

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, priv, opened)
}

func TestPassphraseSealer_WrongPassphrase(t *testing.T) {
	s, err := NewPassphraseSealer("correct horse", testWorkFactor)
	require.NoError(t, err)
	other, err := NewPassphraseSealer("battery staple", testWorkFactor)
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("private"))
	require.NoError(t, err)

	_, err = other.Open(sealed)
	assert.ErrorIs(t, err, ErrAuthenticationFailure)

	_, err = s.Open([]byte("not an age file"))
	assert.ErrorIs(t, err, ErrMalformedCiphertext)
}

func TestPassphraseSealer_EmptyPassphrase(t *testing.T) {
	_, err := NewPassphraseSealer("", 0)
	assert.ErrorIs(t, err, ErrInvalidKeyMaterial)
}

func TestPlainSealer(t *testing.T) {
	s := NewPlainSealer()
	in := []byte("private")

	sealed, err := s.Seal(in)
	require.NoError(t, err)
	in[0] = 'X'

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("private"), opened)
}
