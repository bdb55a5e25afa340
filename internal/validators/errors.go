// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID          = errors.New("invalid owner ID")
	ErrInvalidRecordID         = errors.New("invalid record ID")
	ErrInvalidPurpose          = errors.New("invalid purpose")
	ErrEmptyEncryptedContent   = errors.New("encrypted content is required")
	ErrEmptyWrappedKey         = errors.New("wrapped key is required")
	ErrMalformedEncryptedField = errors.New("envelope field is not valid base64")
	ErrEmptyCiphertext         = errors.New("ciphertext is required")
	ErrInvalidSize             = errors.New("invalid size")
	ErrInvalidName             = errors.New("invalid name")
)
