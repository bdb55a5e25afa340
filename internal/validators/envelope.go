// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/MKhiriev/go-clinic-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned identifier of a record or blob.
	FieldID = "id"

	// FieldOwnerID targets the owning professional.
	FieldOwnerID = "owner_id"

	// FieldPurpose targets the key purpose the content was encrypted for.
	FieldPurpose = "purpose"

	// FieldEncryptedContent targets the base64 AES-GCM payload of an envelope.
	FieldEncryptedContent = "encrypted_content"

	// FieldWrappedKey targets the wrapped symmetric key of an envelope.
	FieldWrappedKey = "client_public_key"

	// FieldCiphertext targets the raw ciphertext of a blob.
	FieldCiphertext = "ciphertext"

	// FieldSize targets the plaintext size of a blob.
	FieldSize = "size"

	// FieldName targets the optional file name of a blob.
	FieldName = "name"
)

const maxBlobNameLength = 255

type EnvelopeValidator struct {
}

func NewEnvelopeValidator() Validator {
	return &EnvelopeValidator{}
}

func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptedRecord:
		return v.validateRecord(value, fields...)
	case *models.EncryptedRecord:
		return v.validateRecord(*value, fields...)

	case models.WrappedKeyUpdate:
		return v.validateWrappedKeyUpdate(value, fields...)
	case *models.WrappedKeyUpdate:
		return v.validateWrappedKeyUpdate(*value, fields...)

	case models.RecordFilter:
		return v.validateFilter(value, fields...)
	case *models.RecordFilter:
		return v.validateFilter(*value, fields...)

	case models.EncryptedBlob:
		return v.validateBlob(value, fields...)
	case *models.EncryptedBlob:
		return v.validateBlob(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EnvelopeValidator) validateRecord(record models.EncryptedRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldPurpose, FieldEncryptedContent, FieldWrappedKey}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(record.ID) == "" {
				return ErrInvalidRecordID
			}
		case FieldOwnerID:
			if record.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldPurpose:
			if !record.Purpose.Valid() {
				return ErrInvalidPurpose
			}
		case FieldEncryptedContent:
			if err := validateEncoded(record.EncryptedContent, ErrEmptyEncryptedContent); err != nil {
				return err
			}
		case FieldWrappedKey:
			if err := validateEncoded(record.WrappedKey, ErrEmptyWrappedKey); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EnvelopeValidator) validateWrappedKeyUpdate(update models.WrappedKeyUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldWrappedKey}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(update.ID) == "" {
				return ErrInvalidRecordID
			}
		case FieldOwnerID:
			if update.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldWrappedKey:
			if err := validateEncoded(update.WrappedKey, ErrEmptyWrappedKey); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EnvelopeValidator) validateFilter(filter models.RecordFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldPurpose}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if filter.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldPurpose:
			// empty purpose lists every purpose
			if filter.Purpose != "" && !filter.Purpose.Valid() {
				return ErrInvalidPurpose
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EnvelopeValidator) validateBlob(blob models.EncryptedBlob, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldPurpose, FieldCiphertext, FieldWrappedKey, FieldSize, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(blob.ID) == "" {
				return ErrInvalidRecordID
			}
		case FieldOwnerID:
			if blob.OwnerID <= 0 {
				return ErrInvalidOwnerID
			}
		case FieldPurpose:
			if !blob.Purpose.Valid() {
				return ErrInvalidPurpose
			}
		case FieldCiphertext:
			if len(blob.Ciphertext) == 0 {
				return ErrEmptyCiphertext
			}
		case FieldWrappedKey:
			if err := validateEncoded(blob.WrappedKey, ErrEmptyWrappedKey); err != nil {
				return err
			}
		case FieldSize:
			if blob.Size < 0 {
				return ErrInvalidSize
			}
		case FieldName:
			if len(blob.Name) > maxBlobNameLength || strings.ContainsAny(blob.Name, "/\\\x00") {
				return ErrInvalidName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEncoded(value string, errEmpty error) error {
	if value == "" {
		return errEmpty
	}
	if _, err := base64.StdEncoding.DecodeString(value); err != nil {
		return ErrMalformedEncryptedField
	}
	return nil
}
