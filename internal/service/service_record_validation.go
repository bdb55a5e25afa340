// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-clinic-vault/internal/validators"
	"github.com/MKhiriev/go-clinic-vault/models"
)

// maxListLimit caps a single listing.
const maxListLimit = 1000

// RecordServiceWrapper defines middleware composition for RecordService.
// Implementations wrap an existing RecordService to add behavior such as
// validation.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}

type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewEnvelopeValidator(),
	}
}

func (v *RecordValidationService) SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("error during record validation before saving: %w", mapValidationError(err))
	}

	return v.inner.SaveRecord(ctx, record)
}

func (v *RecordValidationService) GetRecord(ctx context.Context, ownerID int64, id string) (models.EncryptedRecord, error) {
	if err := validateOwnerAndID(ownerID, id); err != nil {
		return models.EncryptedRecord{}, err
	}

	return v.inner.GetRecord(ctx, ownerID, id)
}

func (v *RecordValidationService) ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("error during record filter validation: %w", mapValidationError(err))
	}
	if filter.Limit == 0 || filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return v.inner.ListRecords(ctx, filter)
}

func (v *RecordValidationService) UpdateWrappedKey(ctx context.Context, update models.WrappedKeyUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("error during wrapped key validation: %w", mapValidationError(err))
	}

	return v.inner.UpdateWrappedKey(ctx, update)
}

func (v *RecordValidationService) DeleteRecord(ctx context.Context, ownerID int64, id string) error {
	if err := validateOwnerAndID(ownerID, id); err != nil {
		return err
	}

	return v.inner.DeleteRecord(ctx, ownerID, id)
}

func (v *RecordValidationService) Wrap(wrapped RecordService) RecordService {
	v.inner = wrapped
	return v
}

func validateOwnerAndID(ownerID int64, id string) error {
	if ownerID <= 0 {
		return ErrValidationNoOwnerID
	}
	if strings.TrimSpace(id) == "" {
		return ErrInvalidDataProvided
	}
	return nil
}

// mapValidationError lifts a validator error into the service error the
// handler knows how to answer.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidOwnerID):
		return fmt.Errorf("%w: %w", ErrValidationNoOwnerID, err)
	case errors.Is(err, validators.ErrInvalidPurpose):
		return fmt.Errorf("%w: %w", ErrValidationPurpose, err)
	case errors.Is(err, validators.ErrEmptyEncryptedContent),
		errors.Is(err, validators.ErrEmptyWrappedKey),
		errors.Is(err, validators.ErrMalformedEncryptedField),
		errors.Is(err, validators.ErrEmptyCiphertext):
		return fmt.Errorf("%w: %w", ErrValidationEmptyEnvelope, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
