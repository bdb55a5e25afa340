// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/internal/validators"
	"github.com/MKhiriev/go-clinic-vault/models"
)

type blobService struct {
	blobRepository store.BlobRepository
	blobFiles      store.BlobFileStorage
	ids            idGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewBlobService(blobRepository store.BlobRepository, blobFiles store.BlobFileStorage, ids idGenerator, logger *logger.Logger) BlobService {
	return &blobService{
		blobRepository: blobRepository,
		blobFiles:      blobFiles,
		ids:            ids,
		validator:      validators.NewEnvelopeValidator(),
		logger:         logger,
	}
}

// SaveBlob writes the ciphertext file first and the metadata row second.
// If the row cannot be stored the file is removed again. The returned blob
// carries metadata only.
func (b *blobService) SaveBlob(ctx context.Context, blob models.EncryptedBlob) (models.EncryptedBlob, error) {
	if err := b.validator.Validate(ctx, blob); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("error during blob validation before saving: %w", mapValidationError(err))
	}

	blob.ID = b.ids.Generate()
	blob.CreatedAt = nil

	if err := b.blobFiles.WriteBlob(ctx, blob.ID, blob.Ciphertext); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("write blob file: %w", err)
	}

	saved, err := b.blobRepository.SaveBlob(ctx, blob)
	if err != nil {
		if rmErr := b.blobFiles.RemoveBlob(ctx, blob.ID); rmErr != nil {
			logger.FromContext(ctx).Err(rmErr).
				Str("func", "blobService.SaveBlob").
				Str("blob_id", blob.ID).
				Msg("failed to remove orphaned blob file")
		}
		return models.EncryptedBlob{}, fmt.Errorf("save blob metadata: %w", err)
	}

	saved.Ciphertext = nil
	return saved, nil
}

func (b *blobService) GetBlob(ctx context.Context, ownerID int64, id string) (models.EncryptedBlob, error) {
	if err := validateOwnerAndID(ownerID, id); err != nil {
		return models.EncryptedBlob{}, err
	}

	blob, err := b.blobRepository.GetBlob(ctx, ownerID, id)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	ciphertext, err := b.blobFiles.ReadBlob(ctx, blob.ID)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("read blob file: %w", err)
	}

	blob.Ciphertext = ciphertext
	return blob, nil
}

// DeleteBlob removes the metadata row, then the file. A file that cannot be
// removed is logged and left behind; the blob is already unreachable.
func (b *blobService) DeleteBlob(ctx context.Context, ownerID int64, id string) error {
	if err := validateOwnerAndID(ownerID, id); err != nil {
		return err
	}

	if err := b.blobRepository.DeleteBlob(ctx, ownerID, id); err != nil {
		return err
	}

	if err := b.blobFiles.RemoveBlob(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "blobService.DeleteBlob").
			Str("blob_id", id).
			Msg("blob file left behind")
	}

	return nil
}
