// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clinic-vault/internal/adapter"
	"github.com/MKhiriev/go-clinic-vault/internal/crypto"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/models"
)

type clientAttachmentService struct {
	serverAdapter adapter.RecordServerAdapter
	keys          KeyPairStore
	files         crypto.FileEnvelope

	logger *logger.Logger
}

// NewClientAttachmentService returns a [ClientAttachmentService]. All
// attachments are encrypted under the owner's attachments key pair.
func NewClientAttachmentService(serverAdapter adapter.RecordServerAdapter, keys KeyPairStore, files crypto.FileEnvelope, logger *logger.Logger) ClientAttachmentService {
	return &clientAttachmentService{
		serverAdapter: serverAdapter,
		keys:          keys,
		files:         files,
		logger:        logger,
	}
}

func (s *clientAttachmentService) Upload(ctx context.Context, ownerID int64, name string, data []byte) (models.EncryptedBlob, error) {
	pair, err := s.keys.InitializeKeyPair(ctx, ownerID, models.PurposeAttachments)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("initialize key pair: %w", err)
	}
	if !pair.HasPublicKey() {
		return models.EncryptedBlob{}, ErrNoPublicKey
	}

	blob, err := s.files.EncryptFile(data, pair.PublicKey)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("encrypt attachment: %w", err)
	}
	blob.OwnerID = ownerID
	blob.Purpose = models.PurposeAttachments
	blob.Name = name

	saved, err := s.serverAdapter.SaveBlob(ctx, blob)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("upload attachment: %w", mapAdapterError(err))
	}

	return saved, nil
}

// Download fetches and decrypts one attachment. Unlike records, an
// attachment that cannot be opened is an error: there is no partial
// rendering of binary content.
func (s *clientAttachmentService) Download(ctx context.Context, ownerID int64, id string) (models.Attachment, error) {
	blob, err := s.serverAdapter.GetBlob(ctx, ownerID, id)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("download attachment: %w", mapAdapterError(err))
	}

	pair := s.keys.RetrieveKeyPair(ctx, ownerID, blob.Purpose)
	data, err := s.files.DecryptFile(blob, pair.PrivateKey)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "clientAttachmentService.Download").
			Int64("owner_id", ownerID).
			Str("blob_id", id).
			Msg("attachment could not be decrypted")
		return models.Attachment{}, fmt.Errorf("decrypt attachment %s: %w", id, err)
	}

	return models.Attachment{ID: blob.ID, Name: blob.Name, Data: data}, nil
}
