// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clinic-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// KeyPairStore owns the key pairs of this device, one per owner and purpose.
type KeyPairStore interface {
	// InitializeKeyPair returns the stored pair for ownerID and purpose,
	// generating and persisting one on first use. Repeated and concurrent
	// calls return the same pair. A pair whose private half was purged is
	// returned as-is and never regenerated.
	InitializeKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) (models.KeyPair, error)

	// RetrieveKeyPair is best effort: a missing pair yields an empty
	// [models.KeyPair] and an unreadable private key yields a public-only
	// pair. It never fails.
	RetrieveKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) models.KeyPair

	// PurgePrivateKey drops the private half from this device.
	PurgePrivateKey(ctx context.Context, ownerID int64, purpose models.Purpose) error
}

// ClientRecordService encrypts records before upload and decrypts them after
// download.
type ClientRecordService interface {
	// Create encrypts payload for the owner's own public key and uploads it.
	Create(ctx context.Context, ownerID int64, purpose models.Purpose, payload any) (models.EncryptedRecord, error)

	// List downloads the owner's records and decrypts them concurrently.
	// The result keeps the server order; records that cannot be opened come
	// back marked undecryptable instead of failing the call. An empty
	// purpose lists every purpose.
	List(ctx context.Context, ownerID int64, purpose models.Purpose) ([]models.PlaintextRecord, error)

	Get(ctx context.Context, ownerID int64, id string) (models.PlaintextRecord, error)
	Delete(ctx context.Context, ownerID int64, id string) error

	// Share returns the record re-wrapped for another public key. Nothing is
	// written to the server.
	Share(ctx context.Context, ownerID int64, id string, recipientPublicKey []byte) (models.Envelope, error)

	// Rewrap re-wraps every readable record of purpose for newPublicKey and
	// pushes the new wrapped keys. Unreadable records are skipped.
	Rewrap(ctx context.Context, ownerID int64, purpose models.Purpose, newPublicKey []byte) (models.RewrapReport, error)
}

// ClientAttachmentService encrypts binary attachments.
type ClientAttachmentService interface {
	Upload(ctx context.Context, ownerID int64, name string, data []byte) (models.EncryptedBlob, error)
	Download(ctx context.Context, ownerID int64, id string) (models.Attachment, error)
}
