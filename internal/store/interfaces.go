// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-clinic-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyPairRepository is the device-local key pair store. Private keys never
// leave it except into process memory.
type KeyPairRepository interface {
	// SaveKeyPair inserts pair unless one already exists for its owner and
	// purpose. It reports whether pair was inserted; an existing pair is
	// never overwritten.
	SaveKeyPair(ctx context.Context, pair models.StoredKeyPair) (bool, error)
	GetKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) (models.StoredKeyPair, error)
	// PurgePrivateKey removes only the private half.
	PurgePrivateKey(ctx context.Context, ownerID int64, purpose models.Purpose) error
	DeleteKeyPair(ctx context.Context, ownerID int64, purpose models.Purpose) error
	Close() error
}

// RecordRepository persists encrypted records on the record server.
type RecordRepository interface {
	SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error)
	GetRecord(ctx context.Context, ownerID int64, id string) (models.EncryptedRecord, error)
	ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error)
	UpdateWrappedKey(ctx context.Context, update models.WrappedKeyUpdate) error
	DeleteRecord(ctx context.Context, ownerID int64, id string) error
}

// BlobRepository persists blob metadata on the record server.
type BlobRepository interface {
	SaveBlob(ctx context.Context, blob models.EncryptedBlob) (models.EncryptedBlob, error)
	GetBlob(ctx context.Context, ownerID int64, id string) (models.EncryptedBlob, error)
	DeleteBlob(ctx context.Context, ownerID int64, id string) error
}

// BlobFileStorage keeps blob ciphertext outside the database.
type BlobFileStorage interface {
	WriteBlob(ctx context.Context, id string, ciphertext []byte) error
	ReadBlob(ctx context.Context, id string) ([]byte, error)
	RemoveBlob(ctx context.Context, id string) error
}
