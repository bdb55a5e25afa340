// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries.
//
// Server side ([Services]) stores and serves opaque envelopes and never
// decrypts anything. Client side ([ClientServices]) owns the key pairs and
// performs every encryption and decryption before data reaches the record
// server.
package service

import (
	"context"

	"github.com/MKhiriev/go-clinic-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordService manages encrypted records on the record server.
type RecordService interface {
	SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error)
	GetRecord(ctx context.Context, ownerID int64, id string) (models.EncryptedRecord, error)
	ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error)
	UpdateWrappedKey(ctx context.Context, update models.WrappedKeyUpdate) error
	DeleteRecord(ctx context.Context, ownerID int64, id string) error
}

// BlobService manages encrypted attachments on the record server. Metadata
// goes to the database, ciphertext to the blob directory.
type BlobService interface {
	SaveBlob(ctx context.Context, blob models.EncryptedBlob) (models.EncryptedBlob, error)
	GetBlob(ctx context.Context, ownerID int64, id string) (models.EncryptedBlob, error)
	DeleteBlob(ctx context.Context, ownerID int64, id string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
