// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the record server.
//
// The primary abstraction is [RecordServerAdapter], which decouples the
// client services from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrConflict] for 409).
//
// Only envelopes travel through this package. Plaintext and private keys
// never do.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-clinic-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// RecordServerAdapter defines transport-agnostic communication with the
// record server. Implementations are responsible for serialisation and for
// mapping transport-level errors to the sentinel values defined in this
// package.
type RecordServerAdapter interface {
	// SaveRecord uploads a new encrypted record. The server assigns ID and
	// timestamps and the stored record is returned.
	SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error)

	// ListRecords fetches the records matching filter, newest first.
	ListRecords(ctx context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error)

	// GetRecord fetches a single record of ownerID. Returns [ErrNotFound]
	// (wrapped) if it does not exist.
	GetRecord(ctx context.Context, ownerID int64, id string) (models.EncryptedRecord, error)

	// UpdateWrappedKey replaces the wrapped key of one record. The encrypted
	// content on the server is left untouched.
	UpdateWrappedKey(ctx context.Context, update models.WrappedKeyUpdate) error

	// DeleteRecord removes one record of ownerID.
	DeleteRecord(ctx context.Context, ownerID int64, id string) error

	// SaveBlob uploads an encrypted attachment and returns its stored
	// metadata. The returned blob carries no ciphertext.
	SaveBlob(ctx context.Context, blob models.EncryptedBlob) (models.EncryptedBlob, error)

	// GetBlob downloads an encrypted attachment including its ciphertext.
	GetBlob(ctx context.Context, ownerID int64, id string) (models.EncryptedBlob, error)

	// GetServerVersion returns the version string reported by the server.
	GetServerVersion(ctx context.Context) (string, error)
}
