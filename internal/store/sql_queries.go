// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-clinic-vault/models"
)

// SQLite key store.
const (
	insertKeyPair = `INSERT OR IGNORE INTO key_pairs (owner_id, purpose, public_key, sealed_private_key, created_at)
		VALUES (?, ?, ?, ?, ?);`

	selectKeyPair = `SELECT owner_id, purpose, public_key, sealed_private_key, created_at
		FROM key_pairs
		WHERE owner_id = ? AND purpose = ?;`

	purgePrivateKey = `UPDATE key_pairs
		SET sealed_private_key = NULL
		WHERE owner_id = ? AND purpose = ?;`

	deleteKeyPair = `DELETE FROM key_pairs
		WHERE owner_id = ? AND purpose = ?;`
)

// PostgreSQL record server.
const (
	insertRecord = `INSERT INTO records (id, owner_id, purpose, encrypted_content, client_public_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, purpose, encrypted_content, client_public_key, created_at, updated_at;`

	selectRecord = `SELECT id, owner_id, purpose, encrypted_content, client_public_key, created_at, updated_at
		FROM records
		WHERE owner_id = $1 AND id = $2;`

	updateWrappedKey = `UPDATE records
		SET client_public_key = $1, updated_at = NOW()
		WHERE owner_id = $2 AND id = $3;`

	deleteRecord = `DELETE FROM records
		WHERE owner_id = $1 AND id = $2;`

	insertBlob = `INSERT INTO blobs (id, owner_id, purpose, name, client_public_key, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at;`

	selectBlob = `SELECT id, owner_id, purpose, name, client_public_key, size, created_at
		FROM blobs
		WHERE owner_id = $1 AND id = $2;`

	deleteBlob = `DELETE FROM blobs
		WHERE owner_id = $1 AND id = $2;`
)

var recordColumns = []string{
	"id", "owner_id", "purpose", "encrypted_content", "client_public_key", "created_at", "updated_at",
}

// buildListRecordsQuery builds the listing query for filter, newest first.
// The id tie-break keeps pages stable for records sharing a created_at.
func buildListRecordsQuery(filter models.RecordFilter) (string, []any, error) {
	builder := sq.Select(recordColumns...).
		From("records").
		Where(sq.Eq{"owner_id": filter.OwnerID}).
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(sq.Dollar)

	if filter.Purpose != "" {
		builder = builder.Where(sq.Eq{"purpose": filter.Purpose.String()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
