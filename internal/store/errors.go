// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyPairNotFound is returned when no key pair exists for the
	// requested owner and purpose.
	ErrKeyPairNotFound = errors.New("key pair was not found")

	// ErrRecordNotFound is returned when a record does not exist or belongs
	// to another owner.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordAlreadyExists is returned on an ID collision.
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrRecordNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrRecordNotSaved = errors.New("record was not saved")

	// ErrBlobNotFound is returned when blob metadata or its file is missing.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobID is returned for identifiers that cannot name a file.
	ErrInvalidBlobID = errors.New("invalid blob id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// isUniqueViolation reports whether err is a PostgreSQL unique violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
