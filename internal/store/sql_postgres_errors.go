// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed statement may
// be attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, bad input,
	// syntax errors and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, serialization
	// conflicts, deadlocks and a server that is starting or shutting down.
	Retryable
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for errors coming
// from pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Wrapped *pgconn.PgError values
// are classified by SQLSTATE; a broken driver connection is retryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}
	return NonRetryable
}

// ClassifyPgError classifies by SQLSTATE. Class 08 (connection exception)
// and class 40 (transaction rollback) are retried as a whole; from class 57
// only the codes raised while the server restarts are.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown:
		return Retryable
	default:
		return NonRetryable
	}
}
