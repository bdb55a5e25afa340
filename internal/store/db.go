// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/migrations"
)

const maxRetries = 3

// DB wraps a *sql.DB with the dialect-specific pieces repositories need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	newBackOff         func() backoff.BackOff
	target             migrations.Target
	logger             *logger.Logger
}

// Migrate applies the schema matching the dialect DB was opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.target)
}

// withRetry runs op, retrying while the classifier reports the failure as
// transient and the retry budget is not spent.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	if db.errorClassificator == nil {
		return op()
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(db.backOff(), maxRetries), ctx)

	return backoff.RetryNotify(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) == Retryable {
			return err
		}
		return backoff.Permanent(err)
	}, policy, func(err error, wait time.Duration) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Dur("wait", wait).
			Msg("retrying transient database error")
	})
}

func (db *DB) backOff() backoff.BackOff {
	if db.newBackOff != nil {
		return db.newBackOff()
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = 2 * time.Second
	b.MaxElapsedTime = 10 * time.Second
	return b
}
