// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of both databases: the record
// server's PostgreSQL schema and the client's SQLite key store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Target selects a schema and the goose dialect it is written for.
type Target struct {
	Dialect string
	Dir     string
}

var (
	// Server is the record server schema (PostgreSQL through pgx).
	Server = Target{Dialect: "pgx", Dir: "server"}
	// Client is the device-local key store schema.
	Client = Target{Dialect: "sqlite3", Dir: "client"}
)

// goose keeps its dialect and filesystem in package state.
var mu sync.Mutex

// Migrate applies all pending migrations of target to db.
func Migrate(db *sql.DB, target Target) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(target.Dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, target.Dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
