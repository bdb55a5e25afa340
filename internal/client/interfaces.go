// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-clinic-vault/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// Browser opens an interactive view over decrypted records.
type Browser interface {
	Browse(ctx context.Context, ownerID int64, purpose models.Purpose) error
}
