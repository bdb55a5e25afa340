// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoOwnerID is returned by the owner middleware when the owner_id
	// query parameter is missing.
	ErrNoOwnerID = errors.New("owner_id query parameter is missing")

	// ErrInvalidOwnerID is returned when owner_id is not a positive integer.
	ErrInvalidOwnerID = errors.New("owner_id must be a positive integer")

	// ErrInvalidLimit is returned when the limit query parameter cannot be
	// parsed as an unsigned integer.
	ErrInvalidLimit = errors.New("limit must be a non-negative integer")

	// ErrInvalidOffset is returned when the offset query parameter cannot be
	// parsed as an unsigned integer.
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")
)
