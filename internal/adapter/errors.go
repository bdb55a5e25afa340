// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrBadRequest is returned when the server rejects the request as
	// invalid (HTTP 400), e.g. an empty envelope or an unknown purpose.
	ErrBadRequest = errors.New("bad request")

	// ErrNotFound is returned when the requested record or blob does not
	// exist for the given owner (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for HTTP 409.
	ErrConflict = errors.New("conflict")

	// ErrPayloadTooLarge is returned for HTTP 413: the envelope or
	// attachment exceeds the server's body limit.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrServerUnavailable is returned for HTTP 502, 503 and 504 once the
	// retries are used up.
	ErrServerUnavailable = errors.New("record server unavailable")

	// ErrInternalServerError is returned for HTTP 500.
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidServerAddress is returned by [NewHTTPServerAdapter] when the
	// configured server URL cannot be used.
	ErrInvalidServerAddress = errors.New("invalid server address")
)
