// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-clinic-vault/internal/adapter"
	"github.com/MKhiriev/go-clinic-vault/internal/app"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgNoOwnerIDProvided:
			return ErrValidationNoOwnerID
		case app.MsgInvalidPurpose:
			return ErrValidationPurpose
		case app.MsgEmptyEnvelope:
			return ErrValidationEmptyEnvelope
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgBlobNotFound {
			return store.ErrBlobNotFound
		}
		return store.ErrRecordNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgRecordAlreadyExists {
			return store.ErrRecordAlreadyExists
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
