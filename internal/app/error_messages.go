// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// record server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client matches on them to restore typed errors, so
// the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails structural validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgPayloadTooLarge is returned when the request body exceeds the
	// server's limit.
	MsgPayloadTooLarge = "payload too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoOwnerIDProvided is returned when owner_id is missing or not a
	// positive integer.
	MsgNoOwnerIDProvided = "no owner ID provided"

	// MsgInvalidPurpose is returned for a purpose outside the known set.
	MsgInvalidPurpose = "invalid purpose"

	// MsgEmptyEnvelope is returned when encrypted_content or
	// client_public_key is missing or not base64.
	MsgEmptyEnvelope = "encrypted_content and client_public_key are required"

	// MsgRecordNotFound is returned when a record does not exist for the
	// given owner.
	MsgRecordNotFound = "record not found"

	// MsgRecordAlreadyExists is returned on a record ID collision.
	MsgRecordAlreadyExists = "record already exists"

	// MsgBlobNotFound is returned when an attachment does not exist for the
	// given owner.
	MsgBlobNotFound = "blob not found"
)
