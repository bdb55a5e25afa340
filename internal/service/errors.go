// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoOwnerID     = errors.New("no owner ID was given")
	ErrValidationPurpose       = errors.New("invalid purpose")
	ErrValidationEmptyEnvelope = errors.New("envelope is empty or malformed")

	// ErrNoPublicKey is returned when content cannot be encrypted because no
	// public key exists for the owner and purpose.
	ErrNoPublicKey = errors.New("no public key for owner and purpose")
)
