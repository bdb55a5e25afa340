// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

type (
	// SymmetricKey is a 256-bit AES key encoded as 64 lowercase hex
	// characters. It is generated fresh for every record and only ever
	// persisted inside a wrapped key.
	SymmetricKey string

	// Nonce is a 96-bit AES-GCM nonce encoded as 24 lowercase hex
	// characters. It is generated fresh for every encryption.
	Nonce string
)
