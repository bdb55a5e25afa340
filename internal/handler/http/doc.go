// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the record server.
//
// The server stores envelopes and attachment ciphertext as opaque data; it
// never holds a private key and never sees plaintext. Every request is
// scoped to an owner: listings and reads take the owner_id query
// parameter, writes carry it in the JSON body. Tracing, access logging and
// response compression are applied as middleware before requests reach
// the service layer.
package http
