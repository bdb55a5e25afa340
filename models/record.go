// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"time"
)

// UndecryptablePlaceholder is the text shown in place of content that could
// not be decrypted on this device.
const UndecryptablePlaceholder = "content could not be decrypted"

// Envelope is the two-part ciphertext produced by envelope encryption.
//
// WrappedKey carries the per-record symmetric key and nonce wrapped under
// the recipient's public key. On the wire and in the database it keeps the
// legacy column name "client_public_key".
type Envelope struct {
	EncryptedContent string `json:"encrypted_content"`
	WrappedKey       string `json:"client_public_key"`
}

// Empty reports whether either part of the envelope is missing.
func (e Envelope) Empty() bool {
	return e.EncryptedContent == "" || e.WrappedKey == ""
}

// EncryptedRecord is a clinical record as persisted by the record server.
// The server only ever sees the envelope, never plaintext or private keys.
type EncryptedRecord struct {
	ID      string  `json:"id"`
	OwnerID int64   `json:"owner_id"`
	Purpose Purpose `json:"purpose"`
	Envelope
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// RecordFilter narrows a record listing. Offset skips that many records of
// the newest-first order, so a caller pages with Limit and Offset.
type RecordFilter struct {
	OwnerID int64   `json:"owner_id"`
	Purpose Purpose `json:"purpose,omitempty"`
	Limit   uint64  `json:"limit,omitempty"`
	Offset  uint64  `json:"offset,omitempty"`
}

// WrappedKeyUpdate replaces the wrapped key of one record. The encrypted
// content is untouched.
type WrappedKeyUpdate struct {
	ID         string `json:"id"`
	OwnerID    int64  `json:"owner_id"`
	WrappedKey string `json:"client_public_key"`
}

// PlaintextRecord is the client-side result of opening an envelope.
//
// When Undecryptable is true, Content is nil and Cause tells why (missing
// key, authentication failure or malformed payload). Callers render
// [UndecryptablePlaceholder] for such records and carry on with the rest.
type PlaintextRecord struct {
	ID            string          `json:"id,omitempty"`
	Content       json.RawMessage `json:"content,omitempty"`
	Undecryptable bool            `json:"undecryptable"`
	Cause         error           `json:"-"`
}

// ErrRecordUndecryptable is returned by [PlaintextRecord.Decode] for records
// that could not be decrypted.
var ErrRecordUndecryptable = errors.New("record is undecryptable")

// Decode unmarshals the decrypted content into target.
func (p PlaintextRecord) Decode(target any) error {
	if p.Undecryptable {
		return ErrRecordUndecryptable
	}
	return json.Unmarshal(p.Content, target)
}

// SessionNote is the structured payload of a session note.
type SessionNote struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	AttachmentKeys []string `json:"attachmentKeys,omitempty"`
}

// RewrapReport summarises a bulk re-wrap of one owner's records.
type RewrapReport struct {
	// Rewrapped counts records whose wrapped key was replaced on the server.
	Rewrapped int `json:"rewrapped"`
	// Skipped counts records that could not be opened and were left as-is.
	Skipped int `json:"skipped"`
	// SkippedIDs lists the records counted in Skipped.
	SkippedIDs []string `json:"skipped_ids,omitempty"`
}
