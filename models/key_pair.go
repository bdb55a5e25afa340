// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Purpose is a logical namespace that scopes a key pair to one class of
// clinical content. Every professional holds one key pair per purpose.
type Purpose string

const (
	// PurposeSessionNotes scopes keys protecting therapy session notes.
	PurposeSessionNotes Purpose = "session_notes"
	// PurposeTestResults scopes keys protecting psychological test answers.
	PurposeTestResults Purpose = "test_results"
	// PurposeAttachments scopes keys protecting binary attachments.
	PurposeAttachments Purpose = "attachments"
)

// Purposes lists every purpose known to the application.
var Purposes = []Purpose{PurposeSessionNotes, PurposeTestResults, PurposeAttachments}

// Valid reports whether p is one of the known purposes.
func (p Purpose) Valid() bool {
	for _, known := range Purposes {
		if p == known {
			return true
		}
	}
	return false
}

func (p Purpose) String() string {
	return string(p)
}

// KeyPair is the asymmetric key pair of one professional for one purpose.
//
// PublicKey and PrivateKey are raw 32-byte X25519 keys. PrivateKey is empty
// when the private half is not available on this device (never generated
// here, purged, or sealed under a passphrase that could not be opened).
// The private key lives only in the local key store and in memory; it is
// never part of any request sent to the record server.
type KeyPair struct {
	OwnerID    int64      `json:"owner_id"`
	Purpose    Purpose    `json:"purpose"`
	PublicKey  []byte     `json:"public_key"`
	PrivateKey []byte     `json:"private_key,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// HasPublicKey reports whether the public half is present.
func (k KeyPair) HasPublicKey() bool {
	return len(k.PublicKey) > 0
}

// HasPrivateKey reports whether the private half is present.
func (k KeyPair) HasPrivateKey() bool {
	return len(k.PrivateKey) > 0
}

// PublicOnly returns a copy of k without the private half.
func (k KeyPair) PublicOnly() KeyPair {
	k.PrivateKey = nil
	return k
}

// StoredKeyPair is the at-rest form of a [KeyPair] inside the local key
// store. SealedPrivateKey holds the private key, optionally sealed with a
// passphrase; it is nil once the private key has been purged.
type StoredKeyPair struct {
	OwnerID          int64      `json:"owner_id"`
	Purpose          Purpose    `json:"purpose"`
	PublicKey        []byte     `json:"public_key"`
	SealedPrivateKey []byte     `json:"sealed_private_key,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}
