// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptedBlob is an encrypted binary attachment. Ciphertext is the AES-GCM
// output (ciphertext followed by the tag); WrappedKey has the same meaning
// as in [Envelope].
type EncryptedBlob struct {
	ID         string     `json:"id"`
	OwnerID    int64      `json:"owner_id"`
	Purpose    Purpose    `json:"purpose"`
	Name       string     `json:"name,omitempty"`
	Ciphertext []byte     `json:"ciphertext"`
	WrappedKey string     `json:"client_public_key"`
	Size       int64      `json:"size"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

// Attachment is a decrypted attachment on the client.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Data []byte `json:"data"`
}
