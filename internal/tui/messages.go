// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-clinic-vault/models"

type listLoadedMsg struct {
	items []noteItem
	err   error
}

type copiedMsg struct {
	err error
}

// noteItem is one row of the browser. A record that could not be decrypted
// has undecryptable set and an empty note.
type noteItem struct {
	id            string
	note          models.SessionNote
	undecryptable bool
}
