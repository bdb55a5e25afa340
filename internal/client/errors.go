// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errNoServices        = errors.New("client services are not set")
	errOwnerIDNotSet     = errors.New("owner id is not set, use --owner or APP_OWNER_ID")
	errInvalidPurpose    = errors.New("invalid purpose")
	errInvalidPublicKey  = errors.New("public key must be base64 encoded")
	errNoRecipient       = errors.New("recipient public key is required, use --to")
	errEmptyNote         = errors.New("note content is empty")
	errPurgeNotConfirmed = errors.New("purge is irreversible, repeat with --yes")
)
