// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	errOwnerIDNotSet = errors.New("owner id is not set")
	errNothingToCopy = errors.New("nothing to copy")
)
