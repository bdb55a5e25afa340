// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive note browser of the client.
//
// The browser lists one owner's records, decrypted on the device, and shows
// records that cannot be opened with a placeholder instead of failing.
package tui
