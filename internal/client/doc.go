// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the clinic vault command-line client.
//
// Commands manage the device key pairs, encrypt notes and attachments before
// they are uploaded and decrypt them after download. Records that cannot be
// opened on this device are printed as a placeholder instead of failing the
// whole command.
package client
