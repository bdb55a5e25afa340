// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application: type-safe context keys,
// HTTP response writing, HTTP client initialization and ID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key under which the record server stores the owner
// identifier of the current request.
//
//	ctx := context.WithValue(ctx, utils.OwnerIDCtxKey, int64(42))
var OwnerIDCtxKey = contextKey("ownerID")

// GetOwnerIDFromContext retrieves the owner identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetOwnerIDFromContext(ctx context.Context) (int64, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(int64)
	return ownerID, ok
}

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID int64) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}
