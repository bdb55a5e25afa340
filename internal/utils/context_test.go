// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOwnerIDCtxKey(t *testing.T) {
	if OwnerIDCtxKey.String() != "ownerID" {
		t.Errorf("expected 'ownerID', got '%s'", OwnerIDCtxKey.String())
	}
}

func TestGetOwnerIDFromContext_Success(t *testing.T) {
	ctx := WithOwnerID(context.Background(), 42)

	ownerID, ok := GetOwnerIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if ownerID != 42 {
		t.Errorf("expected ownerID=42, got %d", ownerID)
	}
}

func TestGetOwnerIDFromContext_Missing(t *testing.T) {
	ownerID, ok := GetOwnerIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if ownerID != 0 {
		t.Errorf("expected ownerID=0, got %d", ownerID)
	}
}

func TestGetOwnerIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OwnerIDCtxKey, "not-an-int64")

	ownerID, ok := GetOwnerIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if ownerID != 0 {
		t.Errorf("expected ownerID=0, got %d", ownerID)
	}
}
