// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/mock"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validBlob() models.EncryptedBlob {
	return models.EncryptedBlob{
		OwnerID:    testOwnerID,
		Purpose:    models.PurposeAttachments,
		Name:       "scan.pdf",
		Ciphertext: []byte{0xde, 0xad, 0xbe, 0xef},
		WrappedKey: "d3JhcHBlZA==",
		Size:       4,
	}
}

func newTestBlobSvc(t *testing.T, ctrl *gomock.Controller) (BlobService, *mock.MockBlobRepository, *mock.MockBlobFileStorage) {
	t.Helper()
	repo := mock.NewMockBlobRepository(ctrl)
	files := mock.NewMockBlobFileStorage(ctrl)
	return NewBlobService(repo, files, fixedID("blob-1"), logger.Nop()), repo, files
}

// ── SaveBlob ─────────────────────────────────────────────────────────────────

func TestBlobService_SaveBlob_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBlobSvc(t, ctrl)
	ctx := context.Background()
	blob := validBlob()

	stored := blob
	stored.ID = "blob-1"

	gomock.InOrder(
		files.EXPECT().WriteBlob(ctx, "blob-1", blob.Ciphertext).Return(nil),
		repo.EXPECT().SaveBlob(ctx, stored).Return(stored, nil),
	)

	saved, err := svc.SaveBlob(ctx, blob)

	require.NoError(t, err)
	assert.Equal(t, "blob-1", saved.ID)
	assert.Nil(t, saved.Ciphertext)
}

func TestBlobService_SaveBlob_MetadataFailureRemovesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBlobSvc(t, ctrl)
	ctx := context.Background()

	files.EXPECT().WriteBlob(ctx, "blob-1", gomock.Any()).Return(nil)
	repo.EXPECT().SaveBlob(ctx, gomock.Any()).Return(models.EncryptedBlob{}, store.ErrRecordNotSaved)
	files.EXPECT().RemoveBlob(ctx, "blob-1").Return(nil)

	_, err := svc.SaveBlob(ctx, validBlob())

	assert.ErrorIs(t, err, store.ErrRecordNotSaved)
}

func TestBlobService_SaveBlob_FileFailureSkipsMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBlobSvc(t, ctrl)
	ctx := context.Background()

	files.EXPECT().WriteBlob(ctx, "blob-1", gomock.Any()).Return(errors.New("disk full"))
	repo.EXPECT().SaveBlob(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SaveBlob(ctx, validBlob())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write blob file")
}

func TestBlobService_SaveBlob_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBlobSvc(t, ctrl)
	ctx := context.Background()

	blob := validBlob()
	blob.Ciphertext = nil
	_, err := svc.SaveBlob(ctx, blob)
	assert.ErrorIs(t, err, ErrValidationEmptyEnvelope)

	blob = validBlob()
	blob.Name = "../etc/passwd"
	_, err = svc.SaveBlob(ctx, blob)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── GetBlob / DeleteBlob ─────────────────────────────────────────────────────

func TestBlobService_GetBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBlobSvc(t, ctrl)
	ctx := context.Background()
	meta := validBlob()
	meta.ID = "blob-1"
	meta.Ciphertext = nil

	repo.EXPECT().GetBlob(ctx, testOwnerID, "blob-1").Return(meta, nil)
	files.EXPECT().ReadBlob(ctx, "blob-1").Return([]byte{1, 2, 3}, nil)

	got, err := svc.GetBlob(ctx, testOwnerID, "blob-1")

	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, got.Ciphertext)
	assert.Equal(t, "scan.pdf", got.Name)
}

func TestBlobService_GetBlob_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBlobSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetBlob(ctx, testOwnerID, "blob-1").Return(models.EncryptedBlob{}, store.ErrBlobNotFound)
	files.EXPECT().ReadBlob(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.GetBlob(ctx, testOwnerID, "blob-1")

	assert.ErrorIs(t, err, store.ErrBlobNotFound)
}

func TestBlobService_DeleteBlob_FileFailureIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBlobSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().DeleteBlob(ctx, testOwnerID, "blob-1").Return(nil)
	files.EXPECT().RemoveBlob(ctx, "blob-1").Return(errors.New("permission denied"))

	require.NoError(t, svc.DeleteBlob(ctx, testOwnerID, "blob-1"))
}

func TestBlobService_DeleteBlob_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, files := newTestBlobSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().DeleteBlob(ctx, testOwnerID, "blob-1").Return(store.ErrBlobNotFound)
	files.EXPECT().RemoveBlob(gomock.Any(), gomock.Any()).Times(0)

	assert.ErrorIs(t, svc.DeleteBlob(ctx, testOwnerID, "blob-1"), store.ErrBlobNotFound)
}
