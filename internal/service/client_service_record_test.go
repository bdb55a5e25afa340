// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-clinic-vault/internal/adapter"
	"github.com/MKhiriev/go-clinic-vault/internal/app"
	"github.com/MKhiriev/go-clinic-vault/internal/crypto"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/mock"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEnvelopeService() crypto.EnvelopeService {
	generator := crypto.NewKeyMaterialGenerator()
	return crypto.NewEnvelopeService(generator, crypto.NewSymmetricCipher(), crypto.NewKeyWrapper(generator), logger.Nop())
}

func newKeyPair(t *testing.T, purpose models.Purpose) models.KeyPair {
	t.Helper()
	pub, priv, err := crypto.NewKeyWrapper(crypto.NewKeyMaterialGenerator()).GenerateKeyPair()
	require.NoError(t, err)
	return models.KeyPair{OwnerID: testOwnerID, Purpose: purpose, PublicKey: pub, PrivateKey: priv}
}

// newTestRecordSvc wires the service with mocked transport and key store and
// the real envelope implementation.
func newTestRecordSvc(t *testing.T, ctrl *gomock.Controller) (ClientRecordService, *mock.MockRecordServerAdapter, *mock.MockKeyPairStore) {
	t.Helper()
	mockAdapter := mock.NewMockRecordServerAdapter(ctrl)
	mockKeys := mock.NewMockKeyPairStore(ctrl)
	svc := NewClientRecordService(mockAdapter, mockKeys, newEnvelopeService(), 4, logger.Nop())
	return svc, mockAdapter, mockKeys
}

// sealNote encrypts a session note for pair the way Create does.
func sealNote(t *testing.T, id string, pair models.KeyPair, note models.SessionNote) models.EncryptedRecord {
	t.Helper()
	env, err := newEnvelopeService().EncryptForRecipient(note, pair.PublicKey)
	require.NoError(t, err)
	return models.EncryptedRecord{ID: id, OwnerID: testOwnerID, Purpose: pair.Purpose, Envelope: env}
}

// sharedEnvelopeRecords returns n records of pair.Purpose that all carry one
// sealed note, newest first.
func sharedEnvelopeRecords(t *testing.T, n int, pair models.KeyPair) []models.EncryptedRecord {
	t.Helper()
	sealed := sealNote(t, "", pair, models.SessionNote{Title: "shared"})
	records := make([]models.EncryptedRecord, n)
	for i := range records {
		records[i] = sealed
		records[i].ID = fmt.Sprintf("rec-%04d", i)
	}
	return records
}

// servePages answers ListRecords from all the way the server does, honoring
// Limit and Offset, and records every offset asked for.
func servePages(all []models.EncryptedRecord, offsets *[]uint64) func(context.Context, models.RecordFilter) ([]models.EncryptedRecord, error) {
	return func(_ context.Context, filter models.RecordFilter) ([]models.EncryptedRecord, error) {
		*offsets = append(*offsets, filter.Offset)
		start := min(filter.Offset, uint64(len(all)))
		end := min(start+filter.Limit, uint64(len(all)))
		return all[start:end], nil
	}
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientRecordService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)
	note := models.SessionNote{Title: "Seans 1", Content: "first session"}

	mockKeys.EXPECT().InitializeKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair, nil)
	mockAdapter.EXPECT().SaveRecord(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec models.EncryptedRecord) (models.EncryptedRecord, error) {
			assert.Equal(t, testOwnerID, rec.OwnerID)
			assert.Equal(t, models.PurposeSessionNotes, rec.Purpose)
			assert.NotContains(t, rec.EncryptedContent, "first session")

			// the uploaded envelope opens with the owner's private key
			plain, err := newEnvelopeService().DecryptWithPrivateKey(rec.Envelope, pair.PrivateKey)
			require.NoError(t, err)
			var got models.SessionNote
			require.NoError(t, plain.Decode(&got))
			assert.Equal(t, note, got)

			rec.ID = "rec-1"
			return rec, nil
		})

	saved, err := svc.Create(ctx, testOwnerID, models.PurposeSessionNotes, note)

	require.NoError(t, err)
	assert.Equal(t, "rec-1", saved.ID)
}

func TestClientRecordService_Create_NoPublicKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockKeys.EXPECT().InitializeKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).
		Return(models.KeyPair{OwnerID: testOwnerID, Purpose: models.PurposeSessionNotes}, nil)

	_, err := svc.Create(ctx, testOwnerID, models.PurposeSessionNotes, models.SessionNote{})

	assert.ErrorIs(t, err, ErrNoPublicKey)
}

func TestClientRecordService_Create_GeneratorFailureAbortsUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockRecordServerAdapter(ctrl)
	mockKeys := mock.NewMockKeyPairStore(ctrl)
	mockEnvelopes := mock.NewMockEnvelopeService(ctrl)
	svc := NewClientRecordService(mockAdapter, mockKeys, mockEnvelopes, 4, logger.Nop())
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)

	mockKeys.EXPECT().InitializeKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair, nil)
	mockEnvelopes.EXPECT().EncryptForRecipient(gomock.Any(), pair.PublicKey).
		Return(models.Envelope{}, fmt.Errorf("%w: entropy exhausted", crypto.ErrGeneratorFailure))
	mockAdapter.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Create(ctx, testOwnerID, models.PurposeSessionNotes, models.SessionNote{Title: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrGeneratorFailure)
}

func TestClientRecordService_Create_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockKeys.EXPECT().InitializeKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(newKeyPair(t, models.PurposeSessionNotes), nil)
	mockAdapter.EXPECT().SaveRecord(ctx, gomock.Any()).
		Return(models.EncryptedRecord{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgInvalidPurpose))

	_, err := svc.Create(ctx, testOwnerID, models.PurposeSessionNotes, models.SessionNote{})

	assert.ErrorIs(t, err, ErrValidationPurpose)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientRecordService_List_PreservesOrderAndIsolatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)
	stranger := newKeyPair(t, models.PurposeSessionNotes)

	records := make([]models.EncryptedRecord, 0, 20)
	for i := range 20 {
		owner := pair
		if i%5 == 3 {
			// encrypted for someone else: cannot be opened here
			owner = stranger
		}
		records = append(records, sealNote(t, fmt.Sprintf("rec-%02d", i), owner, models.SessionNote{Title: fmt.Sprintf("note %d", i)}))
	}

	mockAdapter.EXPECT().ListRecords(ctx, models.RecordFilter{OwnerID: testOwnerID, Purpose: models.PurposeSessionNotes, Limit: listPageSize}).Return(records, nil)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair).Times(1)

	got, err := svc.List(ctx, testOwnerID, models.PurposeSessionNotes)

	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i, plain := range got {
		assert.Equal(t, records[i].ID, plain.ID)
		if i%5 == 3 {
			assert.True(t, plain.Undecryptable, "record %d", i)
			assert.ErrorIs(t, plain.Cause, crypto.ErrAuthenticationFailure)
			continue
		}
		var note models.SessionNote
		require.NoError(t, plain.Decode(&note))
		assert.Equal(t, fmt.Sprintf("note %d", i), note.Title)
	}
}

func TestClientRecordService_List_UsesKeyOfEachPurpose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	notesPair := newKeyPair(t, models.PurposeSessionNotes)
	testsPair := newKeyPair(t, models.PurposeTestResults)

	records := []models.EncryptedRecord{
		sealNote(t, "a", notesPair, models.SessionNote{Title: "notes"}),
		sealNote(t, "b", testsPair, models.SessionNote{Title: "tests"}),
	}

	mockAdapter.EXPECT().ListRecords(ctx, models.RecordFilter{OwnerID: testOwnerID, Limit: listPageSize}).Return(records, nil)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(notesPair)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeTestResults).Return(testsPair)

	got, err := svc.List(ctx, testOwnerID, "")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[0].Undecryptable)
	assert.False(t, got[1].Undecryptable)
}

// Seans 1: a note saved while the private key was present becomes
// undecryptable once the key is purged, and the listing still succeeds.
func TestClientRecordService_List_PurgedPrivateKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)
	record := sealNote(t, "seans-1", pair, models.SessionNote{Title: "Seans 1", Content: "..."})

	mockAdapter.EXPECT().ListRecords(ctx, gomock.Any()).Return([]models.EncryptedRecord{record}, nil)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair.PublicOnly())

	got, err := svc.List(ctx, testOwnerID, models.PurposeSessionNotes)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Undecryptable)
	assert.ErrorIs(t, got[0].Cause, crypto.ErrKeyUnavailable)
	assert.ErrorIs(t, got[0].Decode(&models.SessionNote{}), models.ErrRecordUndecryptable)
}

func TestClientRecordService_List_GeneratorFailureFailsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockRecordServerAdapter(ctrl)
	mockKeys := mock.NewMockKeyPairStore(ctrl)
	mockEnvelopes := mock.NewMockEnvelopeService(ctrl)
	svc := NewClientRecordService(mockAdapter, mockKeys, mockEnvelopes, 1, logger.Nop())
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)

	mockAdapter.EXPECT().ListRecords(ctx, gomock.Any()).Return([]models.EncryptedRecord{{ID: "a", Purpose: models.PurposeSessionNotes}}, nil)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair)
	mockEnvelopes.EXPECT().DecryptWithPrivateKey(gomock.Any(), pair.PrivateKey).
		Return(models.PlaintextRecord{}, crypto.ErrGeneratorFailure)

	_, err := svc.List(ctx, testOwnerID, models.PurposeSessionNotes)

	assert.ErrorIs(t, err, crypto.ErrGeneratorFailure)
}

func TestClientRecordService_List_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListRecords(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := svc.List(ctx, testOwnerID, models.PurposeSessionNotes)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "download records")
}

func TestClientRecordService_List_PagesPastServerCap(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		wantOffsets []uint64
	}{
		{name: "single short page", total: 3, wantOffsets: []uint64{0}},
		{name: "exactly one full page", total: listPageSize, wantOffsets: []uint64{0, listPageSize}},
		{name: "more than the cap", total: 1500, wantOffsets: []uint64{0, listPageSize}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
			ctx := context.Background()
			pair := newKeyPair(t, models.PurposeSessionNotes)
			all := sharedEnvelopeRecords(t, tt.total, pair)

			var offsets []uint64
			mockAdapter.EXPECT().ListRecords(ctx, gomock.Any()).DoAndReturn(servePages(all, &offsets)).Times(len(tt.wantOffsets))
			mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair)

			got, err := svc.List(ctx, testOwnerID, models.PurposeSessionNotes)

			require.NoError(t, err)
			assert.Equal(t, tt.wantOffsets, offsets)
			require.Len(t, got, tt.total)
			assert.Equal(t, all[0].ID, got[0].ID)
			assert.Equal(t, all[tt.total-1].ID, got[tt.total-1].ID)
			assert.False(t, got[tt.total-1].Undecryptable)
		})
	}
}

func TestClientRecordService_List_SecondPageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)

	gomock.InOrder(
		mockAdapter.EXPECT().ListRecords(ctx, models.RecordFilter{OwnerID: testOwnerID, Purpose: models.PurposeSessionNotes, Limit: listPageSize}).
			Return(sharedEnvelopeRecords(t, listPageSize, pair), nil),
		mockAdapter.EXPECT().ListRecords(ctx, models.RecordFilter{OwnerID: testOwnerID, Purpose: models.PurposeSessionNotes, Limit: listPageSize, Offset: listPageSize}).
			Return(nil, errors.New("connection reset")),
	)

	got, err := svc.List(ctx, testOwnerID, models.PurposeSessionNotes)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "download records")
	assert.Nil(t, got)
}

// ── Get / Delete ─────────────────────────────────────────────────────────────

func TestClientRecordService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeTestResults)
	record := sealNote(t, "rec-1", pair, models.SessionNote{Title: "answers"})

	mockAdapter.EXPECT().GetRecord(ctx, testOwnerID, "rec-1").Return(record, nil)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeTestResults).Return(pair)

	got, err := svc.Get(ctx, testOwnerID, "rec-1")

	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.ID)
	var note models.SessionNote
	require.NoError(t, got.Decode(&note))
	assert.Equal(t, "answers", note.Title)
}

func TestClientRecordService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetRecord(ctx, testOwnerID, "missing").
		Return(models.EncryptedRecord{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgRecordNotFound))

	_, err := svc.Get(ctx, testOwnerID, "missing")

	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestClientRecordService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteRecord(ctx, testOwnerID, "rec-1").Return(nil)

	require.NoError(t, svc.Delete(ctx, testOwnerID, "rec-1"))
}

// ── Share ────────────────────────────────────────────────────────────────────

func TestClientRecordService_Share(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)
	colleague := newKeyPair(t, models.PurposeSessionNotes)
	record := sealNote(t, "rec-1", pair, models.SessionNote{Title: "referral"})

	mockAdapter.EXPECT().GetRecord(ctx, testOwnerID, "rec-1").Return(record, nil)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair)

	shared, err := svc.Share(ctx, testOwnerID, "rec-1", colleague.PublicKey)

	require.NoError(t, err)
	assert.Equal(t, record.EncryptedContent, shared.EncryptedContent)
	assert.NotEqual(t, record.WrappedKey, shared.WrappedKey)

	plain, err := newEnvelopeService().DecryptWithPrivateKey(shared, colleague.PrivateKey)
	require.NoError(t, err)
	assert.False(t, plain.Undecryptable)
}

func TestClientRecordService_Share_WithoutPrivateKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)
	record := sealNote(t, "rec-1", pair, models.SessionNote{Title: "referral"})

	mockAdapter.EXPECT().GetRecord(ctx, testOwnerID, "rec-1").Return(record, nil)
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair.PublicOnly())

	_, err := svc.Share(ctx, testOwnerID, "rec-1", newKeyPair(t, models.PurposeSessionNotes).PublicKey)

	assert.ErrorIs(t, err, crypto.ErrKeyUnavailable)
}

// ── Rewrap ───────────────────────────────────────────────────────────────────

func TestClientRecordService_Rewrap_SkipsUnreadableRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	oldPair := newKeyPair(t, models.PurposeSessionNotes)
	newPair := newKeyPair(t, models.PurposeSessionNotes)
	stranger := newKeyPair(t, models.PurposeSessionNotes)

	records := []models.EncryptedRecord{
		sealNote(t, "a", oldPair, models.SessionNote{Title: "a"}),
		sealNote(t, "b", stranger, models.SessionNote{Title: "b"}),
		sealNote(t, "c", oldPair, models.SessionNote{Title: "c"}),
	}

	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(oldPair)
	mockAdapter.EXPECT().ListRecords(ctx, models.RecordFilter{OwnerID: testOwnerID, Purpose: models.PurposeSessionNotes, Limit: listPageSize}).Return(records, nil)

	pushed := map[string]string{}
	mockAdapter.EXPECT().UpdateWrappedKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.WrappedKeyUpdate) error {
			pushed[update.ID] = update.WrappedKey
			return nil
		}).Times(2)

	report, err := svc.Rewrap(ctx, testOwnerID, models.PurposeSessionNotes, newPair.PublicKey)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Rewrapped)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, []string{"b"}, report.SkippedIDs)
	require.Contains(t, pushed, "a")
	require.Contains(t, pushed, "c")

	// content ciphertext is untouched, only the wrapped key changes
	env := models.Envelope{EncryptedContent: records[0].EncryptedContent, WrappedKey: pushed["a"]}
	plain, err := newEnvelopeService().DecryptWithPrivateKey(env, newPair.PrivateKey)
	require.NoError(t, err)
	var note models.SessionNote
	require.NoError(t, plain.Decode(&note))
	assert.Equal(t, "a", note.Title)
}

func TestClientRecordService_Rewrap_RequiresPrivateKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)

	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair.PublicOnly())
	mockAdapter.EXPECT().ListRecords(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Rewrap(ctx, testOwnerID, models.PurposeSessionNotes, newKeyPair(t, models.PurposeSessionNotes).PublicKey)

	assert.ErrorIs(t, err, crypto.ErrKeyUnavailable)
}

func TestClientRecordService_Rewrap_RejectsBadRecipientKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestRecordSvc(t, ctrl)

	_, err := svc.Rewrap(context.Background(), testOwnerID, models.PurposeSessionNotes, []byte("short"))

	assert.ErrorIs(t, err, crypto.ErrInvalidKeyMaterial)
}

func TestClientRecordService_Rewrap_PushFailureStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	pair := newKeyPair(t, models.PurposeSessionNotes)
	records := []models.EncryptedRecord{
		sealNote(t, "a", pair, models.SessionNote{Title: "a"}),
		sealNote(t, "b", pair, models.SessionNote{Title: "b"}),
	}

	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(pair)
	mockAdapter.EXPECT().ListRecords(ctx, gomock.Any()).Return(records, nil)
	mockAdapter.EXPECT().UpdateWrappedKey(ctx, gomock.Any()).Return(fmt.Errorf("%w: %s", adapter.ErrInternalServerError, app.MsgInternalServerError))

	report, err := svc.Rewrap(ctx, testOwnerID, models.PurposeSessionNotes, newKeyPair(t, models.PurposeSessionNotes).PublicKey)

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
	assert.Equal(t, 0, report.Rewrapped)
}

func TestClientRecordService_Rewrap_CoversEveryPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockKeys := newTestRecordSvc(t, ctrl)
	ctx := context.Background()
	oldPair := newKeyPair(t, models.PurposeSessionNotes)
	newPair := newKeyPair(t, models.PurposeSessionNotes)
	all := sharedEnvelopeRecords(t, 1500, oldPair)

	var offsets []uint64
	mockKeys.EXPECT().RetrieveKeyPair(ctx, testOwnerID, models.PurposeSessionNotes).Return(oldPair)
	mockAdapter.EXPECT().ListRecords(ctx, gomock.Any()).DoAndReturn(servePages(all, &offsets)).Times(2)

	pushed := make(map[string]bool, len(all))
	mockAdapter.EXPECT().UpdateWrappedKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.WrappedKeyUpdate) error {
			pushed[update.ID] = true
			return nil
		}).Times(len(all))

	report, err := svc.Rewrap(ctx, testOwnerID, models.PurposeSessionNotes, newPair.PublicKey)

	require.NoError(t, err)
	assert.Equal(t, []uint64{0, listPageSize}, offsets)
	assert.Equal(t, len(all), report.Rewrapped)
	assert.Zero(t, report.Skipped)
	assert.True(t, pushed[all[0].ID])
	assert.True(t, pushed[all[len(all)-1].ID])
}
