// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-clinic-vault/internal/app"
	"github.com/MKhiriev/go-clinic-vault/internal/service"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testRecord() models.EncryptedRecord {
	return models.EncryptedRecord{
		OwnerID: testOwnerID,
		Purpose: models.PurposeSessionNotes,
		Envelope: models.Envelope{
			EncryptedContent: "Y2lwaGVydGV4dA==",
			WrappedKey:       "d3JhcHBlZA==",
		},
	}
}

// ── POST /api/records ────────────────────────────────────────────────────────

func TestSaveRecord_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	record := testRecord()
	stored := record
	stored.ID = "rec-1"

	mocks.records.EXPECT().SaveRecord(gomock.Any(), record).Return(stored, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/records", record)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.EncryptedRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, stored, got)
}

func TestSaveRecord_WireFieldNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	body := `{"owner_id":42,"purpose":"session_notes","encrypted_content":"Y2lwaGVydGV4dA==","client_public_key":"d3JhcHBlZA=="}`

	mocks.records.EXPECT().SaveRecord(gomock.Any(), testRecord()).Return(testRecord(), nil)

	rec := doRequest(t, router, http.MethodPost, "/api/records", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSaveRecord_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)

	rec := doRequest(t, router, http.MethodPost, "/api/records", "{not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, rec.Body.String())
}

func TestSaveRecord_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, _ := newTestRouter(t, ctrl)
	body := `{"owner_id":42,"purpose":"session_notes","encrypted_content":"` + strings.Repeat("A", maxRecordBodySize) + `"}`

	rec := doRequest(t, router, http.MethodPost, "/api/records", body)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, app.MsgPayloadTooLarge, rec.Body.String())
}

func TestSaveRecord_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"no owner", fmt.Errorf("validation: %w", service.ErrValidationNoOwnerID), http.StatusBadRequest, app.MsgNoOwnerIDProvided},
		{"purpose", fmt.Errorf("validation: %w", service.ErrValidationPurpose), http.StatusBadRequest, app.MsgInvalidPurpose},
		{"empty envelope", fmt.Errorf("validation: %w", service.ErrValidationEmptyEnvelope), http.StatusBadRequest, app.MsgEmptyEnvelope},
		{"conflict", store.ErrRecordAlreadyExists, http.StatusConflict, app.MsgRecordAlreadyExists},
		{"database", fmt.Errorf("%w: connection reset", store.ErrExecutingStatement), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, mocks := newTestRouter(t, ctrl)
			mocks.records.EXPECT().SaveRecord(gomock.Any(), gomock.Any()).Return(models.EncryptedRecord{}, tt.err)

			rec := doRequest(t, router, http.MethodPost, "/api/records", testRecord())

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ── GET /api/records ─────────────────────────────────────────────────────────

func TestListRecords_Filter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	want := models.RecordFilter{OwnerID: testOwnerID, Purpose: models.PurposeTestResults, Limit: 5, Offset: 10}

	mocks.records.EXPECT().ListRecords(gomock.Any(), want).Return([]models.EncryptedRecord{testRecord()}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/records?owner_id=42&purpose=test_results&limit=5&offset=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.EncryptedRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 1)
}

func TestListRecords_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	mocks.records.EXPECT().ListRecords(gomock.Any(), models.RecordFilter{OwnerID: testOwnerID}).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/records?owner_id=42", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListRecords_BadQuery(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantBody string
	}{
		{"missing owner", "/api/records", app.MsgNoOwnerIDProvided},
		{"owner not a number", "/api/records?owner_id=abc", app.MsgNoOwnerIDProvided},
		{"owner not positive", "/api/records?owner_id=0", app.MsgNoOwnerIDProvided},
		{"limit not a number", "/api/records?owner_id=42&limit=-1", app.MsgInvalidDataProvided},
		{"offset not a number", "/api/records?owner_id=42&offset=next", app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, _ := newTestRouter(t, ctrl)

			rec := doRequest(t, router, http.MethodGet, tt.target, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ── GET / DELETE /api/records/{id} ───────────────────────────────────────────

func TestGetRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	record := testRecord()
	record.ID = "rec-1"

	mocks.records.EXPECT().GetRecord(gomock.Any(), testOwnerID, "rec-1").Return(record, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/records/rec-1?owner_id=42", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.EncryptedRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, record, got)
}

func TestGetRecord_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	mocks.records.EXPECT().GetRecord(gomock.Any(), testOwnerID, "missing").Return(models.EncryptedRecord{}, store.ErrRecordNotFound)

	rec := doRequest(t, router, http.MethodGet, "/api/records/missing?owner_id=42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRecordNotFound, rec.Body.String())
}

func TestDeleteRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	mocks.records.EXPECT().DeleteRecord(gomock.Any(), testOwnerID, "rec-1").Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/records/rec-1?owner_id=42", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteRecord_UnexpectedError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	mocks.records.EXPECT().DeleteRecord(gomock.Any(), testOwnerID, "rec-1").Return(errors.New("pq: relation does not exist"))

	rec := doRequest(t, router, http.MethodDelete, "/api/records/rec-1?owner_id=42", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

// ── PUT /api/records/{id}/wrapped-key ────────────────────────────────────────

func TestUpdateWrappedKey_IDFromPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	body := models.WrappedKeyUpdate{ID: "ignored", OwnerID: testOwnerID, WrappedKey: "bmV3"}

	mocks.records.EXPECT().UpdateWrappedKey(gomock.Any(), models.WrappedKeyUpdate{
		ID:         "rec-1",
		OwnerID:    testOwnerID,
		WrappedKey: "bmV3",
	}).Return(nil)

	rec := doRequest(t, router, http.MethodPut, "/api/records/rec-1/wrapped-key", body)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUpdateWrappedKey_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router, mocks := newTestRouter(t, ctrl)
	mocks.records.EXPECT().UpdateWrappedKey(gomock.Any(), gomock.Any()).Return(store.ErrRecordNotFound)

	rec := doRequest(t, router, http.MethodPut, "/api/records/rec-1/wrapped-key",
		models.WrappedKeyUpdate{OwnerID: testOwnerID, WrappedKey: "bmV3"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
