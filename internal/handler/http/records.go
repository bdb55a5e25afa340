// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-clinic-vault/internal/app"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/utils"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxRecordBodySize bounds a JSON record body.
const maxRecordBodySize = 8 << 20

func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var record models.EncryptedRecord
	if !decodeBody(w, r, maxRecordBodySize, &record, "*Handler.saveRecord") {
		return
	}

	saved, err := h.services.RecordService.SaveRecord(r.Context(), record)
	if err != nil {
		writeServiceError(w, r, "*Handler.saveRecord", err)
		return
	}

	log.Info().
		Str("func", "*Handler.saveRecord").
		Int64("owner_id", saved.OwnerID).
		Str("record_id", saved.ID).
		Str("purpose", saved.Purpose.String()).
		Msg("record stored")

	if _, err = utils.WriteJSON(w, saved, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.saveRecord").Msg("error writing response")
	}
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())
	query := r.URL.Query()

	filter := models.RecordFilter{
		OwnerID: ownerID,
		Purpose: models.Purpose(query.Get("purpose")),
	}
	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil {
			log.Err(ErrInvalidLimit).Str("func", "*Handler.listRecords").Str("limit", rawLimit).Send()
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}
	if rawOffset := query.Get("offset"); rawOffset != "" {
		offset, err := strconv.ParseUint(rawOffset, 10, 64)
		if err != nil {
			log.Err(ErrInvalidOffset).Str("func", "*Handler.listRecords").Str("offset", rawOffset).Send()
			utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		filter.Offset = offset
	}

	records, err := h.services.RecordService.ListRecords(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, "*Handler.listRecords", err)
		return
	}
	if records == nil {
		records = []models.EncryptedRecord{}
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error writing response")
	}
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	record, err := h.services.RecordService.GetRecord(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getRecord", err)
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getRecord").Msg("error writing response")
	}
}

// updateWrappedKey replaces the wrapped key of one record. The record ID is
// taken from the path; the owner and the new wrapped key from the body.
func (h *Handler) updateWrappedKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var update models.WrappedKeyUpdate
	if !decodeBody(w, r, maxRecordBodySize, &update, "*Handler.updateWrappedKey") {
		return
	}
	update.ID = chi.URLParam(r, "id")

	if err := h.services.RecordService.UpdateWrappedKey(r.Context(), update); err != nil {
		writeServiceError(w, r, "*Handler.updateWrappedKey", err)
		return
	}

	log.Info().
		Str("func", "*Handler.updateWrappedKey").
		Int64("owner_id", update.OwnerID).
		Str("record_id", update.ID).
		Msg("wrapped key replaced")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	if err := h.services.RecordService.DeleteRecord(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteRecord", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
