// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/utils"
	"github.com/MKhiriev/go-clinic-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxBlobBodySize bounds a JSON blob body. Ciphertext is base64 inside the
// JSON, so the limit sits above the largest accepted attachment.
const maxBlobBodySize = 64 << 20

func (h *Handler) saveBlob(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var blob models.EncryptedBlob
	if !decodeBody(w, r, maxBlobBodySize, &blob, "*Handler.saveBlob") {
		return
	}

	saved, err := h.services.BlobService.SaveBlob(r.Context(), blob)
	if err != nil {
		writeServiceError(w, r, "*Handler.saveBlob", err)
		return
	}

	log.Info().
		Str("func", "*Handler.saveBlob").
		Int64("owner_id", saved.OwnerID).
		Str("blob_id", saved.ID).
		Int64("size", saved.Size).
		Msg("blob stored")

	if _, err = utils.WriteJSON(w, saved, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.saveBlob").Msg("error writing response")
	}
}

func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	blob, err := h.services.BlobService.GetBlob(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, "*Handler.getBlob", err)
		return
	}

	if _, err = utils.WriteJSON(w, blob, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getBlob").Msg("error writing response")
	}
}

func (h *Handler) deleteBlob(w http.ResponseWriter, r *http.Request) {
	ownerID, _ := utils.GetOwnerIDFromContext(r.Context())

	if err := h.services.BlobService.DeleteBlob(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, "*Handler.deleteBlob", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
