// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clinic-vault/internal/app"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/utils"
)

// decodeBody decodes at most limit bytes of JSON into dst. On failure it
// writes 413 for an oversized body or 400 otherwise and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, dst any, funcName string) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(dst)
	if err == nil {
		return true
	}

	log := logger.FromRequest(r)

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Err(err).Str("func", funcName).Int64("limit", tooLarge.Limit).Msg("request body too large")
		utils.WriteError(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
		return false
	}

	log.Err(err).Str("func", funcName).Msg("invalid JSON was passed")
	utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	return false
}
