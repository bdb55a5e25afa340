// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clinic-vault/internal/app"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/service"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/internal/utils"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is consulted in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrValidationNoOwnerID, errorResponse{http.StatusBadRequest, app.MsgNoOwnerIDProvided}},
	{service.ErrValidationPurpose, errorResponse{http.StatusBadRequest, app.MsgInvalidPurpose}},
	{service.ErrValidationEmptyEnvelope, errorResponse{http.StatusBadRequest, app.MsgEmptyEnvelope}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrRecordNotFound, errorResponse{http.StatusNotFound, app.MsgRecordNotFound}},
	{store.ErrBlobNotFound, errorResponse{http.StatusNotFound, app.MsgBlobNotFound}},
	{store.ErrInvalidBlobID, errorResponse{http.StatusNotFound, app.MsgBlobNotFound}},
	{store.ErrRecordAlreadyExists, errorResponse{http.StatusConflict, app.MsgRecordAlreadyExists}},
}

func responseFromError(err error) errorResponse {
	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and answers with the status and message it maps
// to. Internal details never reach the response body.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", resp.status).Msg("request failed")

	utils.WriteError(w, resp.message, resp.status)
}
