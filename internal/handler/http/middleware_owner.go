// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-clinic-vault/internal/app"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/utils"
)

const ownerIDQueryParam = "owner_id"

// withOwnerID reads the owner_id query parameter and stores it in the
// request context. Requests without a valid owner are rejected with 400.
func withOwnerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := parseOwnerID(r.URL.Query().Get(ownerIDQueryParam))
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "withOwnerID").Msg("request rejected")
			utils.WriteError(w, app.MsgNoOwnerIDProvided, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithOwnerID(r.Context(), ownerID)))
	})
}

func parseOwnerID(raw string) (int64, error) {
	if raw == "" {
		return 0, ErrNoOwnerID
	}

	ownerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ownerID <= 0 {
		return 0, ErrInvalidOwnerID
	}

	return ownerID, nil
}
