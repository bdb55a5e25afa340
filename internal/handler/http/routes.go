// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/records", func(r chi.Router) {
		r.Post("/", h.saveRecord)
		r.Put("/{id}/wrapped-key", h.updateWrappedKey)

		// reads and deletes are scoped by the owner_id query parameter
		r.Group(func(r chi.Router) {
			r.Use(withOwnerID)
			r.Get("/", h.listRecords)
			r.Get("/{id}", h.getRecord)
			r.Delete("/{id}", h.deleteRecord)
		})
	})

	router.Route("/api/blobs", func(r chi.Router) {
		r.Post("/", h.saveBlob)

		r.Group(func(r chi.Router) {
			r.Use(withOwnerID)
			r.Get("/{id}", h.getBlob)
			r.Delete("/{id}", h.deleteBlob)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
