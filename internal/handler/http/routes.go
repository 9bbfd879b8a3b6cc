// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/info", h.getServerInfo)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/me", h.currentUser)

		r.Route("/api/collections/{collection}", func(r chi.Router) {
			r.Get("/", h.changes)
			r.Get("/{id}", h.getDocument)
			r.Patch("/{id}", h.mergeDocument)
			r.Delete("/{id}", h.deleteDocument)
		})

		r.Post("/api/batch", h.batch)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
