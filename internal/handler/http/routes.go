// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/accounts/key-management/rotate-user-account-keys", h.rotateUserKey)
		r.Post("/api/ciphers/import", h.importCiphers)
		r.Post("/api/ciphers/import-organization", h.importOrganizationCiphers)
		r.Put("/api/ciphers/bulk", h.resyncCiphers)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
