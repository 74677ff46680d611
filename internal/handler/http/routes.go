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
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/reports", h.createReport)
		r.Get("/api/reports", h.listReports)
		r.Get("/api/reports/{id}", h.getReport)
		r.Delete("/api/reports/{id}", h.deleteReport)
		r.Get("/api/reports/{id}/download", h.downloadReport)

		r.Post("/api/shares/{reportID}", h.grantShare)
		r.Get("/api/shares/{reportID}", h.listShares)
		r.Delete("/api/shares/{reportID}/{shareID}", h.revokeShare)

		r.Post("/api/vitals", h.createVital)
		r.Get("/api/vitals", h.listVitals)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
