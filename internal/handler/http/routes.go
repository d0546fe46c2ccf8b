// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withMetrics, withCORS, withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod())

	// withGZip already compresses the response
	router.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{DisableCompression: true}))
	router.Get("/health", h.health)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/logout", h.logout)
		r.Get("/auth/me", h.me)
		r.Get("/me", h.me)
		r.Get("/usuarios/me", h.me)

		r.Get("/consulta", h.lookupByDNI)
		r.Get("/consulta-nombres", h.lookupByName)

		// admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Post("/usuarios", h.createUser)
			r.Get("/usuarios", h.listUsers)
			r.Patch("/usuarios/{username}", h.updateUser)
			r.Delete("/usuarios/{username}", h.deleteUser)
		})
	})

	return router
}
