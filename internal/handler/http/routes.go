// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ChatVault Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. Registration, login and salt lookup are
// reachable without a token; the wrapped-key endpoints require a bearer
// token issued by login.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/user/salt", h.salt)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/api/keys/{conversationID}", h.upsertKey)
		r.Get("/api/keys/{conversationID}", h.getKey)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	return router
}
