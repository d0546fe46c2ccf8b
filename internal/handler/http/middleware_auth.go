// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/service"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
)

// auth is an HTTP middleware that enforces the single-session token gate.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// via [service.AuthService.Authenticate] and stores the resulting user in
// the request context under [utils.UserCtxKey].
//
// Requests are rejected with 401 when the header is absent or malformed, or
// when the token is not the user's current session.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log.Debug().Str("username", user.Username).Msg("session accepted")

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), user)))
	})
}

// requireAdmin rejects callers whose role is not admin with 403. It must run
// after [Handler.auth].
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoUserInContext)
			return
		}

		if !user.IsAdmin() {
			logger.FromRequest(r).Warn().Str("username", user.Username).Msg("admin route denied")
			writeError(w, r, service.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
