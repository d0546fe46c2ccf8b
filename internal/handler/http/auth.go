// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-dni-gateway/internal/app"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Envelope: models.Envelope{Success: true},
		Token:    token.SignedString,
		User:     user.Public(),
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	if err := h.services.AuthService.Logout(r.Context(), user.Username); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Envelope: models.Envelope{Success: true},
		Message:  app.MsgLogoutSucceeded,
	}, http.StatusOK)
}

// me returns the account behind the presented token.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Envelope: models.Envelope{Success: true},
		User:     user.Public(),
	}, http.StatusOK)
}
