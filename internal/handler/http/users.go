// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-dni-gateway/internal/app"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/go-chi/chi/v5"
)

const usernameURLParam = "username"

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var request models.CreateUserRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Envelope: models.Envelope{Success: true},
		User:     created.Public(),
	}, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	utils.WriteJSON(w, models.UsersResponse{
		Envelope: models.Envelope{Success: true},
		Users:    public,
	}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var patch models.UpdateUserRequest
	if err := utils.DecodeJSON(r, &patch); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), chi.URLParam(r, usernameURLParam), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Envelope: models.Envelope{Success: true},
		User:     updated.Public(),
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), actor.Username, chi.URLParam(r, usernameURLParam)); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Envelope: models.Envelope{Success: true},
		Message:  app.MsgUserDeleted,
	}, http.StatusOK)
}
