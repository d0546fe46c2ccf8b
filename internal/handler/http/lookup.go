// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/models"
)

func (h *Handler) lookupByDNI(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	data, err := h.services.LookupService.LookupByDNI(r.Context(), user, r.URL.Query().Get("dni"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeLookup(w, data)
}

func (h *Handler) lookupByName(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	q := r.URL.Query()
	query := models.NameQuery{
		Nombres: q.Get("nombres"),
		ApPat:   q.Get("ap_pat"),
		ApMat:   q.Get("ap_mat"),
	}

	data, err := h.services.LookupService.LookupByName(r.Context(), user, query)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeLookup(w, data)
}

func writeLookup(w http.ResponseWriter, data models.ProjectedPayload) {
	utils.WriteJSON(w, models.LookupResponse{
		Envelope: models.Envelope{Success: true},
		Data:     data,
	}, http.StatusOK)
}
