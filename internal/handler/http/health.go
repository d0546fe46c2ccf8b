// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-dni-gateway/internal/app"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppBuildInfo(r.Context())

	utils.WriteJSON(w, models.HealthResponse{
		Envelope: models.Envelope{Success: true},
		Status:   "OK",
		Message:  app.MsgHealthOK,
		Version:  buildInfo.Version,
	}, http.StatusOK)
}
