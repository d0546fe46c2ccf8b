// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-dni-gateway/internal/app"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/service"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/internal/validators"
	"github.com/MKhiriev/go-dni-gateway/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is matched top to bottom, so specific errors come before
// the generic ones that may wrap them.
var errorStatusMap = []errorStatus{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenRequired},
	{utils.ErrInvalidAuthorization, http.StatusUnauthorized, app.MsgTokenRequired},
	{ErrNoUserInContext, http.StatusUnauthorized, app.MsgTokenRequired},
	{service.ErrInvalidSession, http.StatusUnauthorized, app.MsgInvalidSession},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},

	{service.ErrForbidden, http.StatusForbidden, app.MsgAdminOnly},

	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{validators.ErrEmptyLoginRequest, http.StatusBadRequest, app.MsgLoginFieldsRequired},
	{validators.ErrEmptyUsername, http.StatusBadRequest, app.MsgUserFieldsRequired},
	{validators.ErrEmptyPassword, http.StatusBadRequest, app.MsgUserFieldsRequired},
	{validators.ErrEmptyNombre, http.StatusBadRequest, app.MsgUserFieldsRequired},
	{validators.ErrEmptyApellido, http.StatusBadRequest, app.MsgUserFieldsRequired},
	{validators.ErrInvalidRole, http.StatusBadRequest, app.MsgInvalidRole},
	{models.ErrUnknownRole, http.StatusBadRequest, app.MsgInvalidRole},
	{validators.ErrNoFieldsToUpdate, http.StatusBadRequest, app.MsgNoFieldsToUpdate},
	{validators.ErrInvalidDNI, http.StatusBadRequest, app.MsgInvalidDNI},
	{validators.ErrEmptyNameQuery, http.StatusBadRequest, app.MsgNameQueryRequired},
	{service.ErrSelfDeletion, http.StatusBadRequest, app.MsgSelfDeletion},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{errRouteNotFound, http.StatusNotFound, app.MsgEndpointNotFound},
	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},

	{service.ErrConsistency, http.StatusInternalServerError, app.MsgConsistencyError},
	{service.ErrUpstream, http.StatusInternalServerError, app.MsgInternalServerError},
}

// statusFromError returns the HTTP status and public message for err.
// Unknown errors become 500 with a generic message.
func statusFromError(err error) (int, string) {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status, entry.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the JSON error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Envelope: models.Envelope{Success: false, Error: message}}, status)
}
