// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyNombre       = errors.New("nombre is required")
	ErrEmptyApellido     = errors.New("apellido is required")
	ErrInvalidRole       = errors.New("invalid role")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidDNI        = errors.New("dni must be exactly 8 digits")
	ErrEmptyNameQuery    = errors.New("nombres, ap_pat and ap_mat are required")
	ErrEmptyLoginRequest = errors.New("username and password are required")
)
