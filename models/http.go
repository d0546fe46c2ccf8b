// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest is the body of POST /usuarios.
//
// AllowedFields is kept as raw strings so that unknown names can be dropped
// during validation instead of failing the decode.
type CreateUserRequest struct {
	Username      string   `json:"username"`
	Password      string   `json:"password"`
	Nombre        string   `json:"nombre"`
	Apellido      string   `json:"apellido"`
	AllowedFields []string `json:"allowedFields,omitempty"`
	Role          string   `json:"role,omitempty"`
}

// UpdateUserRequest is the body of PATCH /usuarios/{username}.
// Only non-nil fields are applied (partial update).
type UpdateUserRequest struct {
	Username      *string  `json:"username,omitempty"`
	Password      *string  `json:"password,omitempty"`
	Nombre        *string  `json:"nombre,omitempty"`
	Apellido      *string  `json:"apellido,omitempty"`
	AllowedFields []string `json:"allowedFields,omitempty"`
	Role          *string  `json:"role,omitempty"`
}

// NameQuery holds the parameters of a lookup by full name.
type NameQuery struct {
	Nombres string `json:"nombres"`
	ApPat   string `json:"ap_pat"`
	ApMat   string `json:"ap_mat"`
}

// DNIQuery holds the parameter of a lookup by document number.
type DNIQuery struct {
	DNI string `json:"dni"`
}
