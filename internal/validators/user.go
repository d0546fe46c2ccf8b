// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-dni-gateway/models"
)

// Field name constants accepted by [UserValidator]. Passing a subset to
// Validate restricts the check to those fields.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldNombre   = "nombre"
	FieldApellido = "apellido"
	FieldRole     = "role"

	// FieldAnyUpdate requires an update request to change something.
	FieldAnyUpdate = "any_update"
)

// UserValidator validates login and user administration requests.
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types (value or pointer):
//   - models.LoginRequest
//   - models.CreateUserRequest
//   - models.UpdateUserRequest
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)
	case models.CreateUserRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateUserRequest:
		return v.validateCreate(*value, fields...)
	case models.UpdateUserRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdate(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateLogin(request models.LoginRequest) error {
	if blank(request.Username) || request.Password == "" {
		return ErrEmptyLoginRequest
	}
	return nil
}

func (v *UserValidator) validateCreate(request models.CreateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldNombre, FieldApellido, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(request.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNombre:
			if blank(request.Nombre) {
				return ErrEmptyNombre
			}
		case FieldApellido:
			if blank(request.Apellido) {
				return ErrEmptyApellido
			}
		case FieldRole:
			// empty means "use the default role"
			if request.Role != "" && !models.Role(request.Role).Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUpdate(request models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldNombre, FieldApellido, FieldRole, FieldAnyUpdate}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username != nil && blank(*request.Username) {
				return ErrEmptyUsername
			}
		case FieldNombre:
			if request.Nombre != nil && blank(*request.Nombre) {
				return ErrEmptyNombre
			}
		case FieldApellido:
			if request.Apellido != nil && blank(*request.Apellido) {
				return ErrEmptyApellido
			}
		case FieldRole:
			if request.Role != nil && !models.Role(*request.Role).Valid() {
				return ErrInvalidRole
			}
		case FieldAnyUpdate:
			if request.Username == nil && request.Password == nil && request.Nombre == nil &&
				request.Apellido == nil && request.AllowedFields == nil && request.Role == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
