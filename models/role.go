// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUsuario  Role = "usuario"
	RoleAnalista Role = "analista"
)

// DefaultRole is assigned when a new account is created without a role.
const DefaultRole = RoleUsuario

// ErrUnknownRole is returned by [ParseRole] for any value outside the enum.
var ErrUnknownRole = errors.New("unknown role")

var roles = []Role{RoleAdmin, RoleUsuario, RoleAnalista}

// Roles returns every valid role.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole converts s into a [Role]. An unknown value yields ErrUnknownRole.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}
