// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-dni-gateway/models"
)

// userDocument is the on-disk shape of one account in the users document.
// Timestamps are kept as strings so that empty or malformed values written by
// older tools do not make the whole document unreadable.
type userDocument struct {
	Username      string   `json:"username"`
	Nombre        string   `json:"nombre"`
	Apellido      string   `json:"apellido"`
	PasswordHash  string   `json:"passwordHash"`
	AllowedFields []string `json:"allowedFields"`
	Role          string   `json:"role"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
	ActiveToken   *string  `json:"activeToken"`
}

// toUser normalizes a stored account: the username is trimmed and
// lower-cased, unknown roles become [models.DefaultRole], unknown field
// names are dropped, a missing allow-list becomes the default one and
// missing timestamps become now.
func (d userDocument) toUser(now time.Time) models.User {
	role := models.Role(d.Role)
	if !role.Valid() {
		role = models.DefaultRole
	}

	var allowed []models.PersonField
	if d.AllowedFields == nil {
		allowed = append(allowed, models.DefaultAllowedFields...)
	} else {
		allowed = make([]models.PersonField, 0, len(d.AllowedFields))
		for _, name := range d.AllowedFields {
			if f := models.PersonField(name); f.Valid() {
				allowed = append(allowed, f)
			}
		}
	}

	var token *string
	if d.ActiveToken != nil && *d.ActiveToken != "" {
		t := *d.ActiveToken
		token = &t
	}

	return models.User{
		Username:      models.NormalizeUsername(d.Username),
		Nombre:        d.Nombre,
		Apellido:      d.Apellido,
		PasswordHash:  d.PasswordHash,
		AllowedFields: allowed,
		Role:          role,
		ActiveToken:   token,
		CreatedAt:     parseTimestamp(d.CreatedAt, now),
		UpdatedAt:     parseTimestamp(d.UpdatedAt, now),
	}
}

func newUserDocument(u models.User) userDocument {
	fields := make([]string, len(u.AllowedFields))
	for i, f := range u.AllowedFields {
		fields[i] = string(f)
	}

	return userDocument{
		Username:      u.Username,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		PasswordHash:  u.PasswordHash,
		AllowedFields: fields,
		Role:          string(u.Role),
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     u.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ActiveToken:   u.ActiveToken,
	}
}

func parseTimestamp(v string, fallback time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t
	}
	return fallback
}
