// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-dni-gateway/models"
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

// LookupValidator validates person lookup queries before they reach the
// upstream registry.
type LookupValidator struct{}

// NewLookupValidator constructs a new LookupValidator.
func NewLookupValidator() Validator {
	return &LookupValidator{}
}

// Validate accepts models.DNIQuery and models.NameQuery (value or pointer).
// Field scoping is not supported; every rule of the query type applies.
func (v *LookupValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.DNIQuery:
		return v.validateDNI(value)
	case *models.DNIQuery:
		return v.validateDNI(*value)
	case models.NameQuery:
		return v.validateName(value)
	case *models.NameQuery:
		return v.validateName(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *LookupValidator) validateDNI(query models.DNIQuery) error {
	if !dniPattern.MatchString(query.DNI) {
		return ErrInvalidDNI
	}
	return nil
}

func (v *LookupValidator) validateName(query models.NameQuery) error {
	if blank(query.Nombres) || blank(query.ApPat) || blank(query.ApMat) {
		return ErrEmptyNameQuery
	}
	return nil
}
