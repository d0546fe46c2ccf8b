// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filter implements the two stages every lookup result passes
// through before it reaches a caller:
//
//  1. [Redact] blanks disclosure-sensitive attributes of restricted people,
//     regardless of who is asking.
//  2. [Project] reduces each record to the caller's allow-list.
//
// Redact always runs first, so a caller allowed to see "direccion" still
// receives [RedactedValue] for a restricted DNI. Both functions are pure:
// inputs are never mutated and order/cardinality are preserved.
package filter

import (
	"github.com/MKhiriev/go-dni-gateway/models"
)

// RedactedValue replaces every redacted attribute.
const RedactedValue = "no seas sapo"

// RedactedFields are blanked for restricted people. Names, DNI, birth date,
// sex and marital status stay visible.
var RedactedFields = []models.PersonField{
	models.FieldFchInscripcion,
	models.FieldFchEmision,
	models.FieldFchCaducidad,
	models.FieldUbigeoNac,
	models.FieldUbigeoDir,
	models.FieldDireccion,
	models.FieldDigRuc,
	models.FieldMadre,
	models.FieldPadre,
}

// Redact returns a copy of payload in which every record whose DNI belongs to
// restricted has all [RedactedFields] set to [RedactedValue].
func Redact(payload models.PersonPayload, restricted models.RestrictionSet) models.PersonPayload {
	if payload.IsEmpty() || len(restricted) == 0 {
		return payload
	}

	out := models.PersonPayload{
		Records:  make([]models.Person, len(payload.Records)),
		Multiple: payload.Multiple,
	}

	for i, person := range payload.Records {
		out.Records[i] = redactPerson(person, restricted)
	}

	return out
}

func redactPerson(person models.Person, restricted models.RestrictionSet) models.Person {
	if !restricted.Contains(person.DNI) {
		return person
	}

	for _, field := range RedactedFields {
		person.Set(field, RedactedValue)
	}

	return person
}

// Project keeps only the allowed attributes of every record.
//
// An allow-list with no valid field names falls back to
// [models.DefaultAllowedFields]. A null payload stays null and an empty list
// stays an empty list.
func Project(payload models.PersonPayload, allowed []models.PersonField) models.ProjectedPayload {
	out := models.ProjectedPayload{Multiple: payload.Multiple}
	if payload.IsEmpty() {
		if payload.Multiple {
			out.Records = []models.ProjectedPerson{}
		}
		return out
	}

	fields := EffectiveFields(allowed)

	out.Records = make([]models.ProjectedPerson, len(payload.Records))
	for i, person := range payload.Records {
		out.Records[i] = projectPerson(person, fields)
	}

	return out
}

func projectPerson(person models.Person, fields []models.PersonField) models.ProjectedPerson {
	projected := make(models.ProjectedPerson, len(fields))
	for _, field := range fields {
		if value, ok := person.Get(field); ok {
			projected[field] = value
		}
	}
	return projected
}

// EffectiveFields drops unknown and duplicate names from allowed and returns
// [models.DefaultAllowedFields] when nothing usable is left.
func EffectiveFields(allowed []models.PersonField) []models.PersonField {
	seen := make(map[models.PersonField]struct{}, len(allowed))
	fields := make([]models.PersonField, 0, len(allowed))

	for _, field := range allowed {
		if !field.Valid() {
			continue
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		fields = append(fields, field)
	}

	if len(fields) == 0 {
		return models.DefaultAllowedFields
	}

	return fields
}
