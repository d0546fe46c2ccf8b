// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PersonField names one attribute of a [Person].
type PersonField string

const (
	FieldDNI            PersonField = "dni"
	FieldApPat          PersonField = "ap_pat"
	FieldApMat          PersonField = "ap_mat"
	FieldNombres        PersonField = "nombres"
	FieldFechaNac       PersonField = "fecha_nac"
	FieldFchInscripcion PersonField = "fch_inscripcion"
	FieldFchEmision     PersonField = "fch_emision"
	FieldFchCaducidad   PersonField = "fch_caducidad"
	FieldUbigeoNac      PersonField = "ubigeo_nac"
	FieldUbigeoDir      PersonField = "ubigeo_dir"
	FieldDireccion      PersonField = "direccion"
	FieldSexo           PersonField = "sexo"
	FieldEstCivil       PersonField = "est_civil"
	FieldDigRuc         PersonField = "dig_ruc"
	FieldMadre          PersonField = "madre"
	FieldPadre          PersonField = "padre"
)

// AllPersonFields lists every attribute of a person record in wire order.
var AllPersonFields = []PersonField{
	FieldDNI, FieldApPat, FieldApMat, FieldNombres, FieldFechaNac,
	FieldFchInscripcion, FieldFchEmision, FieldFchCaducidad,
	FieldUbigeoNac, FieldUbigeoDir, FieldDireccion,
	FieldSexo, FieldEstCivil, FieldDigRuc, FieldMadre, FieldPadre,
}

// DefaultAllowedFields is used whenever a user has no usable allow-list.
var DefaultAllowedFields = []PersonField{
	FieldDNI, FieldNombres, FieldApPat, FieldApMat,
}

// Valid reports whether f is a known person attribute.
func (f PersonField) Valid() bool {
	_, ok := personFieldAccessors[f]
	return ok
}

// Person is the fixed-shape identity record returned by the lookup provider.
type Person struct {
	DNI            string `json:"dni"`
	ApPat          string `json:"ap_pat"`
	ApMat          string `json:"ap_mat"`
	Nombres        string `json:"nombres"`
	FechaNac       string `json:"fecha_nac"`
	FchInscripcion string `json:"fch_inscripcion"`
	FchEmision     string `json:"fch_emision"`
	FchCaducidad   string `json:"fch_caducidad"`
	UbigeoNac      string `json:"ubigeo_nac"`
	UbigeoDir      string `json:"ubigeo_dir"`
	Direccion      string `json:"direccion"`
	Sexo           string `json:"sexo"`
	EstCivil       string `json:"est_civil"`
	DigRuc         string `json:"dig_ruc"`
	Madre          string `json:"madre"`
	Padre          string `json:"padre"`
}

var personFieldAccessors = map[PersonField]func(p *Person) *string{
	FieldDNI:            func(p *Person) *string { return &p.DNI },
	FieldApPat:          func(p *Person) *string { return &p.ApPat },
	FieldApMat:          func(p *Person) *string { return &p.ApMat },
	FieldNombres:        func(p *Person) *string { return &p.Nombres },
	FieldFechaNac:       func(p *Person) *string { return &p.FechaNac },
	FieldFchInscripcion: func(p *Person) *string { return &p.FchInscripcion },
	FieldFchEmision:     func(p *Person) *string { return &p.FchEmision },
	FieldFchCaducidad:   func(p *Person) *string { return &p.FchCaducidad },
	FieldUbigeoNac:      func(p *Person) *string { return &p.UbigeoNac },
	FieldUbigeoDir:      func(p *Person) *string { return &p.UbigeoDir },
	FieldDireccion:      func(p *Person) *string { return &p.Direccion },
	FieldSexo:           func(p *Person) *string { return &p.Sexo },
	FieldEstCivil:       func(p *Person) *string { return &p.EstCivil },
	FieldDigRuc:         func(p *Person) *string { return &p.DigRuc },
	FieldMadre:          func(p *Person) *string { return &p.Madre },
	FieldPadre:          func(p *Person) *string { return &p.Padre },
}

// Get returns the value of field f and whether f is a known attribute.
func (p Person) Get(f PersonField) (string, bool) {
	accessor, ok := personFieldAccessors[f]
	if !ok {
		return "", false
	}
	return *accessor(&p), true
}

// Set assigns value to field f. Unknown fields are ignored and reported
// with false.
func (p *Person) Set(f PersonField, value string) bool {
	accessor, ok := personFieldAccessors[f]
	if !ok {
		return false
	}
	*accessor(p) = value
	return true
}

// UnmarshalJSON implements [json.Unmarshaler]. The provider is not strict
// about types, so numbers and booleans are kept as their literal text and
// null becomes the empty string. Unknown members are ignored.
func (p *Person) UnmarshalJSON(b []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return err
	}

	var decoded Person
	for name, raw := range members {
		accessor, ok := personFieldAccessors[PersonField(name)]
		if !ok {
			continue
		}
		value, err := scalarString(raw)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		*accessor(&decoded) = value
	}

	*p = decoded
	return nil
}

func scalarString(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("unexpected %s value", kindOf(trimmed[0]))
	default:
		return string(trimmed), nil
	}
}

func kindOf(c byte) string {
	if c == '{' {
		return "object"
	}
	return "array"
}

// PersonPayload is what the lookup provider returns in its "data" member:
// null, a single record, or an ordered list of records. The JSON shape
// survives a decode/encode round trip.
type PersonPayload struct {
	// Records holds the decoded records. A single-object payload has
	// exactly one element here.
	Records []Person

	// Multiple is true when the payload was (or must be encoded as) an array.
	Multiple bool
}

// SinglePerson builds a payload holding one record encoded as an object.
func SinglePerson(p Person) PersonPayload {
	return PersonPayload{Records: []Person{p}}
}

// PersonList builds a payload encoded as an array.
func PersonList(people ...Person) PersonPayload {
	if people == nil {
		people = []Person{}
	}
	return PersonPayload{Records: people, Multiple: true}
}

// IsNull reports whether the payload encodes as JSON null.
func (p PersonPayload) IsNull() bool {
	return !p.Multiple && len(p.Records) == 0
}

// IsEmpty reports whether the payload carries no records at all.
func (p PersonPayload) IsEmpty() bool {
	return len(p.Records) == 0
}

// MarshalJSON implements [json.Marshaler].
func (p PersonPayload) MarshalJSON() ([]byte, error) {
	switch {
	case p.Multiple:
		if p.Records == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(p.Records)
	case len(p.Records) == 0:
		return []byte("null"), nil
	default:
		return json.Marshal(p.Records[0])
	}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (p *PersonPayload) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = PersonPayload{}
		return nil
	}

	switch trimmed[0] {
	case '[':
		var records []Person
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return fmt.Errorf("decode person list: %w", err)
		}
		*p = PersonList(records...)
	case '{':
		var record Person
		if err := json.Unmarshal(trimmed, &record); err != nil {
			return fmt.Errorf("decode person: %w", err)
		}
		*p = SinglePerson(record)
	default:
		return fmt.Errorf("unexpected person payload starting with %q", trimmed[0])
	}

	return nil
}

// ProjectedPerson is a person record reduced to an allow-list of fields.
type ProjectedPerson map[PersonField]string

// ProjectedPayload mirrors [PersonPayload] after field projection.
type ProjectedPayload struct {
	Records  []ProjectedPerson
	Multiple bool
}

// IsNull reports whether the payload encodes as JSON null.
func (p ProjectedPayload) IsNull() bool {
	return !p.Multiple && len(p.Records) == 0
}

// MarshalJSON implements [json.Marshaler].
func (p ProjectedPayload) MarshalJSON() ([]byte, error) {
	switch {
	case p.Multiple:
		if p.Records == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(p.Records)
	case len(p.Records) == 0:
		return []byte("null"), nil
	default:
		return json.Marshal(p.Records[0])
	}
}

// RestrictionSet is the set of DNIs whose sensitive attributes must be
// redacted for every caller.
type RestrictionSet map[string]struct{}

// NewRestrictionSet builds a set from the given DNIs.
func NewRestrictionSet(dnis ...string) RestrictionSet {
	set := make(RestrictionSet, len(dnis))
	for _, dni := range dnis {
		set[dni] = struct{}{}
	}
	return set
}

// Contains reports whether dni is restricted. A nil set contains nothing.
func (s RestrictionSet) Contains(dni string) bool {
	_, ok := s[dni]
	return ok
}

// ParseAllowedFields trims raw, drops unknown and duplicate names and keeps
// the first-seen order. It returns nil when nothing usable is left so callers
// can tell "no usable input" apart from an explicit list.
func ParseAllowedFields(raw []string) []PersonField {
	seen := make(map[PersonField]struct{}, len(raw))
	var out []PersonField

	for _, name := range raw {
		field := PersonField(strings.TrimSpace(name))
		if !field.Valid() {
			continue
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, field)
	}

	return out
}
