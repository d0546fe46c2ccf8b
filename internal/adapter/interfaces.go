// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the upstream person registry.
//
// The registry is a form endpoint answering {"success": bool, "data": ...}
// where data is one record, a list of records or null. [PersonLookup] hides
// that protocol from the service layer. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-dni-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PersonLookup queries the upstream registry. The returned payload keeps the
// shape the registry answered with.
type PersonLookup interface {
	// LookupByDNI fetches the person holding document number dni.
	LookupByDNI(ctx context.Context, dni string) (models.PersonPayload, error)

	// LookupByName fetches every person matching the full name in query.
	LookupByName(ctx context.Context, query models.NameQuery) (models.PersonPayload, error)
}
