// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("upstream bad request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream not found")
	ErrTooManyRequests     = errors.New("upstream rate limited")
	ErrBadGateway          = errors.New("upstream bad gateway")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrUnavailable         = errors.New("upstream unavailable")

	// ErrMalformedResponse is returned when the body is not the expected
	// JSON envelope.
	ErrMalformedResponse = errors.New("malformed upstream response")

	ErrInvalidLookupURL = errors.New("invalid lookup url")
)
