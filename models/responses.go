// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope fields shared by every JSON response: Success is always present,
// Error only on failures.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is written for every failed request.
type ErrorResponse struct {
	Envelope
}

// MessageResponse answers operations that return no payload.
type MessageResponse struct {
	Envelope
	Message string `json:"message"`
}

// LoginResponse answers POST /auth/login.
type LoginResponse struct {
	Envelope
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// UserResponse carries a single account.
type UserResponse struct {
	Envelope
	User PublicUser `json:"user"`
}

// UsersResponse carries the account list.
type UsersResponse struct {
	Envelope
	Users []PublicUser `json:"users"`
}

// LookupResponse carries filtered lookup results.
type LookupResponse struct {
	Envelope
	Data ProjectedPayload `json:"data"`
}

// HealthResponse answers GET /health.
type HealthResponse struct {
	Envelope
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

// UpstreamResponse is the body returned by the lookup provider.
type UpstreamResponse struct {
	Success bool          `json:"success"`
	Data    PersonPayload `json:"data"`
}
