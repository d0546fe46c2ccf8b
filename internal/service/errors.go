// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidSession is the single answer of the session gate: missing,
	// superseded, expired or forged tokens are indistinguishable to callers.
	ErrInvalidSession = errors.New("invalid or expired session")

	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the caller's role does not allow the
	// operation.
	ErrForbidden = errors.New("forbidden")

	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSelfDeletion is returned when an admin tries to delete their own
	// account.
	ErrSelfDeletion = errors.New("cannot delete own account")

	// ErrConsistency is returned when storage changes between two steps of
	// one operation.
	ErrConsistency = errors.New("data consistency error")

	// ErrUpstream wraps every failure of the person registry.
	ErrUpstream = errors.New("upstream lookup failed")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
