// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks gateway requests before they reach storage or
// the lookup provider.
//
// Two validators are provided:
//   - UserValidator: login, user creation and user update payloads.
//   - LookupValidator: DNI and name queries sent to the registry.
//
// Both return sentinel errors from this package, which the HTTP layer maps
// to 400 responses with a matching message.
package validators

import "context"

// Validator checks obj and returns the first rule it breaks. When fields is
// non-empty only the named fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
