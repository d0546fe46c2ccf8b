// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [CheckPassword] when password does not
// match the stored value.
var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword returns the bcrypt hash of password at the given cost.
// A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// IsPasswordHash reports whether stored looks like a bcrypt hash.
func IsPasswordHash(stored string) bool {
	_, err := bcrypt.Cost([]byte(stored))
	return err == nil
}

// CheckPassword compares password with stored.
//
// stored is normally a bcrypt hash. Documents written before hashing was
// introduced hold the plaintext; those are compared in constant time and
// reported with legacy == true so the caller can re-hash them.
func CheckPassword(stored, password string) (legacy bool, err error) {
	if IsPasswordHash(stored) {
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
			return false, ErrPasswordMismatch
		}
		return false, nil
	}

	if stored == "" {
		return false, ErrPasswordMismatch
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return true, ErrPasswordMismatch
	}

	return true, nil
}
