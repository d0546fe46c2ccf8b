// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidJWTParams        = errors.New("invalid params for generating JWT token")
	ErrEmptyTokenSubject       = errors.New("empty token subject")
	ErrInvalidAuthorization    = errors.New("invalid authorization header")
	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for username.
//
// The token carries:
//   - username and sub: the account the session belongs to
//   - iss: issuer
//   - iat, exp: now and now + tokenDuration
//   - jti: tokenID, so two tokens issued within the same second still differ
//
// Every argument except tokenID is required.
//
//	token, err := utils.GenerateJWTToken("dni-gateway", "ana", 12*time.Hour, "secret", id)
func GenerateJWTToken(issuer, username string, tokenDuration time.Duration, signKey, tokenID string) (models.Token, error) {
	if issuer == "" || username == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := models.TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature, the issuer and the expiry
// of tokenString and returns its claims.
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "dni-gateway")
//	if err != nil {
//	    // invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigningMethod
		}
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	parsed := models.Token{Token: token, Claims: claims, SignedString: tokenString}
	if parsed.Username() == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}

	return parsed, nil
}

// ParseUsernameUnverified decodes the username claim of tokenString without
// checking the signature. Only use the result to look up the session the
// token claims to belong to; the token must still be verified afterwards.
func ParseUsernameUnverified(tokenString string) (string, error) {
	claims := models.TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return "", err
	}

	token := models.Token{Claims: claims}
	if token.Username() == "" {
		return "", ErrEmptyTokenSubject
	}

	return token.Username(), nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorization
	}
	return parts[1], nil
}
