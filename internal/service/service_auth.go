// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/internal/validators"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// authService is the concrete implementation of AuthService.
// The session store holds at most one token per user; issuing a new token
// replaces it, which invalidates every earlier token of that user.
type authService struct {
	userRepository store.UserRepository
	sessions       store.SessionStore
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	tokenDuration time.Duration
	bcryptCost    int

	// newTokenID yields the "jti" claim. Distinct IDs keep two tokens issued
	// within the same second distinct.
	newTokenID func() string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
func NewAuthService(userRepository store.UserRepository, sessions store.SessionStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessions:       sessions,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		newTokenID:     utils.NewUUIDGenerator().Generate,
		logger:         logger,
	}
}

// Login authenticates username/password and opens a new session.
//
// Returns:
//   - a validation error if username or password is missing;
//   - ErrInvalidCredentials for an unknown user or a wrong password;
//   - ErrTokenCreationFailed or a wrapped storage error otherwise.
//
// A password still stored in plaintext is re-hashed after it matched.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, models.Token{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", models.NormalizeUsername(request.Username)).Msg("login for unknown user")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	legacy, err := utils.CheckPassword(user.PasswordHash, request.Password)
	if err != nil {
		log.Info().Str("username", user.Username).Msg("wrong password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}
	if legacy {
		user = a.upgradePassword(ctx, user, request.Password)
	}

	token, err := a.createToken(user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("error creating token")
		return models.User{}, models.Token{}, err
	}

	if err = a.sessions.Set(ctx, user.Username, token.SignedString, a.tokenDuration); err != nil {
		log.Err(err).Str("username", user.Username).Msg("error storing active session")
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Token{}, ErrConsistency
		}
		return models.User{}, models.Token{}, fmt.Errorf("error storing active session: %w", err)
	}

	signed := token.SignedString
	user.ActiveToken = &signed

	log.Info().Str("username", user.Username).Str("jti", token.Claims.ID).Msg("user logged in")
	return user, token, nil
}

// upgradePassword replaces a plaintext password with its hash. Failures are
// logged and the login proceeds; the next login retries.
func (a *authService) upgradePassword(ctx context.Context, user models.User, password string) models.User {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("error hashing legacy password")
		return user
	}

	user.PasswordHash = hash
	updated, err := a.userRepository.UpdateUser(ctx, user.Username, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("error storing re-hashed password")
		return user
	}

	log.Info().Str("username", user.Username).Msg("legacy password re-hashed")
	return updated
}

func (a *authService) Logout(ctx context.Context, username string) error {
	if err := a.sessions.Clear(ctx, username); err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error closing session")
		return fmt.Errorf("error closing session: %w", err)
	}
	return nil
}

// Authenticate resolves tokenString to its user:
//  1. the claimed subject is read without verification;
//  2. the token must equal the subject's active session token;
//  3. signature, issuer and expiry are verified;
//  4. the user must still exist.
//
// Comparing against the stored token first means a superseded token is
// rejected even while its signature and expiry are still valid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, err := utils.ParseUsernameUnverified(tokenString)
	if err != nil {
		log.Debug().Err(err).Msg("undecodable token")
		return models.User{}, ErrInvalidSession
	}

	active, err := a.sessions.Get(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			log.Err(err).Str("username", username).Msg("error reading active session")
		}
		return models.User{}, ErrInvalidSession
	}

	if subtle.ConstantTimeCompare([]byte(active), []byte(tokenString)) != 1 {
		log.Info().Str("username", username).Msg("superseded token presented")
		return models.User{}, ErrInvalidSession
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Str("username", username).Msg("token verification failed")
		return models.User{}, ErrInvalidSession
	}
	if !strings.EqualFold(token.Username(), username) {
		return models.User{}, ErrInvalidSession
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("username", username).Msg("error loading authenticated user")
		}
		return models.User{}, ErrInvalidSession
	}

	return user, nil
}

// createToken issues a signed JWT for user. The token carries the configured
// issuer and expires after tokenDuration.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey, a.newTokenID())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
