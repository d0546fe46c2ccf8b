// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"github.com/MKhiriev/go-dni-gateway/internal/utils"
	"github.com/MKhiriev/go-dni-gateway/models"
)

type userService struct {
	userRepository store.UserRepository
	sessions       store.SessionStore
	bcryptCost     int

	logger *logger.Logger
}

// NewUserService constructs the account administration service. Requests
// are expected to be validated by the wrapper returned from
// [NewUserValidationService].
func NewUserService(userRepository store.UserRepository, sessions store.SessionStore, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		sessions:       sessions,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// CreateUser stores a new account. A missing role becomes
// [models.DefaultRole] and an allow-list without valid names becomes
// [models.DefaultAllowedFields].
func (s *userService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	role := models.DefaultRole
	if request.Role != "" {
		parsed, err := models.ParseRole(request.Role)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		role = parsed
	}

	hash, err := utils.HashPassword(request.Password, s.bcryptCost)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		Username:      models.NormalizeUsername(request.Username),
		Nombre:        strings.TrimSpace(request.Nombre),
		Apellido:      strings.TrimSpace(request.Apellido),
		PasswordHash:  hash,
		AllowedFields: allowedFieldsOrDefault(request.AllowedFields),
		Role:          role,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// UpdateUser merges patch into the stored account. Omitted fields, a blank
// password and an allow-list without known fields leave the stored values
// unchanged. Renaming the account or
// changing its password closes its session.
func (s *userService) UpdateUser(ctx context.Context, username string, patch models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	username = models.NormalizeUsername(username)

	current, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	updated := current
	closeSession := false

	if patch.Username != nil {
		updated.Username = models.NormalizeUsername(*patch.Username)
		closeSession = updated.Username != current.Username
	}
	if patch.Nombre != nil {
		updated.Nombre = strings.TrimSpace(*patch.Nombre)
	}
	if patch.Apellido != nil {
		updated.Apellido = strings.TrimSpace(*patch.Apellido)
	}
	if patch.Role != nil {
		role, err := models.ParseRole(*patch.Role)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		updated.Role = role
	}
	if fields := models.ParseAllowedFields(patch.AllowedFields); len(fields) > 0 {
		updated.AllowedFields = fields
	}
	if patch.Password != nil && strings.TrimSpace(*patch.Password) != "" {
		hash, err := utils.HashPassword(strings.TrimSpace(*patch.Password), s.bcryptCost)
		if err != nil {
			log.Err(err).Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		updated.PasswordHash = hash
		closeSession = true
	}
	if closeSession {
		updated.ActiveToken = nil
	}

	saved, err := s.userRepository.UpdateUser(ctx, current.Username, updated)
	if err != nil {
		log.Err(err).Str("username", current.Username).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	if closeSession {
		s.clearSessions(ctx, current.Username, saved.Username)
		saved.ActiveToken = nil
	}

	log.Info().Str("username", saved.Username).Msg("user updated")
	return saved, nil
}

// DeleteUser removes username. actor is the authenticated admin.
func (s *userService) DeleteUser(ctx context.Context, actor, username string) error {
	log := logger.FromContext(ctx)
	username = models.NormalizeUsername(username)

	if username == models.NormalizeUsername(actor) {
		log.Warn().Str("username", username).Msg("self deletion rejected")
		return ErrSelfDeletion
	}

	if err := s.userRepository.DeleteUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	s.clearSessions(ctx, username)

	log.Info().Str("username", username).Str("actor", actor).Msg("user deleted")
	return nil
}

// clearSessions closes the sessions of usernames. Failures are logged only:
// the account change has already been stored.
func (s *userService) clearSessions(ctx context.Context, usernames ...string) {
	seen := make(map[string]struct{}, len(usernames))
	for _, username := range usernames {
		if _, dup := seen[username]; dup {
			continue
		}
		seen[username] = struct{}{}

		if err := s.sessions.Clear(ctx, username); err != nil {
			logger.FromContext(ctx).Err(err).Str("username", username).Msg("error closing session")
		}
	}
}

func allowedFieldsOrDefault(raw []string) []models.PersonField {
	fields := models.ParseAllowedFields(raw)
	if len(fields) == 0 {
		return append([]models.PersonField(nil), models.DefaultAllowedFields...)
	}
	return fields
}
