// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/service"
	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks: each method field can be overridden per test case.
// ─────────────────────────────────────────────

type mockAuthService struct {
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)
	logoutFn       func(ctx context.Context, username string) error
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) Logout(ctx context.Context, username string) error {
	return m.logoutFn(ctx, username)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockUserService struct {
	createUserFn func(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	updateUserFn func(ctx context.Context, username string, patch models.UpdateUserRequest) (models.User, error)
	deleteUserFn func(ctx context.Context, actor, username string) error
}

func (m *mockUserService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	return m.createUserFn(ctx, request)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) UpdateUser(ctx context.Context, username string, patch models.UpdateUserRequest) (models.User, error) {
	return m.updateUserFn(ctx, username, patch)
}

func (m *mockUserService) DeleteUser(ctx context.Context, actor, username string) error {
	return m.deleteUserFn(ctx, actor, username)
}

type mockLookupService struct {
	lookupByDNIFn  func(ctx context.Context, user models.User, dni string) (models.ProjectedPayload, error)
	lookupByNameFn func(ctx context.Context, user models.User, query models.NameQuery) (models.ProjectedPayload, error)
}

func (m *mockLookupService) LookupByDNI(ctx context.Context, user models.User, dni string) (models.ProjectedPayload, error) {
	return m.lookupByDNIFn(ctx, user, dni)
}

func (m *mockLookupService) LookupByName(ctx context.Context, user models.User, query models.NameQuery) (models.ProjectedPayload, error) {
	return m.lookupByNameFn(ctx, user, query)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

var (
	testAdmin = models.User{Username: "admin", Nombre: "Admin", Role: models.RoleAdmin}
	testUser  = models.User{
		Username:      "ana",
		Nombre:        "Ana",
		Role:          models.RoleUsuario,
		AllowedFields: []models.PersonField{models.FieldDNI, models.FieldNombres},
	}
)

// tokenAuth accepts adminToken and userToken and rejects everything else.
func tokenAuth() *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			switch token {
			case adminToken:
				return testAdmin, nil
			case userToken:
				return testUser, nil
			default:
				return models.User{}, service.ErrInvalidSession
			}
		},
	}
}

// newTestServices returns services whose unset members are replaced by
// tokenAuth and a fixed app info mock.
func newTestServices(s service.Services) *service.Services {
	if s.AuthService == nil {
		s.AuthService = tokenAuth()
	}
	if s.AppInfoService == nil {
		s.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	return &s
}

func newTestRouter(t *testing.T, s service.Services) http.Handler {
	t.Helper()
	return NewHandler(newTestServices(s), logger.Nop()).Init()
}

// doRequest sends method/path with an optional JSON body and bearer token.
func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// decodeBody decodes the JSON response body into a generic map.
func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}

// requireErrorEnvelope asserts status and {"success":false,"error":message}.
func requireErrorEnvelope(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rr.Code, "body: %s", rr.Body.String())
	body := decodeBody(t, rr)
	require.Equal(t, false, body["success"])
	require.Equal(t, message, body["error"])
}
