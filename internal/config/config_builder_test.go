// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "key"},
		Adapter: Adapter{LookupURL: "https://registry.example/api"},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MinimalConfigGetsDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultUsersFile, cfg.Storage.UsersFile)
	assert.Equal(t, DefaultRestrictionsFile, cfg.Storage.RestrictionsFile)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := minimalConfig()
	first.Server.HTTPAddress = "127.0.0.1:1"
	second := &StructuredConfig{
		Server: Server{HTTPAddress: "127.0.0.1:2", RequestTimeout: time.Second},
	}
	b.configs = append(b.configs, first, second)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:1", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestWithJSON_UsesPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "from-json", "token_duration": "3h"},
		"adapter": map[string]any{"lookup_url": "https://registry.example/api"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, 3*time.Hour, cfg.App.TokenDuration)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "none.json")})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

func TestWithFlags_InvalidRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	require.Error(t, b.err)
}

func TestWithEnv_ReadsEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "env-key",
		"ADAPTER_LOOKUP_URL": "https://registry.example/api",
	})

	cfg, err := newConfigBuilder().withEnv().withFlags(nil).withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "non-positive duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "empty lookup url", mutate: func(c *StructuredConfig) { c.Adapter.LookupURL = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "relative lookup url", mutate: func(c *StructuredConfig) { c.Adapter.LookupURL = "/api" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative cache ttl", mutate: func(c *StructuredConfig) { c.Adapter.CacheTTL = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no users backend", mutate: func(c *StructuredConfig) { c.Storage.UsersFile = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "users in database", mutate: func(c *StructuredConfig) {
			c.Storage.UsersFile = ""
			c.Storage.DB.DSN = "postgres://localhost/gw"
		}},
		{name: "negative reload interval", mutate: func(c *StructuredConfig) { c.Workers.RestrictionsReloadInterval = -1 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, minimalConfig())
			cfg, err := b.withDefaults().build()
			require.NoError(t, err)

			tt.mutate(cfg)

			err = cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
