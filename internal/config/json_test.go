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

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"bcrypt_cost": 11
		},
		"server": {
			"http_address": "localhost:8421",
			"request_timeout": "30s"
		},
		"storage": {
			"users_file": "u.json",
			"restrictions_file": "r.json",
			"db": { "driver": "sqlite3", "dsn": "file:gw.db" },
			"sessions": { "redis_addr": "localhost:6379", "redis_db": 1 }
		},
		"adapter": {
			"lookup_url": "https://registry.example/api",
			"cache_size": 10,
			"cache_ttl": "1m"
		},
		"workers": { "restrictions_reload_interval": "30s" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "localhost:8421", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "u.json", cfg.Storage.UsersFile)
	assert.Equal(t, "r.json", cfg.Storage.RestrictionsFile)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:gw.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Sessions.RedisAddr)
	assert.Equal(t, 1, cfg.Storage.Sessions.RedisDB)
	assert.Equal(t, "https://registry.example/api", cfg.Adapter.LookupURL)
	assert.Equal(t, 10, cfg.Adapter.CacheSize)
	assert.Equal(t, time.Minute, cfg.Adapter.CacheTTL)
	assert.Equal(t, 30*time.Second, cfg.Workers.RestrictionsReloadInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app":`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))
}
