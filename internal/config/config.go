// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Supported values of Storage.DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// StructuredConfig is the top-level configuration container for the gateway.
// It is populated by merging values from environment variables, command-line
// flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and log level.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the users, sessions and restrictions
	// backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the upstream person registry client and its cache.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey signs and verifies session tokens (HMAC-SHA256).
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token. Default 12h.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the work factor for password hashes. Zero selects
	// bcrypt's default.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel is the minimum zerolog level. Default "debug".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the listen address. Default "0.0.0.0:8421".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// UsersFile is the JSON users document used when no database is set.
	// Env: STORAGE_USERS_FILE
	UsersFile string `env:"USERS_FILE"`

	// RestrictionsFile is the JSON array of restricted DNIs.
	// Env: STORAGE_RESTRICTIONS_FILE
	RestrictionsFile string `env:"RESTRICTIONS_FILE"`

	DB DB `envPrefix:"DB_"`

	Sessions Sessions `envPrefix:"SESSIONS_"`
}

// DB holds connection settings for the optional relational users backend.
type DB struct {
	// Driver is either "pgx" or "sqlite3". Default "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN enables the SQL backend when non-empty.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sessions configures the optional Redis session backend. When RedisAddr is
// empty, the active token is kept on the user record.
type Sessions struct {
	// Env: STORAGE_SESSIONS_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`
	// Env: STORAGE_SESSIONS_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// Env: STORAGE_SESSIONS_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Adapter configures the upstream person registry client.
type Adapter struct {
	// LookupURL is the form endpoint of the upstream registry.
	// Env: ADAPTER_LOOKUP_URL
	LookupURL string `env:"LOOKUP_URL"`

	// RequestTimeout bounds a single upstream call. Default 15s.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CacheSize is the maximum number of cached upstream answers.
	// Env: ADAPTER_CACHE_SIZE
	CacheSize int `env:"CACHE_SIZE"`

	// CacheTTL is how long an upstream answer is reused. Zero disables the
	// cache.
	// Env: ADAPTER_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// RestrictionsReloadInterval enables periodic reloading of the
	// restrictions file into memory. Zero reads the file on every lookup.
	// Env: WORKERS_RESTRICTIONS_RELOAD_INTERVAL
	RestrictionsReloadInterval time.Duration `env:"RESTRICTIONS_RELOAD_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration.
// For each field the first non-zero value wins, in this order:
//  1. Environment variables (a local .env file fills unset ones)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
