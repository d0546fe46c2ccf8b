// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress      = "0.0.0.0:8421"
	DefaultTokenIssuer      = "dni-gateway"
	DefaultTokenDuration    = 12 * time.Hour
	DefaultUsersFile        = "data/users.json"
	DefaultRestrictionsFile = "data/r.json"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      "debug",
		},
		Storage: Storage{
			UsersFile:        DefaultUsersFile,
			RestrictionsFile: DefaultRestrictionsFile,
			DB:               DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
			CacheSize:      1024,
		},
	}
}
