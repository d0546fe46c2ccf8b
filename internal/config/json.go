// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations are written as strings ("12h", "30s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		LogLevel      string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		UsersFile        string `json:"users_file"`
		RestrictionsFile string `json:"restrictions_file"`

		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Sessions struct {
			RedisAddr     string `json:"redis_addr"`
			RedisDB       int    `json:"redis_db"`
			RedisPassword string `json:"redis_password"`
		} `json:"sessions,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		LookupURL      string   `json:"lookup_url"`
		RequestTimeout Duration `json:"request_timeout"`
		CacheSize      int      `json:"cache_size"`
		CacheTTL       Duration `json:"cache_ttl"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RestrictionsReloadInterval Duration `json:"restrictions_reload_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:    jsonCfg.App.BcryptCost,
			LogLevel:      jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			UsersFile:        jsonCfg.Storage.UsersFile,
			RestrictionsFile: jsonCfg.Storage.RestrictionsFile,
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Sessions: Sessions{
				RedisAddr:     jsonCfg.Storage.Sessions.RedisAddr,
				RedisDB:       jsonCfg.Storage.Sessions.RedisDB,
				RedisPassword: jsonCfg.Storage.Sessions.RedisPassword,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			LookupURL:      jsonCfg.Adapter.LookupURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			CacheSize:      jsonCfg.Adapter.CacheSize,
			CacheTTL:       time.Duration(jsonCfg.Adapter.CacheTTL),
		},
		Workers: Workers{
			RestrictionsReloadInterval: time.Duration(jsonCfg.Workers.RestrictionsReloadInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
