// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged [StructuredConfig] is usable before the
// application starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if err := validateLookupURL(cfg.Adapter.LookupURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.CacheTTL < 0 || cfg.Adapter.CacheSize < 0 {
		return fmt.Errorf("%w: cache settings must not be negative", ErrInvalidAdapterConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown database driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" && cfg.Storage.UsersFile == "" {
		return fmt.Errorf("%w: either a users file or a database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.RestrictionsFile == "" {
		return fmt.Errorf("%w: restrictions file is required", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.RestrictionsReloadInterval < 0 {
		return fmt.Errorf("%w: reload interval must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}

func validateLookupURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("lookup url is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("lookup url must be an absolute http(s) URL")
	}

	return nil
}
