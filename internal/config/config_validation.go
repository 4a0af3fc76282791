// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig] before the server starts.
// Missing secrets or forum settings are startup errors.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.validateSync(); err != nil {
		return err
	}

	if cfg.App.SSOSecret == "" || cfg.App.TokenSignKey == "" || cfg.App.HookSecret == "" {
		return fmt.Errorf("%w: sso secret, token sign key and hook secret are required", ErrInvalidAppConfigs)
	}

	if cfg.App.SSOCallbackURL == "" {
		return fmt.Errorf("%w: sso callback url is required", ErrInvalidAppConfigs)
	}

	if _, err := url.ParseRequestURI(cfg.App.SSOLoginURL); err != nil {
		return fmt.Errorf("%w: sso login url: %v", ErrInvalidAppConfigs, err)
	}

	if cfg.Session.TTL <= 0 || cfg.Session.CookieName == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}

// validateSync checks only what the sync engine needs.
func (cfg *StructuredConfig) validateSync() error {
	if cfg.Adapter.ForumURL == "" || cfg.Adapter.APIKey == "" || cfg.Adapter.APIUsername == "" {
		return fmt.Errorf("%w: forum url, api key and api username are required", ErrInvalidAdapterConfigs)
	}

	if _, err := url.ParseRequestURI(cfg.Adapter.ForumURL); err != nil {
		return fmt.Errorf("%w: forum url: %v", ErrInvalidAdapterConfigs, err)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database uri is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	switch cfg.App.InactiveUserPolicy {
	case InactivePolicyDeactivate, InactivePolicySkip:
	default:
		return fmt.Errorf("%w: unknown inactive user policy %q", ErrInvalidAppConfigs, cfg.App.InactiveUserPolicy)
	}

	switch cfg.App.DeletePolicy {
	case DeletePolicyLog, DeletePolicyDelete:
	default:
		return fmt.Errorf("%w: unknown delete policy %q", ErrInvalidAppConfigs, cfg.App.DeletePolicy)
	}

	return nil
}
