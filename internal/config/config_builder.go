// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	return b.buildWith((*StructuredConfig).validate)
}

func (b *configBuilder) buildWith(validate func(*StructuredConfig) error) (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	config.derive()

	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LoginRedirectURL:   "/",
			TokenIssuer:        "gemdjsso",
			TokenDuration:      24 * time.Hour,
			InactiveUserPolicy: InactivePolicyDeactivate,
			DeletePolicy:       DeletePolicyLog,
			LogLevel:           "info",
		},
		Adapter: Adapter{
			APIUsername:    "system",
			RequestTimeout: 10 * time.Second,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Session: Session{
			TTL:        10 * time.Minute,
			CookieName: "gemdjsso_session",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// derive fills values computed from other fields.
func (cfg *StructuredConfig) derive() {
	cfg.Adapter.ForumURL = strings.TrimRight(cfg.Adapter.ForumURL, "/")
	if cfg.App.SSOLoginURL == "" && cfg.Adapter.ForumURL != "" {
		cfg.App.SSOLoginURL = cfg.Adapter.ForumURL + "/session/sso_provider"
	}
}
