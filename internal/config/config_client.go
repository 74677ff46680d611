// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults for the command-line client.
const (
	DefaultClientServerURL = "http://localhost:8080"
	DefaultClientTimeout   = 30 * time.Second
)

// ClientConfig is the configuration of the health wallet CLI. Values come
// from HEALTH_WALLET_* environment variables; command flags override them.
type ClientConfig struct {
	// ServerURL is the base URL of the server, without the /api prefix.
	ServerURL string `env:"SERVER"`

	// Token is the bearer JWT sent with authenticated requests.
	Token string `env:"TOKEN"`

	RequestTimeout time.Duration `env:"TIMEOUT"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"HEALTH_WALLET_"`
}

// GetClientConfig reads the client configuration from the environment and
// fills in defaults. Call [ClientConfig.Validate] after applying flag
// overrides.
func GetClientConfig() (*ClientConfig, error) {
	var e clientEnv
	if err := parseEnv(&e); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	cfg := e.Client
	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultClientServerURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientTimeout
	}

	return &cfg, nil
}

// Validate reports whether the client configuration is usable.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
