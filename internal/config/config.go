// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Vital type matcher names accepted by Storage.DB.VitalTypeMatch.
const (
	VitalTypeMatchPayload  = "payload"
	VitalTypeMatchMirrored = "mirrored"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultTokenIssuer     = "health-wallet"
	DefaultTokenDuration   = 7 * 24 * time.Hour
	DefaultBcryptCost      = 10
	DefaultMaxUploadSize   = 10 << 20
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// health wallet server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// password hashing cost and the upload size limit.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// blob store holding uploaded report files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App contains application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWTs.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the value placed in the "iss" claim of issued JWTs.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued JWTs.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for stored password hashes.
	BcryptCost int `env:"BCRYPT_COST"`

	// MaxUploadSize caps the size in bytes of an uploaded report file.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the application version string reported by /api/version.
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	S3    S3    `envPrefix:"S3_"`
}

// DB holds relational database settings.
type DB struct {
	// DSN is a postgres:// URL or a sqlite:// / file: path.
	DSN string `env:"DATABASE_URI"`

	// VitalTypeMatch selects how the report listing matches the vitalType
	// filter: "payload" (containment in the stored payload) or "mirrored"
	// (existence of a mirrored vitals row).
	VitalTypeMatch string `env:"VITAL_TYPE_MATCH"`
}

// Files configures the local directory blob store.
type Files struct {
	BlobDir string `env:"BLOB_DIR"`
}

// S3 configures the object storage blob store. Endpoint is optional and
// is used to target S3-compatible services such as MinIO.
type S3 struct {
	Bucket       string `env:"BUCKET"`
	Region       string `env:"REGION"`
	Endpoint     string `env:"ENDPOINT"`
	AccessKey    string `env:"ACCESS_KEY"`
	SecretKey    string `env:"SECRET_KEY"`
	UsePathStyle bool   `env:"USE_PATH_STYLE"`
}

// Server holds HTTP server settings.
type Server struct {
	HTTPAddress     string        `env:"ADDRESS"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// GetStructuredConfig builds the server configuration from env, flags and
// the optional JSON file, applies defaults and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.MaxUploadSize == 0 {
		cfg.App.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.Storage.DB.VitalTypeMatch == "" {
		cfg.Storage.DB.VitalTypeMatch = VitalTypeMatchPayload
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}
