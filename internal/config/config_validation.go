// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.MaxUploadSize < 0 || cfg.App.BcryptCost < 0 {
		return fmt.Errorf("%w: negative limits are not allowed", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.VitalTypeMatch {
	case VitalTypeMatchPayload, VitalTypeMatchMirrored:
	default:
		return fmt.Errorf("%w: unknown vital type matcher %q", ErrInvalidStorageConfigs, cfg.Storage.DB.VitalTypeMatch)
	}

	hasDir := cfg.Storage.Files.BlobDir != ""
	hasS3 := cfg.Storage.S3.Bucket != ""
	if hasDir == hasS3 {
		return fmt.Errorf("%w: exactly one of blob dir or s3 bucket must be set", ErrInvalidStorageConfigs)
	}
	if hasS3 && cfg.Storage.S3.Region == "" {
		return fmt.Errorf("%w: s3 region is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" {
		return ErrInvalidClientConfigs
	}

	u, err := url.Parse(cfg.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad server url %q", ErrInvalidClientConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
