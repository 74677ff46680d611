// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
)

// Storages aggregates every repository and the blob store used by the
// service layer.
type Storages struct {
	UserRepository   UserRepository
	ReportRepository ReportRepository
	VitalRepository  VitalRepository
	ShareRepository  ShareRepository
	BlobStorage      BlobStorage
}

// NewStorages wires the repositories over db and opens the blob backend
// selected by cfg (local directory or S3 bucket).
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	matcher, err := NewVitalTypeMatcher(cfg.DB.VitalTypeMatch)
	if err != nil {
		return nil, err
	}

	blobs, err := newBlobStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		ReportRepository: NewReportRepository(db, matcher, log),
		VitalRepository:  NewVitalRepository(db, log),
		ShareRepository:  NewShareRepository(db, log),
		BlobStorage:      blobs,
	}, nil
}

func newBlobStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (BlobStorage, error) {
	switch {
	case cfg.S3.Bucket != "":
		return NewS3BlobStorage(ctx, cfg.S3, log)
	case cfg.Files.BlobDir != "":
		return NewFileBlobStorage(cfg.Files.BlobDir, log)
	default:
		return nil, fmt.Errorf("no blob storage configured")
	}
}
