// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/models"
)

type accessService struct {
	reportRepository store.ReportRepository
	shareRepository  store.ShareRepository

	logger *logger.Logger
}

func NewAccessService(reportRepository store.ReportRepository, shareRepository store.ShareRepository, logger *logger.Logger) AccessService {
	return &accessService{
		reportRepository: reportRepository,
		shareRepository:  shareRepository,
		logger:           logger,
	}
}

// Resolve checks ownership first and only then looks for a viewer grant.
func (a *accessService) Resolve(ctx context.Context, userID, reportID int64) (models.Access, error) {
	owner, err := a.reportRepository.IsOwner(ctx, userID, reportID)
	if err != nil {
		return models.AccessDenied, fmt.Errorf("ownership check failed: %w", err)
	}
	if owner {
		return models.AccessOwner, nil
	}

	shared, err := a.shareRepository.HasShare(ctx, reportID, userID)
	if err != nil {
		return models.AccessDenied, fmt.Errorf("share check failed: %w", err)
	}
	if shared {
		return models.AccessViewer, nil
	}

	return models.AccessDenied, nil
}

func (a *accessService) CanView(ctx context.Context, userID, reportID int64) (bool, error) {
	access, err := a.Resolve(ctx, userID, reportID)
	if err != nil {
		return false, err
	}

	return access.CanView(), nil
}

func (a *accessService) IsOwner(ctx context.Context, userID, reportID int64) (bool, error) {
	owner, err := a.reportRepository.IsOwner(ctx, userID, reportID)
	if err != nil {
		return false, fmt.Errorf("ownership check failed: %w", err)
	}

	return owner, nil
}
