// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/internal/validators"
	"github.com/MKhiriev/go-health-wallet/models"
)

type Services struct {
	AuthService    AuthService
	AccessService  AccessService
	ReportService  ReportService
	ShareService   ShareService
	VitalService   VitalService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewReportValidator(cfg.App.MaxUploadSize)
	accessService := NewAccessService(storages.ReportRepository, storages.ShareRepository, logger)

	reportService := NewReportValidationService(validator).Wrap(
		NewReportService(storages.ReportRepository, storages.VitalRepository, storages.BlobStorage, accessService, logger),
	)
	vitalService := NewVitalValidationService(validator).Wrap(
		NewVitalService(storages.VitalRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		AccessService:  accessService,
		ReportService:  reportService,
		ShareService:   NewShareService(storages.ShareRepository, storages.UserRepository, accessService, logger),
		VitalService:   vitalService,
		AppInfoService: appInfoService,
	}, nil
}
