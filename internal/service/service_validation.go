// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/internal/validators"
	"github.com/MKhiriev/go-health-wallet/models"
)

// ReportValidationService normalizes and validates uploads before passing
// them to the wrapped ReportService. Read and delete calls pass through.
type ReportValidationService struct {
	inner     ReportService
	validator validators.Validator
}

func NewReportValidationService(validator validators.Validator) ReportServiceWrapper {
	return &ReportValidationService{validator: validator}
}

func (v *ReportValidationService) CreateReport(ctx context.Context, upload models.ReportUpload) (models.ReportCreated, error) {
	upload.Category = strings.TrimSpace(upload.Category)
	upload.Date = utils.NormalizeDate(strings.TrimSpace(upload.Date))

	if err := v.validator.Validate(ctx, upload); err != nil {
		return models.ReportCreated{}, fmt.Errorf("report upload validation failed: %w", err)
	}

	return v.inner.CreateReport(ctx, upload)
}

func (v *ReportValidationService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	return v.inner.ListReports(ctx, filter)
}

func (v *ReportValidationService) GetReport(ctx context.Context, userID, reportID int64) (models.Report, error) {
	return v.inner.GetReport(ctx, userID, reportID)
}

func (v *ReportValidationService) DownloadReport(ctx context.Context, userID, reportID int64) (models.ReportDownload, error) {
	return v.inner.DownloadReport(ctx, userID, reportID)
}

func (v *ReportValidationService) DeleteReport(ctx context.Context, userID, reportID int64) (models.ReportDeleted, error) {
	return v.inner.DeleteReport(ctx, userID, reportID)
}

func (v *ReportValidationService) Wrap(wrapped ReportService) ReportService {
	v.inner = wrapped
	return v
}

// VitalValidationService normalizes and validates manually entered vitals.
type VitalValidationService struct {
	inner     VitalService
	validator validators.Validator
}

func NewVitalValidationService(validator validators.Validator) VitalServiceWrapper {
	return &VitalValidationService{validator: validator}
}

func (v *VitalValidationService) CreateVital(ctx context.Context, userID int64, input models.VitalInput) (models.Vital, error) {
	input.Date = utils.NormalizeDate(strings.TrimSpace(input.Date))

	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Vital{}, fmt.Errorf("vital validation failed: %w", err)
	}

	return v.inner.CreateVital(ctx, userID, input)
}

func (v *VitalValidationService) ListVitals(ctx context.Context, filter models.VitalFilter) ([]models.Vital, error) {
	return v.inner.ListVitals(ctx, filter)
}

func (v *VitalValidationService) Wrap(wrapped VitalService) VitalService {
	v.inner = wrapped
	return v
}
