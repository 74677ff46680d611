// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-health-wallet/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccessService decides what a user may do with a report. An absent report
// resolves to [models.AccessDenied], the same as a report the user cannot see.
type AccessService interface {
	Resolve(ctx context.Context, userID, reportID int64) (models.Access, error)
	CanView(ctx context.Context, userID, reportID int64) (bool, error)
	IsOwner(ctx context.Context, userID, reportID int64) (bool, error)
}

// ReportService manages the lifecycle of report uploads and their mirrored
// vitals.
type ReportService interface {
	// CreateReport stores the file, inserts the report row and mirrors the
	// vitals payload. A mirroring failure is recorded in the result and
	// never fails the call.
	CreateReport(ctx context.Context, upload models.ReportUpload) (models.ReportCreated, error)

	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	GetReport(ctx context.Context, userID, reportID int64) (models.Report, error)

	// DownloadReport returns the report with an open reader over its file.
	// The caller closes the reader.
	DownloadReport(ctx context.Context, userID, reportID int64) (models.ReportDownload, error)

	// DeleteReport removes the mirrored vitals, the report row and then the
	// blob. A blob deletion failure is recorded in the result only.
	DeleteReport(ctx context.Context, userID, reportID int64) (models.ReportDeleted, error)
}

// ShareService manages viewer grants. Every operation requires the caller
// to own the report.
type ShareService interface {
	GrantShare(ctx context.Context, ownerID, reportID int64, email string) ([]models.ShareEntry, error)
	ListShares(ctx context.Context, ownerID, reportID int64) ([]models.ShareEntry, error)
	RevokeShare(ctx context.Context, ownerID, reportID, shareID int64) error
}

type VitalService interface {
	CreateVital(ctx context.Context, userID int64, input models.VitalInput) (models.Vital, error)
	ListVitals(ctx context.Context, filter models.VitalFilter) ([]models.Vital, error)
}

// AppInfoService reports the build the server is running.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// ReportServiceWrapper defines middleware composition for ReportService.
// Implementations wrap an existing ReportService to add behavior such as
// validation.
type ReportServiceWrapper interface {
	Wrap(ReportService) ReportService
}

// VitalServiceWrapper defines middleware composition for VitalService.
type VitalServiceWrapper interface {
	Wrap(VitalService) VitalService
}
