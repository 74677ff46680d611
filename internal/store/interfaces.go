// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-health-wallet/models"
	sq "github.com/Masterminds/squirrel"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ReportRepository persists report rows and answers the visibility-aware
// listing query.
type ReportRepository interface {
	CreateReport(ctx context.Context, report models.Report) (models.Report, error)
	FindReportByID(ctx context.Context, reportID int64) (models.Report, error)
	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)
	DeleteReport(ctx context.Context, reportID int64) error
	IsOwner(ctx context.Context, userID, reportID int64) (bool, error)
}

// VitalRepository persists the vitals time series.
type VitalRepository interface {
	CreateVital(ctx context.Context, vital models.Vital) (models.Vital, error)
	ListVitals(ctx context.Context, filter models.VitalFilter) ([]models.Vital, error)

	// DeleteVitalsByReport removes the vitals mirrored from reportID and
	// returns how many rows were deleted. Vitals without a report are
	// never matched.
	DeleteVitalsByReport(ctx context.Context, reportID int64) (int64, error)
}

// ShareRepository persists viewer grants.
type ShareRepository interface {
	// GrantShare inserts a viewer grant. Granting an existing
	// (report, grantee) pair again is a no-op.
	GrantShare(ctx context.Context, reportID, granteeID int64) error
	ListShares(ctx context.Context, reportID int64) ([]models.ShareEntry, error)

	// RevokeShare deletes the share; an unknown shareID is not an error.
	RevokeShare(ctx context.Context, reportID, shareID int64) error
	HasShare(ctx context.Context, reportID, userID int64) (bool, error)
}

// BlobStorage stores uploaded report files under generated names.
type BlobStorage interface {
	// Put writes r under name and returns the number of bytes stored.
	Put(ctx context.Context, name, contentType string, size int64, r io.Reader) (int64, error)

	// Open returns the blob content or [ErrBlobNotFound].
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes the blob. Deleting an absent blob is not an error.
	Delete(ctx context.Context, name string) error
}

// VitalTypeMatcher renders the vitalType predicate of the report listing
// query. The reports table is aliased as "r".
type VitalTypeMatcher interface {
	Match(vitalType string) sq.Sqlizer
}
