// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the health wallet
// server API.
//
// [ServerAdapter] hides the HTTP details (JSON and multipart encoding, the
// bearer header, error bodies) from the command-line client. Non-2xx
// responses are mapped by mapHTTPError onto the sentinel errors in errors.go
// so callers can branch with [errors.Is], for example [ErrForbidden] for 403
// or [ErrNotFound] for 404.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-health-wallet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the health wallet API as seen from a client.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Health reports whether the server answers GET /api/health.
	Health(ctx context.Context) error

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, user models.User) (models.AuthResponse, error)

	// Login exchanges email and password for a token, storing it via SetToken.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// UploadReport sends upload.File with its category, date and vitals
	// payload as a multipart form. OwnerID is ignored; the server takes it
	// from the token.
	UploadReport(ctx context.Context, upload models.ReportUpload) (models.Report, error)

	// ListReports returns the reports the caller may view, narrowed by
	// filter. filter.UserID is ignored.
	ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error)

	GetReport(ctx context.Context, reportID int64) (models.Report, error)

	// DownloadReport streams the report file into dst and returns the
	// filename the server offered in Content-Disposition.
	DownloadReport(ctx context.Context, reportID int64, dst io.Writer) (string, error)

	DeleteReport(ctx context.Context, reportID int64) error

	// GrantShare gives the user registered under email viewer access.
	GrantShare(ctx context.Context, reportID int64, email string) error

	ListShares(ctx context.Context, reportID int64) ([]models.ShareEntry, error)

	RevokeShare(ctx context.Context, reportID, shareID int64) error

	CreateVital(ctx context.Context, input models.VitalInput) (models.Vital, error)

	// ListVitals returns the caller's vitals narrowed by filter.
	// filter.UserID is ignored.
	ListVitals(ctx context.Context, filter models.VitalFilter) ([]models.Vital, error)
}
