// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// newSQLiteServices wires the real repositories over a migrated SQLite file
// and a local blob directory.
func newSQLiteServices(t *testing.T) *Services {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "health-wallet-test",
			TokenDuration: time.Hour,
			BcryptCost:    bcrypt.MinCost,
			MaxUploadSize: 1 << 20,
		},
		Storage: config.Storage{
			DB:    config.DB{DSN: "sqlite://" + filepath.Join(dir, "wallet.db")},
			Files: config.Files{BlobDir: filepath.Join(dir, "blobs")},
		},
	}

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	storages, err := store.NewStorages(ctx, db, cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(storages, cfg, models.AppBuildInfo{Version: "test"}, logger.Nop())
	require.NoError(t, err)
	return services
}

func registerSQLiteUser(t *testing.T, s *Services, name string) models.User {
	t.Helper()
	email := strings.ToLower(name) + "@example.com"
	user, err := s.AuthService.RegisterUser(context.Background(), models.User{
		Name:     name,
		Email:    email,
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotZero(t, user.UserID)
	user.Email = email
	return user
}

func uploadSQLiteReport(t *testing.T, s *Services, ownerID int64, date, vitals string) models.Report {
	t.Helper()
	created, err := s.ReportService.CreateReport(context.Background(), models.ReportUpload{
		OwnerID:  ownerID,
		Category: "Lab",
		Date:     date,
		Vitals:   vitals,
		File: &models.UploadedFile{
			Name:        "scan.pdf",
			ContentType: "application/pdf",
			Size:        8,
			Content:     strings.NewReader("%PDF-1.4"),
		},
	})
	require.NoError(t, err)
	require.NoError(t, created.MirrorErr)
	return created.Report
}

// ── Round-trip on SQLite ────────────────────────────────────────────────────

func TestSQLite_ReportRoundTrip(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	alice := registerSQLiteUser(t, s, "Alice")

	report := uploadSQLiteReport(t, s, alice.UserID, "2024-03-01", `{"sugar":"99"}`)

	vitals, err := s.VitalService.ListVitals(ctx, models.VitalFilter{UserID: alice.UserID})
	require.NoError(t, err)
	require.Len(t, vitals, 1)
	assert.Equal(t, models.VitalSugar, vitals[0].Type)
	assert.Equal(t, 99.0, vitals[0].Value)
	require.NotNil(t, vitals[0].ReportID)
	assert.Equal(t, report.ID, *vitals[0].ReportID)

	listed, err := s.ReportService.ListReports(ctx, models.ReportFilter{UserID: alice.UserID, VitalType: "sugar"})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, report.ID, listed[0].ID)

	deleted, err := s.ReportService.DeleteReport(ctx, alice.UserID, report.ID)
	require.NoError(t, err)
	assert.NoError(t, deleted.BlobErr)
	assert.Equal(t, int64(1), deleted.RemovedVitals)

	_, err = s.ReportService.GetReport(ctx, alice.UserID, report.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	vitals, err = s.VitalService.ListVitals(ctx, models.VitalFilter{UserID: alice.UserID})
	require.NoError(t, err)
	assert.Empty(t, vitals)
}

func TestSQLite_DeleteKeepsManualVitals(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	alice := registerSQLiteUser(t, s, "Alice")

	report := uploadSQLiteReport(t, s, alice.UserID, "2024-03-01", `{"bp":"120/80"}`)
	value := 70.0
	_, err := s.VitalService.CreateVital(ctx, alice.UserID, models.VitalInput{
		Type: models.VitalHeartRate, Value: &value, Unit: models.UnitHeartRate, Date: "2024-03-02",
	})
	require.NoError(t, err)

	_, err = s.ReportService.DeleteReport(ctx, alice.UserID, report.ID)
	require.NoError(t, err)

	vitals, err := s.VitalService.ListVitals(ctx, models.VitalFilter{UserID: alice.UserID})
	require.NoError(t, err)
	require.Len(t, vitals, 1)
	assert.Equal(t, models.VitalHeartRate, vitals[0].Type)
	assert.Nil(t, vitals[0].ReportID)
}

// ── Sharing on SQLite ───────────────────────────────────────────────────────

func TestSQLite_DuplicateGrantIsIdempotent(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	alice := registerSQLiteUser(t, s, "Alice")
	bob := registerSQLiteUser(t, s, "Bob")
	report := uploadSQLiteReport(t, s, alice.UserID, "2024-03-01", "")

	_, err := s.ShareService.GrantShare(ctx, alice.UserID, report.ID, bob.Email)
	require.NoError(t, err)
	entries, err := s.ShareService.GrantShare(ctx, alice.UserID, report.ID, bob.Email)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, bob.Email, entries[0].Email)
	assert.Equal(t, models.RoleViewer, entries[0].Role)

	got, err := s.ReportService.GetReport(ctx, bob.UserID, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)

	require.NoError(t, s.ShareService.RevokeShare(ctx, alice.UserID, report.ID, entries[0].ID))
	_, err = s.ReportService.GetReport(ctx, bob.UserID, report.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSQLite_ListIsDistinctAndOrdered(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	alice := registerSQLiteUser(t, s, "Alice")
	bob := registerSQLiteUser(t, s, "Bob")

	older := uploadSQLiteReport(t, s, alice.UserID, "2024-01-10", "")
	sameDayFirst := uploadSQLiteReport(t, s, alice.UserID, "2024-02-20", "")
	sameDaySecond := uploadSQLiteReport(t, s, bob.UserID, "2024-02-20", "")

	// Alice sees her own reports plus the one Bob shared, each once.
	_, err := s.ShareService.GrantShare(ctx, bob.UserID, sameDaySecond.ID, alice.Email)
	require.NoError(t, err)
	_, err = s.ShareService.GrantShare(ctx, alice.UserID, older.ID, bob.Email)
	require.NoError(t, err)

	listed, err := s.ReportService.ListReports(ctx, models.ReportFilter{UserID: alice.UserID})
	require.NoError(t, err)

	ids := make([]int64, 0, len(listed))
	for _, r := range listed {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []int64{sameDaySecond.ID, sameDayFirst.ID, older.ID}, ids)

	bobs, err := s.ReportService.ListReports(ctx, models.ReportFilter{UserID: bob.UserID, DateTo: "31/01/2024"})
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, older.ID, bobs[0].ID)
}
