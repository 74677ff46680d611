// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

func shortRetryDelays(t *testing.T) {
	t.Helper()
	saved := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = saved })
}

// ── retry ───────────────────────────────────────────────────────────────────

func TestExec_RetriesBusySQLite(t *testing.T) {
	shortRetryDelays(t)
	db, mock := newTestDB(t, migrations.DialectSQLite)

	mock.ExpectExec("DELETE FROM shares").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectExec("DELETE FROM shares").WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := db.exec(context.Background(), sq.Delete("shares").Where(sq.Eq{"id": 1})); err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestExec_GivesUpAfterRetries(t *testing.T) {
	shortRetryDelays(t)
	db, mock := newTestDB(t, migrations.DialectPostgres)

	for range len(retryDelays) + 1 {
		mock.ExpectExec("DELETE FROM shares").WillReturnError(pgError(pgerrcode.SerializationFailure))
	}

	if _, err := db.exec(context.Background(), sq.Delete("shares")); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestExec_DoesNotRetryPermanentErrors(t *testing.T) {
	shortRetryDelays(t)
	db, mock := newTestDB(t, migrations.DialectPostgres)

	mock.ExpectExec("DELETE FROM shares").WillReturnError(pgError(pgerrcode.SyntaxError))

	if _, err := db.exec(context.Background(), sq.Delete("shares")); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRetry_StopsOnCancelledContext(t *testing.T) {
	db, _ := newTestDB(t, migrations.DialectSQLite)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.retry(ctx, func() error {
		calls++
		return sqlite3.Error{Code: sqlite3.ErrLocked}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
}

// ── classifiers ─────────────────────────────────────────────────────────────

func TestClassifyPgErrorCode(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{pgerrcode.ConnectionFailure, Retryable},
		{pgerrcode.DeadlockDetected, Retryable},
		{pgerrcode.CannotConnectNow, Retryable},
		{pgerrcode.UniqueViolation, NonRetryable},
		{pgerrcode.SyntaxError, NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ClassifyPgErrorCode(tt.code); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	if c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}) != Retryable {
		t.Error("expected busy to be retryable")
	}
	if c.Classify(errors.New("boom")) != NonRetryable {
		t.Error("expected plain error to be non-retryable")
	}
	if !c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}) {
		t.Error("expected primary key violation to count as unique")
	}
	if c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}) {
		t.Error("expected foreign key violation not to count as unique")
	}
}

// ── connection helpers ──────────────────────────────────────────────────────

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		raw      string
		wantDSN  string
		wantPath string
	}{
		{
			raw:      "sqlite://data/wallet.db",
			wantDSN:  "file:data/wallet.db?_foreign_keys=on&_busy_timeout=5000",
			wantPath: "data/wallet.db",
		},
		{
			raw:      "file:wallet.db?cache=shared",
			wantDSN:  "file:wallet.db?cache=shared&_foreign_keys=on&_busy_timeout=5000",
			wantPath: "wallet.db",
		},
		{
			raw:      "file::memory:?_foreign_keys=off",
			wantDSN:  "file::memory:?_foreign_keys=off&_busy_timeout=5000",
			wantPath: "",
		},
		{
			raw:      "file:test?mode=memory",
			wantDSN:  "file:test?mode=memory&_foreign_keys=on&_busy_timeout=5000",
			wantPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			dsn, path := sqliteDSN(tt.raw)
			if dsn != tt.wantDSN {
				t.Errorf("expected dsn %q, got %q", tt.wantDSN, dsn)
			}
			if path != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, path)
			}
		})
	}
}

func TestNewConnectDB_UnsupportedDSN(t *testing.T) {
	_, err := NewConnectDB(context.Background(), config.DB{DSN: "mysql://localhost/db"}, logger.Nop())
	if !errors.Is(err, ErrUnsupportedDSN) {
		t.Fatalf("expected ErrUnsupportedDSN, got %v", err)
	}
}

func TestNewConnectDB_SQLiteMemory(t *testing.T) {
	db, err := NewConnectDB(context.Background(), config.DB{DSN: "file::memory:"}, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if db.Dialect() != migrations.DialectSQLite {
		t.Errorf("expected sqlite dialect, got %s", db.Dialect())
	}
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
}
