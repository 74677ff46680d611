// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-health-wallet/internal/service"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing fields", fmt.Errorf("report upload validation failed: %w", validators.ErrMissingFields), http.StatusBadRequest, "Missing fields"},
		{"unsupported type", fmt.Errorf("report upload validation failed: %w", validators.ErrUnsupportedFileType), http.StatusBadRequest, "Unsupported file type"},
		{"too large", validators.ErrFileTooLarge, http.StatusBadRequest, "File too large"},
		{"invalid date", validators.ErrInvalidDate, http.StatusBadRequest, "Invalid date"},
		{"email required", service.ErrEmailRequired, http.StatusBadRequest, "Email required"},
		{"share with self", service.ErrCannotShareWithSelf, http.StatusBadRequest, "Cannot share with yourself"},
		{"bad id", fmt.Errorf("%w: id=%q", ErrInvalidID, "x"), http.StatusBadRequest, "Invalid id"},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, "Invalid credentials"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"report absent", service.ErrReportNotFound, http.StatusNotFound, "Not found"},
		{"blob missing", service.ErrBlobMissing, http.StatusNotFound, "File missing"},
		{"grantee absent", service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"email taken", fmt.Errorf("creating user: %w", store.ErrEmailAlreadyExists), http.StatusConflict, "Email already registered"},
		{"unclassified", errors.New("disk on fire"), http.StatusInternalServerError, "Fallback"},
		{"store internals stay internal", store.ErrExecutingQuery, http.StatusInternalServerError, "Fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err, "Fallback")

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}
