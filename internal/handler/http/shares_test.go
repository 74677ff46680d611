// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-health-wallet/internal/service"
	"github.com/MKhiriev/go-health-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithShares(shares service.ShareService) *Handler {
	return newTestHandler(&service.Services{ShareService: shares})
}

func shareRequest(method, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, "/api/shares/10", strings.NewReader(body))
	return withURLParams(asUser(req, 1), params)
}

func TestGrantShare_Success(t *testing.T) {
	shares := &mockShareService{
		grantFn: func(_ context.Context, ownerID, reportID int64, email string) ([]models.ShareEntry, error) {
			assert.Equal(t, int64(1), ownerID)
			assert.Equal(t, int64(10), reportID)
			assert.Equal(t, "bob@example.com", email)
			return []models.ShareEntry{{ID: 3, Name: "Bob", Email: email, Role: models.RoleViewer}}, nil
		},
	}
	rec := httptest.NewRecorder()

	newHandlerWithShares(shares).grantShare(rec, shareRequest(http.MethodPost, `{"email":"bob@example.com"}`, map[string]string{"reportID": "10"}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"viewer"`)
}

func TestGrantShare_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid JSON", `nope`, nil, http.StatusBadRequest, "Invalid JSON was passed"},
		{"email required", `{}`, service.ErrEmailRequired, http.StatusBadRequest, "Email required"},
		{"not owner", `{"email":"x@y.z"}`, service.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"unknown grantee", `{"email":"x@y.z"}`, service.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"self", `{"email":"me@y.z"}`, service.ErrCannotShareWithSelf, http.StatusBadRequest, "Cannot share with yourself"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := &mockShareService{
				grantFn: func(_ context.Context, _, _ int64, _ string) ([]models.ShareEntry, error) {
					return nil, tt.err
				},
			}
			rec := httptest.NewRecorder()

			newHandlerWithShares(shares).grantShare(rec, shareRequest(http.MethodPost, tt.body, map[string]string{"reportID": "10"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeErrorBody(t, rec))
		})
	}
}

func TestListShares(t *testing.T) {
	shares := &mockShareService{
		listFn: func(_ context.Context, _, _ int64) ([]models.ShareEntry, error) {
			return nil, nil
		},
	}
	rec := httptest.NewRecorder()

	newHandlerWithShares(shares).listShares(rec, shareRequest(http.MethodGet, "", map[string]string{"reportID": "10"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListShares_BadReportID(t *testing.T) {
	rec := httptest.NewRecorder()

	newHandlerWithShares(&mockShareService{}).listShares(rec, shareRequest(http.MethodGet, "", map[string]string{"reportID": "1.5"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRevokeShare(t *testing.T) {
	var gotShareID int64
	shares := &mockShareService{
		revokeFn: func(_ context.Context, _, _, shareID int64) error {
			gotShareID = shareID
			return nil
		},
	}
	rec := httptest.NewRecorder()

	newHandlerWithShares(shares).revokeShare(rec, shareRequest(http.MethodDelete, "", map[string]string{"reportID": "10", "shareID": "99"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, int64(99), gotShareID)
}

func TestRevokeShare_Forbidden(t *testing.T) {
	shares := &mockShareService{
		revokeFn: func(_ context.Context, _, _, _ int64) error { return service.ErrForbidden },
	}
	rec := httptest.NewRecorder()

	newHandlerWithShares(shares).revokeShare(rec, shareRequest(http.MethodDelete, "", map[string]string{"reportID": "10", "shareID": "99"}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
