// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-health-wallet/internal/service"
	"github.com/MKhiriev/go-health-wallet/internal/validators"
	"github.com/MKhiriev/go-health-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithVitals(vitals service.VitalService) *Handler {
	return newTestHandler(&service.Services{VitalService: vitals})
}

func TestCreateVital_Success(t *testing.T) {
	vitals := &mockVitalService{
		createFn: func(_ context.Context, userID int64, input models.VitalInput) (models.Vital, error) {
			require.NotNil(t, input.Value)
			return models.Vital{ID: 1, UserID: userID, Type: input.Type, Value: *input.Value, Unit: input.Unit, Date: input.Date}, nil
		},
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/vitals",
		strings.NewReader(`{"type":"weight","value":72.5,"unit":"kg","date":"2024-03-05"}`)), 6)
	rec := httptest.NewRecorder()

	newHandlerWithVitals(vitals).createVital(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"user_id":6,"type":"weight","value":72.5,"unit":"kg","date":"2024-03-05","report_id":null,"created_at":"0001-01-01T00:00:00Z"}`, rec.Body.String())
}

func TestCreateVital_MissingFields(t *testing.T) {
	vitals := &mockVitalService{
		createFn: func(_ context.Context, _ int64, _ models.VitalInput) (models.Vital, error) {
			return models.Vital{}, fmt.Errorf("vital validation failed: %w", validators.ErrMissingFields)
		},
	}

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/vitals", strings.NewReader(`{"type":"weight"}`)), 6)
	rec := httptest.NewRecorder()

	newHandlerWithVitals(vitals).createVital(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing fields", decodeErrorBody(t, rec))
}

func TestListVitals(t *testing.T) {
	var got models.VitalFilter
	vitals := &mockVitalService{
		listFn: func(_ context.Context, filter models.VitalFilter) ([]models.Vital, error) {
			got = filter
			return []models.Vital{{ID: 1}, {ID: 2}}, nil
		},
	}

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/vitals?type=sugar&from=2024-01-01&to=2024-12-31", nil), 6)
	rec := httptest.NewRecorder()

	newHandlerWithVitals(vitals).listVitals(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.VitalFilter{UserID: 6, Type: "sugar", DateFrom: "2024-01-01", DateTo: "2024-12-31"}, got)
}
