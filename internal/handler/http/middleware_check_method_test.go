// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	ok := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

	router := chi.NewRouter()
	router.Get("/api/vitals", ok)
	router.Post("/api/vitals", ok)
	router.Delete("/api/reports/{id}", ok)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered GET", http.MethodGet, "/api/vitals", http.StatusOK},
		{"registered POST", http.MethodPost, "/api/vitals", http.StatusOK},
		{"registered parameterised", http.MethodDelete, "/api/reports/3", http.StatusOK},
		{"unregistered method on static path", http.MethodPut, "/api/vitals", http.StatusNotFound},
		{"unregistered method on parameterised path", http.MethodGet, "/api/reports/3", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	router := newCheckMethodRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCallWithRegisteredMethodDelegates(t *testing.T) {
	router := newCheckMethodRouter()
	rec := httptest.NewRecorder()

	CheckHTTPMethod(router)(rec, httptest.NewRequest(http.MethodGet, "/api/vitals", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
