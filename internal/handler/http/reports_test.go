// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/go-health-wallet/internal/service"
	"github.com/MKhiriev/go-health-wallet/internal/validators"
	"github.com/MKhiriev/go-health-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerWithReports(reports service.ReportService) *Handler {
	return newTestHandler(&service.Services{ReportService: reports})
}

type uploadPart struct {
	filename    string
	contentType string
	content     string
}

// multipartBody builds an upload request body with the given form fields
// and file parts.
func multipartBody(t *testing.T, fields map[string]string, files ...uploadPart) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+f.filename+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func uploadRequest(t *testing.T, fields map[string]string, files ...uploadPart) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, fields, files...)
	req := httptest.NewRequest(http.MethodPost, "/api/reports", body)
	req.Header.Set("Content-Type", contentType)
	return asUser(req, 1)
}

// ─────────────────────────────────────────────
// createReport
// ─────────────────────────────────────────────

func TestCreateReport_Success(t *testing.T) {
	var got models.ReportUpload
	var gotContent string
	reports := &mockReportService{
		createFn: func(_ context.Context, upload models.ReportUpload) (models.ReportCreated, error) {
			got = upload
			data, err := io.ReadAll(upload.File.Content)
			require.NoError(t, err)
			gotContent = string(data)
			return models.ReportCreated{Report: models.Report{ID: 9, OwnerID: upload.OwnerID, Category: upload.Category}}, nil
		},
	}

	req := uploadRequest(t,
		map[string]string{"category": "Lab", "date": "2024-03-05", "vitals": `{"sugar":"140"}`},
		uploadPart{filename: "blood.pdf", contentType: "application/pdf", content: "%PDF-1.7"},
	)
	rec := httptest.NewRecorder()

	newHandlerWithReports(reports).createReport(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), got.OwnerID)
	assert.Equal(t, "Lab", got.Category)
	assert.Equal(t, "2024-03-05", got.Date)
	assert.Equal(t, `{"sugar":"140"}`, got.Vitals)
	require.NotNil(t, got.File)
	assert.Equal(t, "blood.pdf", got.File.Name)
	assert.Equal(t, "application/pdf", got.File.ContentType)
	assert.Equal(t, int64(8), got.File.Size)
	assert.Equal(t, "%PDF-1.7", gotContent)
	assert.Contains(t, rec.Body.String(), `"id":9`)
}

func TestCreateReport_NoFileReachesServiceAsNil(t *testing.T) {
	reports := &mockReportService{
		createFn: func(_ context.Context, upload models.ReportUpload) (models.ReportCreated, error) {
			assert.Nil(t, upload.File)
			return models.ReportCreated{}, validators.ErrMissingFields
		},
	}

	req := uploadRequest(t, map[string]string{"category": "Lab", "date": "2024-03-05"})
	rec := httptest.NewRecorder()

	newHandlerWithReports(reports).createReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing fields", decodeErrorBody(t, rec))
}

func TestCreateReport_IgnoresQueryStringFields(t *testing.T) {
	var got models.ReportUpload
	reports := &mockReportService{
		createFn: func(_ context.Context, upload models.ReportUpload) (models.ReportCreated, error) {
			got = upload
			return models.ReportCreated{}, validators.ErrMissingFields
		},
	}

	body, contentType := multipartBody(t, map[string]string{"date": "2024-03-05"},
		uploadPart{filename: "a.pdf", contentType: "application/pdf", content: "a"})
	req := httptest.NewRequest(http.MethodPost, "/api/reports?category=Lab&vitals=%7B%7D", body)
	req.Header.Set("Content-Type", contentType)
	req = asUser(req, 1)
	rec := httptest.NewRecorder()

	newHandlerWithReports(reports).createReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, got.Category)
	assert.Empty(t, got.Vitals)
	assert.Equal(t, "2024-03-05", got.Date)
}

func TestCreateReport_MultipleFiles(t *testing.T) {
	req := uploadRequest(t,
		map[string]string{"category": "Lab", "date": "2024-03-05"},
		uploadPart{filename: "a.pdf", contentType: "application/pdf", content: "a"},
		uploadPart{filename: "b.pdf", contentType: "application/pdf", content: "b"},
	)
	rec := httptest.NewRecorder()

	newHandlerWithReports(&mockReportService{}).createReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReport_BodyOverLimit(t *testing.T) {
	req := uploadRequest(t,
		map[string]string{"category": "Lab", "date": "2024-03-05"},
		uploadPart{filename: "big.pdf", contentType: "application/pdf", content: strings.Repeat("x", testMaxUploadSize+multipartOverhead+1)},
	)
	rec := httptest.NewRecorder()

	newHandlerWithReports(&mockReportService{}).createReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File too large", decodeErrorBody(t, rec))
}

func TestCreateReport_NotMultipart(t *testing.T) {
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/reports", strings.NewReader(`{}`)), 1)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHandlerWithReports(&mockReportService{}).createReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReport_StorageFailure(t *testing.T) {
	reports := &mockReportService{
		createFn: func(_ context.Context, _ models.ReportUpload) (models.ReportCreated, error) {
			return models.ReportCreated{}, errors.New("disk full")
		},
	}

	req := uploadRequest(t,
		map[string]string{"category": "Lab", "date": "2024-03-05"},
		uploadPart{filename: "a.png", contentType: "image/png", content: "png"},
	)
	rec := httptest.NewRecorder()

	newHandlerWithReports(reports).createReport(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Upload failed", decodeErrorBody(t, rec))
}

// ─────────────────────────────────────────────
// listReports
// ─────────────────────────────────────────────

func TestListReports_PassesFilter(t *testing.T) {
	var got models.ReportFilter
	reports := &mockReportService{
		listFn: func(_ context.Context, filter models.ReportFilter) ([]models.Report, error) {
			got = filter
			return nil, nil
		},
	}

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/reports?category=Lab&from=01-03-2024&to=2024-03-31&vitalType=hr", nil), 4)
	rec := httptest.NewRecorder()

	newHandlerWithReports(reports).listReports(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Equal(t, models.ReportFilter{UserID: 4, Category: "Lab", DateFrom: "01-03-2024", DateTo: "2024-03-31", VitalType: "hr"}, got)
}

// ─────────────────────────────────────────────
// getReport
// ─────────────────────────────────────────────

func TestGetReport(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "visible", id: "10", wantStatus: http.StatusOK},
		{name: "forbidden", id: "10", err: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "absent", id: "10", err: service.ErrReportNotFound, wantStatus: http.StatusNotFound},
		{name: "non-integer id", id: "ten", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := &mockReportService{
				getFn: func(_ context.Context, userID, reportID int64) (models.Report, error) {
					assert.Equal(t, int64(2), userID)
					assert.Equal(t, int64(10), reportID)
					return models.Report{ID: reportID}, tt.err
				},
			}

			req := withURLParams(asUser(httptest.NewRequest(http.MethodGet, "/api/reports/"+tt.id, nil), 2), map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			newHandlerWithReports(reports).getReport(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// downloadReport
// ─────────────────────────────────────────────

func TestDownloadReport_StreamsFile(t *testing.T) {
	reports := &mockReportService{
		downloadFn: func(_ context.Context, _, _ int64) (models.ReportDownload, error) {
			return models.ReportDownload{
				Report:  models.Report{ID: 10, OriginalName: "blood test.pdf", MimeType: "application/pdf", Size: 4},
				Content: io.NopCloser(strings.NewReader("%PDF")),
			}, nil
		},
	}

	req := withURLParams(asUser(httptest.NewRequest(http.MethodGet, "/api/reports/10/download", nil), 1), map[string]string{"id": "10"})
	rec := httptest.NewRecorder()

	newHandlerWithReports(reports).downloadReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="blood test.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Equal(t, "%PDF", rec.Body.String())
}

func TestDownloadReport_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"row absent", service.ErrReportNotFound, http.StatusNotFound, "Not found"},
		{"blob absent", service.ErrBlobMissing, http.StatusNotFound, "File missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := &mockReportService{
				downloadFn: func(_ context.Context, _, _ int64) (models.ReportDownload, error) {
					return models.ReportDownload{}, tt.err
				},
			}

			req := withURLParams(asUser(httptest.NewRequest(http.MethodGet, "/api/reports/10/download", nil), 1), map[string]string{"id": "10"})
			rec := httptest.NewRecorder()

			newHandlerWithReports(reports).downloadReport(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeErrorBody(t, rec))
		})
	}
}

func TestContentDisposition(t *testing.T) {
	assert.Equal(t, "attachment", contentDisposition(""))
	assert.Equal(t, `attachment; filename=scan.png`, contentDisposition("scan.png"))
	assert.Contains(t, contentDisposition("анализ.pdf"), "filename*=utf-8''")
}

// ─────────────────────────────────────────────
// deleteReport
// ─────────────────────────────────────────────

func TestDeleteReport(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "owner", wantStatus: http.StatusOK, wantBody: `{"ok":true}`},
		{name: "absent", err: service.ErrReportNotFound, wantStatus: http.StatusNotFound, wantBody: `{"error":"Not found"}`},
		{name: "not owner", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantBody: `{"error":"Forbidden"}`},
		{name: "storage failure", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: `{"error":"Delete failed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := &mockReportService{
				deleteFn: func(_ context.Context, _, reportID int64) (models.ReportDeleted, error) {
					return models.ReportDeleted{ReportID: reportID}, tt.err
				},
			}

			req := withURLParams(asUser(httptest.NewRequest(http.MethodDelete, "/api/reports/10", nil), 1), map[string]string{"id": "10"})
			rec := httptest.NewRecorder()

			newHandlerWithReports(reports).deleteReport(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
