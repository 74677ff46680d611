// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// cfg.ServerURL is normalised (a missing scheme defaults to http) and any
// cfg.Token is stored as the initial bearer token.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	h.SetToken(cfg.Token)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyServerURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	return h.token
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

// Register implements [ServerAdapter]. The token is read from the response
// body, or from the Authorization header when the body carries none.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", models.User{Email: email, Password: password})
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if auth.Token == "" {
		auth.Token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("%s parse bearer token: %w", path, err)
		}
	}

	h.SetToken(auth.Token)
	return auth, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var me models.MeResponse

	resp, err := h.authedRequest(ctx).SetResult(&me).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return me.User, nil
}

// UploadReport implements [ServerAdapter]. Empty category, date and vitals
// fields are still sent so the server answers with its own validation error.
func (h *httpServerAdapter) UploadReport(ctx context.Context, upload models.ReportUpload) (models.Report, error) {
	if upload.File == nil || upload.File.Content == nil {
		return models.Report{}, ErrNoFile
	}

	var report models.Report
	resp, err := h.authedRequest(ctx).
		SetMultipartFormData(map[string]string{
			"category": upload.Category,
			"date":     upload.Date,
			"vitals":   upload.Vitals,
		}).
		SetMultipartField("file", upload.File.Name, upload.File.ContentType, upload.File.Content).
		SetResult(&report).
		Post("/api/reports")
	if err != nil {
		return models.Report{}, fmt.Errorf("upload report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	return report, nil
}

func (h *httpServerAdapter) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	var reports []models.Report

	resp, err := h.authedRequest(ctx).
		SetQueryParams(nonEmpty(map[string]string{
			"category":  filter.Category,
			"from":      filter.DateFrom,
			"to":        filter.DateTo,
			"vitalType": filter.VitalType,
		})).
		SetResult(&reports).
		Get("/api/reports")
	if err != nil {
		return nil, fmt.Errorf("list reports request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return reports, nil
}

func (h *httpServerAdapter) GetReport(ctx context.Context, reportID int64) (models.Report, error) {
	var report models.Report

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(reportID, 10)).
		SetResult(&report).
		Get("/api/reports/{id}")
	if err != nil {
		return models.Report{}, fmt.Errorf("get report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	return report, nil
}

// DownloadReport implements [ServerAdapter]. The body is streamed, not
// buffered, so large files never sit in memory.
func (h *httpServerAdapter) DownloadReport(ctx context.Context, reportID int64, dst io.Writer) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(reportID, 10)).
		SetDoNotParseResponse(true).
		Get("/api/reports/{id}/download")
	if err != nil {
		return "", fmt.Errorf("download report request: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(body, 64<<10))
		return "", statusError(resp.StatusCode(), msg)
	}

	if _, err = io.Copy(dst, body); err != nil {
		return "", fmt.Errorf("download report copy: %w", err)
	}

	return attachmentName(resp.Header().Get("Content-Disposition")), nil
}

func (h *httpServerAdapter) DeleteReport(ctx context.Context, reportID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(reportID, 10)).
		Delete("/api/reports/{id}")
	if err != nil {
		return fmt.Errorf("delete report request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GrantShare(ctx context.Context, reportID int64, email string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("reportID", strconv.FormatInt(reportID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ShareRequest{Email: email}).
		Post("/api/shares/{reportID}")
	if err != nil {
		return fmt.Errorf("grant share request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListShares(ctx context.Context, reportID int64) ([]models.ShareEntry, error) {
	var shares []models.ShareEntry

	resp, err := h.authedRequest(ctx).
		SetPathParam("reportID", strconv.FormatInt(reportID, 10)).
		SetResult(&shares).
		Get("/api/shares/{reportID}")
	if err != nil {
		return nil, fmt.Errorf("list shares request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return shares, nil
}

func (h *httpServerAdapter) RevokeShare(ctx context.Context, reportID, shareID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{
			"reportID": strconv.FormatInt(reportID, 10),
			"shareID":  strconv.FormatInt(shareID, 10),
		}).
		Delete("/api/shares/{reportID}/{shareID}")
	if err != nil {
		return fmt.Errorf("revoke share request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateVital(ctx context.Context, input models.VitalInput) (models.Vital, error) {
	var vital models.Vital

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&vital).
		Post("/api/vitals")
	if err != nil {
		return models.Vital{}, fmt.Errorf("create vital request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vital{}, err
	}

	return vital, nil
}

func (h *httpServerAdapter) ListVitals(ctx context.Context, filter models.VitalFilter) ([]models.Vital, error) {
	var vitals []models.Vital

	resp, err := h.authedRequest(ctx).
		SetQueryParams(nonEmpty(map[string]string{
			"type": filter.Type,
			"from": filter.DateFrom,
			"to":   filter.DateTo,
		})).
		SetResult(&vitals).
		Get("/api/vitals")
	if err != nil {
		return nil, fmt.Errorf("list vitals request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return vitals, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func nonEmpty(params map[string]string) map[string]string {
	for k, v := range params {
		if v == "" {
			delete(params, k)
		}
	}
	return params
}

// attachmentName returns the filename parameter of a Content-Disposition
// header, or "" if there is none.
func attachmentName(header string) string {
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
