// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-health-wallet/internal/app"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/internal/validators"
	"github.com/MKhiriev/go-health-wallet/models"
)

const uploadFileField = "file"

func (h *Handler) createReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeServiceError(w, r, fmt.Errorf("%w: %w", validators.ErrFileTooLarge, err), app.MsgUploadFailed)
			return
		}
		writeServiceError(w, r, fmt.Errorf("%w: %w", ErrMalformedUpload, err), app.MsgUploadFailed)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("removing multipart temp files failed")
		}
	}()

	file, closeFile, err := uploadedFile(r.MultipartForm)
	if err != nil {
		writeServiceError(w, r, err, app.MsgUploadFailed)
		return
	}
	defer closeFile()

	result, err := h.services.ReportService.CreateReport(ctx, models.ReportUpload{
		OwnerID:  userID,
		Category: r.PostFormValue("category"),
		Date:     r.PostFormValue("date"),
		Vitals:   r.PostFormValue("vitals"),
		File:     file,
	})
	if err != nil {
		writeServiceError(w, r, err, app.MsgUploadFailed)
		return
	}

	log.Info().
		Int64("report_id", result.Report.ID).
		Int("mirrored_vitals", len(result.MirroredVitals)).
		Msg("report uploaded")

	utils.WriteJSON(w, result.Report, http.StatusCreated)
}

// uploadedFile opens the single file part of form. A form without a file
// yields a nil file, which the validator rejects as a missing field.
func uploadedFile(form *multipart.Form) (*models.UploadedFile, func(), error) {
	headers := form.File[uploadFileField]
	switch len(headers) {
	case 0:
		return nil, func() {}, nil
	case 1:
	default:
		return nil, func() {}, ErrMultipleFiles
	}

	header := headers[0]
	content, err := header.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("opening uploaded file failed: %w", err)
	}

	return &models.UploadedFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     content,
	}, func() { content.Close() }, nil
}

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	reports, err := h.services.ReportService.ListReports(r.Context(), models.ReportFilter{
		UserID:    userID,
		Category:  query.Get("category"),
		DateFrom:  query.Get("from"),
		DateTo:    query.Get("to"),
		VitalType: query.Get("vitalType"),
	})
	if err != nil {
		writeServiceError(w, r, err, app.MsgListFailed)
		return
	}

	utils.WriteJSON(w, nonNil(reports), http.StatusOK)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchFailed)
		return
	}

	report, err := h.services.ReportService.GetReport(r.Context(), userID, reportID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgFetchFailed)
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) downloadReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err, app.MsgDownloadFailed)
		return
	}

	download, err := h.services.ReportService.DownloadReport(r.Context(), userID, reportID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgDownloadFailed)
		return
	}
	defer download.Content.Close()

	contentType := download.Report.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", contentDisposition(download.Report.OriginalName))
	if download.Report.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(download.Report.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, download.Content); err != nil {
		logger.FromRequest(r).Err(err).Int64("report_id", reportID).Msg("streaming report file failed")
	}
}

// contentDisposition offers the file as an attachment under its original
// name. Names that cannot be encoded are dropped.
func contentDisposition(filename string) string {
	if filename != "" {
		if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
			return v
		}
	}
	return "attachment"
}

func (h *Handler) deleteReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	reportID, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, r, err, app.MsgDeleteFailed)
		return
	}

	result, err := h.services.ReportService.DeleteReport(r.Context(), userID, reportID)
	if err != nil {
		writeServiceError(w, r, err, app.MsgDeleteFailed)
		return
	}

	logger.FromRequest(r).Info().
		Int64("report_id", result.ReportID).
		Int64("removed_vitals", result.RemovedVitals).
		Msg("report deleted")

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
