// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"time"
)

// Report is a stored medical file plus the metadata its owner attached to
// it at upload time.
type Report struct {
	// ID is the server-assigned identifier of the report.
	ID int64 `json:"id"`

	// OwnerID references the user who uploaded the report. Only the owner
	// may delete the report or manage its shares.
	OwnerID int64 `json:"owner_id"`

	// Category is a free-text label such as "Lab" or "Prescription".
	// Filtering by category is exact and case-sensitive.
	Category string `json:"category"`

	// Date is the calendar date of the report in YYYY-MM-DD form.
	Date string `json:"date"`

	// VitalsJSON is the vitals payload as submitted by the client, compacted.
	// Nil when the upload carried no payload or the payload was not JSON.
	VitalsJSON *string `json:"vitals_json"`

	// OriginalName is the filename the client uploaded; downloads are
	// served under this name.
	OriginalName string `json:"original_name"`

	// StoredName is the generated blob name inside the blob store.
	StoredName string `json:"stored_name"`

	// MimeType is the declared content type of the uploaded file.
	MimeType string `json:"mime_type"`

	// Size is the blob size in bytes.
	Size int64 `json:"size"`

	// CreatedAt is the timestamp when the row was inserted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Report model.
func (r Report) TableName() string {
	return "reports"
}

// ReportUpload is the input of the report create operation: the form fields
// of the multipart request and the uploaded file.
type ReportUpload struct {
	OwnerID  int64
	Category string
	Date     string
	// Vitals is the raw vitals form field, usually a JSON object string.
	Vitals string

	File *UploadedFile
}

// UploadedFile describes a single file part of a multipart upload.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ReportFilter holds the criteria of the report listing query. Empty
// fields are not applied.
type ReportFilter struct {
	UserID    int64
	Category  string
	DateFrom  string
	DateTo    string
	VitalType string
}

// ReportCreated is the outcome of a successful report upload.
//
// The report row is always persisted when ReportCreated is returned.
// MirrorErr records a failure of the best-effort vitals mirroring step;
// it is never propagated to the client.
type ReportCreated struct {
	Report         Report
	MirroredVitals []Vital
	MirrorErr      error
}

// ReportDeleted is the outcome of a successful report deletion.
//
// BlobErr records a failure to remove the underlying blob after the rows
// were deleted; it is logged but not propagated.
type ReportDeleted struct {
	ReportID      int64
	RemovedVitals int64
	BlobErr       error
}

// ReportDownload is an opened blob ready to be streamed to the client.
type ReportDownload struct {
	Report  Report
	Content io.ReadCloser
}
