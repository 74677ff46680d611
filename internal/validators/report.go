// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"mime"
	"strings"

	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/models"
)

const (
	// FieldOwnerID validates that the uploader is a known user.
	FieldOwnerID = "owner_id"

	// FieldCategory validates that the report category is not blank.
	FieldCategory = "category"

	// FieldDate validates that the date is present and is a calendar date.
	// Dates must already be normalized to YYYY-MM-DD.
	FieldDate = "date"

	// FieldFile validates that exactly one file was uploaded.
	FieldFile = "file"

	// FieldFileType validates the declared content type against the allow-list.
	FieldFileType = "file_type"

	// FieldFileSize validates the file size against the upload cap.
	FieldFileSize = "file_size"

	// FieldVitalType validates that a manual vital names its type.
	FieldVitalType = "type"

	// FieldVitalValue validates that a manual vital carries a value.
	FieldVitalValue = "value"
)

var allowedContentTypes = map[string]struct{}{
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/webp":      {},
}

// ReportValidator checks report uploads and manually entered vitals before
// they reach the service layer.
type ReportValidator struct {
	maxUploadSize int64
}

// NewReportValidator returns a [Validator] rejecting files larger than
// maxUploadSize bytes. A non-positive maxUploadSize disables the size check.
func NewReportValidator(maxUploadSize int64) Validator {
	return &ReportValidator{maxUploadSize: maxUploadSize}
}

func (v *ReportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ReportUpload:
		return v.validateReportUpload(ctx, value, fields...)
	case *models.ReportUpload:
		return v.validateReportUpload(ctx, *value, fields...)

	case models.VitalInput:
		return v.validateVitalInput(ctx, value, fields...)
	case *models.VitalInput:
		return v.validateVitalInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// IsAllowedContentType reports whether contentType, ignoring parameters
// and case, is one of the accepted report file types.
func IsAllowedContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	_, ok := allowedContentTypes[strings.ToLower(mediaType)]
	return ok
}

func (v *ReportValidator) validateReportUpload(_ context.Context, upload models.ReportUpload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldCategory, FieldFile, FieldDate, FieldFileType, FieldFileSize}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if upload.OwnerID <= 0 {
				return ErrInvalidUserID
			}
		case FieldCategory:
			if strings.TrimSpace(upload.Category) == "" {
				return ErrMissingFields
			}
		case FieldDate:
			if upload.Date == "" {
				return ErrMissingFields
			}
			if !utils.IsCalendarDate(upload.Date) {
				return ErrInvalidDate
			}
		case FieldFile:
			if upload.File == nil || upload.File.Content == nil {
				return ErrMissingFields
			}
		case FieldFileType:
			if upload.File == nil || !IsAllowedContentType(upload.File.ContentType) {
				return ErrUnsupportedFileType
			}
		case FieldFileSize:
			if upload.File != nil && v.maxUploadSize > 0 && upload.File.Size > v.maxUploadSize {
				return ErrFileTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReportValidator) validateVitalInput(_ context.Context, input models.VitalInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVitalType, FieldVitalValue, FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldVitalType:
			if strings.TrimSpace(input.Type) == "" {
				return ErrMissingFields
			}
		case FieldVitalValue:
			if input.Value == nil {
				return ErrMissingFields
			}
		case FieldDate:
			if input.Date == "" {
				return ErrMissingFields
			}
			if !utils.IsCalendarDate(input.Date) {
				return ErrInvalidDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
