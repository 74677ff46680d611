// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/models"
)

// NormalizeVitalType resolves the heart rate aliases "hr" and "heartrate"
// (any case) to heartRate. Other values are only trimmed.
func NormalizeVitalType(vitalType string) string {
	trimmed := strings.TrimSpace(vitalType)

	switch strings.ToLower(trimmed) {
	case "hr", "heartrate":
		return models.VitalHeartRate
	case "bp":
		return "bp"
	default:
		return trimmed
	}
}

// NormalizeReportFilter rewrites the date bounds to YYYY-MM-DD and resolves
// vital type aliases. The category is matched exactly and left untouched.
func NormalizeReportFilter(filter models.ReportFilter) models.ReportFilter {
	filter.DateFrom = utils.NormalizeDate(filter.DateFrom)
	filter.DateTo = utils.NormalizeDate(filter.DateTo)
	filter.VitalType = NormalizeVitalType(filter.VitalType)

	return filter
}

// NormalizeVitalFilter rewrites the date bounds of a vitals listing.
func NormalizeVitalFilter(filter models.VitalFilter) models.VitalFilter {
	filter.DateFrom = utils.NormalizeDate(filter.DateFrom)
	filter.DateTo = utils.NormalizeDate(filter.DateTo)

	return filter
}
