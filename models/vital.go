// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Vital type keys produced by mirroring a report's vitals payload.
const (
	VitalSugar       = "sugar"
	VitalHeartRate   = "heartRate"
	VitalBPSystolic  = "bp_systolic"
	VitalBPDiastolic = "bp_diastolic"
)

// Units attached to mirrored vitals.
const (
	UnitSugar     = "mg/dL"
	UnitHeartRate = "bpm"
	UnitBP        = "mmHg"
)

// Vital is a single numeric health measurement, either entered manually or
// mirrored from a report.
type Vital struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit,omitempty"`
	Date   string  `json:"date"`

	// ReportID references the report the vital was mirrored from.
	// Nil for manually entered vitals, which report deletion never touches.
	ReportID *int64 `json:"report_id"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Vital model.
func (v Vital) TableName() string {
	return "vitals"
}

// VitalInput is the body of a manual vital entry request.
type VitalInput struct {
	Type  string   `json:"type"`
	Value *float64 `json:"value"`
	Unit  string   `json:"unit"`
	Date  string   `json:"date"`
}

// VitalFilter holds the criteria of the vitals listing query.
type VitalFilter struct {
	UserID   int64
	Type     string
	DateFrom string
	DateTo   string
}
