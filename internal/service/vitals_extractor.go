// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-health-wallet/models"
)

const (
	payloadKeySugar     = "sugar"
	payloadKeyHeartRate = "heartRate"
	payloadKeyBP        = "bp"
)

var (
	// leadingNumberRe matches the numeric prefix of values like "140mg/dL".
	leadingNumberRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

	// bpRe matches "SYS/DIA" at the start of a blood pressure reading.
	bpRe = regexp.MustCompile(`^(\d{2,3})/(\d{2,3})`)
)

// ExtractVitals parses a report's vitals payload into the vitals it mirrors,
// all tagged with reportID and dated like the report. Recognised keys are
// sugar, heartRate and bp; unusable values are skipped without error.
//
// A nil or blank payload yields no vitals. A payload that is not a JSON
// object yields ErrInvalidVitalsPayload.
func ExtractVitals(payload *string, userID, reportID int64, date string) ([]models.Vital, error) {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		return nil, nil
	}

	decoder := json.NewDecoder(strings.NewReader(*payload))
	decoder.UseNumber()

	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVitalsPayload, err)
	}
	if fields == nil {
		return nil, ErrInvalidVitalsPayload
	}

	newVital := func(vitalType string, value float64, unit string) models.Vital {
		return models.Vital{
			UserID:   userID,
			Type:     vitalType,
			Value:    value,
			Unit:     unit,
			Date:     date,
			ReportID: &reportID,
		}
	}

	var vitals []models.Vital

	if value, ok := leadingNumber(fields[payloadKeySugar]); ok {
		vitals = append(vitals, newVital(models.VitalSugar, value, models.UnitSugar))
	}
	if value, ok := leadingNumber(fields[payloadKeyHeartRate]); ok {
		vitals = append(vitals, newVital(models.VitalHeartRate, value, models.UnitHeartRate))
	}
	if systolic, diastolic, ok := bloodPressure(fields[payloadKeyBP]); ok {
		vitals = append(vitals,
			newVital(models.VitalBPSystolic, systolic, models.UnitBP),
			newVital(models.VitalBPDiastolic, diastolic, models.UnitBP),
		)
	}

	return vitals, nil
}

// leadingNumber converts a payload value to a number. JSON numbers are used
// as is; strings contribute their leading numeric prefix. Any other type is
// rejected.
func leadingNumber(v any) (float64, bool) {
	switch value := v.(type) {
	case json.Number:
		f, err := value.Float64()
		return f, err == nil
	case float64:
		return value, true
	case string:
		match := leadingNumberRe.FindString(strings.TrimLeft(value, " \t\n\r\f\v"))
		if match == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(match, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func bloodPressure(v any) (float64, float64, bool) {
	reading, ok := v.(string)
	if !ok {
		return 0, 0, false
	}

	m := bpRe.FindStringSubmatch(reading)
	if m == nil {
		return 0, 0, false
	}

	systolic, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	diastolic, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}

	return systolic, diastolic, true
}

// compactVitalsPayload returns raw with insignificant whitespace removed,
// or nil when raw is blank or not valid JSON.
func compactVitalsPayload(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(raw)); err != nil {
		return nil
	}

	compacted := buf.String()
	return &compacted
}
