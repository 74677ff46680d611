// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/models"
	sq "github.com/Masterminds/squirrel"
)

// NewVitalTypeMatcher returns the matcher selected by name
// ([config.VitalTypeMatchPayload] or [config.VitalTypeMatchMirrored]).
func NewVitalTypeMatcher(name string) (VitalTypeMatcher, error) {
	switch name {
	case config.VitalTypeMatchPayload, "":
		return PayloadContainsMatcher{}, nil
	case config.VitalTypeMatchMirrored:
		return MirroredVitalsMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown vital type matcher %q", name)
	}
}

// PayloadContainsMatcher matches reports whose stored vitals payload text
// contains the quoted key, e.g. %"sugar"%. The key may match anywhere in
// the payload, including inside values.
type PayloadContainsMatcher struct{}

func (PayloadContainsMatcher) Match(vitalType string) sq.Sqlizer {
	return sq.Like{"r.vitals_json": `%"` + vitalType + `"%`}
}

// MirroredVitalsMatcher matches reports that have at least one mirrored
// vitals row of the requested type. "bp" matches either blood pressure
// component.
type MirroredVitalsMatcher struct{}

func (MirroredVitalsMatcher) Match(vitalType string) sq.Sqlizer {
	types := []any{vitalType}
	if vitalType == "bp" {
		types = []any{models.VitalBPSystolic, models.VitalBPDiastolic}
	}

	return sq.Expr(
		"EXISTS (SELECT 1 FROM vitals v WHERE v.report_id = r.id AND v.type IN ("+sq.Placeholders(len(types))+"))",
		types...,
	)
}
