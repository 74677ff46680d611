// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"time"
)

// DateLayout is the calendar date layout used for every stored date.
const DateLayout = time.DateOnly

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe = regexp.MustCompile(`^(\d{2})[-/.](\d{2})[-/.](\d{4})$`)
)

// NormalizeDate rewrites DD-MM-YYYY, DD/MM/YYYY and DD.MM.YYYY to
// YYYY-MM-DD. ISO dates and anything unrecognised are returned unchanged.
func NormalizeDate(d string) string {
	if d == "" || isoDateRe.MatchString(d) {
		return d
	}

	if m := dmyDateRe.FindStringSubmatch(d); m != nil {
		return m[3] + "-" + m[2] + "-" + m[1]
	}

	return d
}

// IsCalendarDate reports whether d is a real YYYY-MM-DD date.
func IsCalendarDate(d string) bool {
	_, err := time.Parse(DateLayout, d)
	return err == nil
}
