// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"2024-03-01", "2024-03-01"},
		{"01-03-2024", "2024-03-01"},
		{"01/03/2024", "2024-03-01"},
		{"01.03.2024", "2024-03-01"},
		{"1-3-2024", "1-3-2024"},
		{"March 1st", "March 1st"},
		{"2024/03/01", "2024/03/01"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeDate(tt.in); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsCalendarDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-03-01", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"01-03-2024", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsCalendarDate(tt.in); got != tt.want {
				t.Errorf("IsCalendarDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
