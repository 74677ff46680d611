// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RoleViewer is the only role a share can carry.
const RoleViewer = "viewer"

// Share is a read-only visibility grant on one report for one grantee.
// There is at most one share per (report, grantee) pair.
type Share struct {
	ID        int64     `json:"id"`
	ReportID  int64     `json:"report_id"`
	GranteeID int64     `json:"grantee_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Share model.
func (s Share) TableName() string {
	return "shares"
}

// ShareEntry is a share joined with its grantee, as returned to the owner.
type ShareEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ShareRequest is the body of a grant request.
type ShareRequest struct {
	Email string `json:"email"`
}
