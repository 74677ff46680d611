// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Access is the decision of the access resolver for a (user, report) pair.
//
// AccessDenied covers both "report does not exist" and "report exists but
// the user is neither owner nor grantee".
type Access int

const (
	AccessDenied Access = iota
	AccessViewer
	AccessOwner
)

// CanView reports whether the decision permits read access.
func (a Access) CanView() bool {
	return a == AccessViewer || a == AccessOwner
}

// IsOwner reports whether the decision permits mutation.
func (a Access) IsOwner() bool {
	return a == AccessOwner
}

func (a Access) String() string {
	switch a {
	case AccessOwner:
		return "owner"
	case AccessViewer:
		return "viewer"
	default:
		return "denied"
	}
}
