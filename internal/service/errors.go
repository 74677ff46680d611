// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrPasswordHashing     = errors.New("password hashing failed")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Report and share errors. The HTTP layer maps each of them to a status
// code, so they are returned unwrapped.
var (
	// ErrForbidden is returned when the caller may not view or mutate the
	// report. Absent reports also produce it where the caller must own the
	// report.
	ErrForbidden = errors.New("forbidden")

	// ErrReportNotFound is returned when the report row does not exist.
	ErrReportNotFound = errors.New("report not found")

	// ErrBlobMissing is returned when the report row exists but its blob
	// is gone from the blob store.
	ErrBlobMissing = errors.New("report file missing")

	ErrEmailRequired        = errors.New("email required")
	ErrUserNotFound         = errors.New("user not found")
	ErrCannotShareWithSelf  = errors.New("cannot share with yourself")
	ErrInvalidVitalsPayload = errors.New("vitals payload is not a JSON object")
)
