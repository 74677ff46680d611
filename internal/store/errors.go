// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup by email or id
	// produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrReportNotFound is returned when a report row with the requested id
	// does not exist.
	ErrReportNotFound = errors.New("report was not found")

	// ErrBlobNotFound is returned by a [BlobStorage] when the named blob is
	// absent from the backend.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrInvalidBlobName is returned when a blob name would escape the
	// storage root.
	ErrInvalidBlobName = errors.New("invalid blob name")

	// ErrUnsupportedDSN is returned when the database DSN matches no
	// supported driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These wrap driver errors when a SQL
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
