// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the health wallet server writes
// into JSON error bodies.
//
// Clients match on these strings, so they are kept in one place and never
// reworded casually.
package app

// Validation messages (400).
const (
	MsgMissingFields       = "Missing fields"
	MsgInvalidDate         = "Invalid date"
	MsgUnsupportedFileType = "Unsupported file type"
	MsgFileTooLarge        = "File too large"
	MsgEmailRequired       = "Email required"
	MsgCannotShareWithSelf = "Cannot share with yourself"
	MsgInvalidID           = "Invalid id"
	MsgInvalidJSON         = "Invalid JSON was passed"
	MsgExactlyOneFile      = "Exactly one file must be uploaded"
	MsgMalformedUpload     = "Malformed upload"
)

// Authentication messages (401).
const (
	// MsgUnauthorized answers a missing or malformed Authorization header.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidToken answers a bearer token that is expired or fails
	// signature verification.
	MsgInvalidToken = "Invalid token"

	// MsgInvalidCredentials covers both an unknown email and a wrong password.
	MsgInvalidCredentials = "Invalid credentials"
)

const (
	MsgForbidden              = "Forbidden"
	MsgNotFound               = "Not found"
	MsgFileMissing            = "File missing"
	MsgUserNotFound           = "User not found"
	MsgEmailAlreadyRegistered = "Email already registered"
)

// Fallback messages for unclassified (500) failures, one per operation.
const (
	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed"
	MsgFetchFailed        = "Fetch failed"
	MsgUploadFailed       = "Upload failed"
	MsgListFailed         = "List failed"
	MsgDownloadFailed     = "Download failed"
	MsgDeleteFailed       = "Delete failed"
	MsgShareFailed        = "Share failed"
	MsgListSharesFailed   = "List shares failed"
	MsgRevokeFailed       = "Revoke failed"
	MsgCreateFailed       = "Create failed"
)
