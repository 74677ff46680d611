// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-health-wallet/internal/app"
	"github.com/MKhiriev/go-health-wallet/internal/service"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/internal/validators"
)

type httpError struct {
	status  int
	message string
}

var errorStatusMap = map[error]httpError{
	// validation
	validators.ErrMissingFields:       {http.StatusBadRequest, app.MsgMissingFields},
	validators.ErrInvalidDate:         {http.StatusBadRequest, app.MsgInvalidDate},
	validators.ErrUnsupportedFileType: {http.StatusBadRequest, app.MsgUnsupportedFileType},
	validators.ErrFileTooLarge:        {http.StatusBadRequest, app.MsgFileTooLarge},
	service.ErrInvalidDataProvided:    {http.StatusBadRequest, app.MsgMissingFields},
	service.ErrEmailRequired:          {http.StatusBadRequest, app.MsgEmailRequired},
	service.ErrCannotShareWithSelf:    {http.StatusBadRequest, app.MsgCannotShareWithSelf},
	ErrInvalidID:                      {http.StatusBadRequest, app.MsgInvalidID},
	ErrInvalidJSON:                    {http.StatusBadRequest, app.MsgInvalidJSON},
	ErrMultipleFiles:                  {http.StatusBadRequest, app.MsgExactlyOneFile},
	ErrMalformedUpload:                {http.StatusBadRequest, app.MsgMalformedUpload},

	// auth
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgInvalidToken},
	validators.ErrInvalidUserID:        {http.StatusUnauthorized, app.MsgUnauthorized},

	// access
	service.ErrForbidden: {http.StatusForbidden, app.MsgForbidden},

	// not found
	service.ErrReportNotFound: {http.StatusNotFound, app.MsgNotFound},
	service.ErrBlobMissing:    {http.StatusNotFound, app.MsgFileMissing},
	service.ErrUserNotFound:   {http.StatusNotFound, app.MsgUserNotFound},

	// conflict
	store.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgEmailAlreadyRegistered},
}

// statusFromError returns the status code and client message for err.
// Unclassified errors are INTERNAL and answered with fallback.
func statusFromError(err error, fallback string) (int, string) {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped.status, mapped.message
		}
	}
	return http.StatusInternalServerError, fallback
}
