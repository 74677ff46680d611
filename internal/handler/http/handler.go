// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-health-wallet/internal/config"
	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/service"
)

// multipartMemory is the part of a multipart upload kept in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// multipartOverhead is added to the upload cap so that the form fields and
// part headers surrounding the file do not trip the body limit.
const multipartOverhead = 1 << 20

type Handler struct {
	services *service.Services

	maxUploadSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		maxUploadSize: cfg.MaxUploadSize,
		logger:        logger,
	}
}
