// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/models"
)

type vitalService struct {
	vitalRepository store.VitalRepository

	logger *logger.Logger
}

func NewVitalService(vitalRepository store.VitalRepository, logger *logger.Logger) VitalService {
	return &vitalService{
		vitalRepository: vitalRepository,
		logger:          logger,
	}
}

// CreateVital stores a manually entered vital. It never references a
// report, so report deletion leaves it alone.
func (v *vitalService) CreateVital(ctx context.Context, userID int64, input models.VitalInput) (models.Vital, error) {
	if input.Value == nil {
		return models.Vital{}, ErrInvalidDataProvided
	}

	vital, err := v.vitalRepository.CreateVital(ctx, models.Vital{
		UserID: userID,
		Type:   strings.TrimSpace(input.Type),
		Value:  *input.Value,
		Unit:   strings.TrimSpace(input.Unit),
		Date:   input.Date,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("vital creation ended with error")
		return models.Vital{}, fmt.Errorf("vital creation ended with error: %w", err)
	}

	return vital, nil
}

func (v *vitalService) ListVitals(ctx context.Context, filter models.VitalFilter) ([]models.Vital, error) {
	vitals, err := v.vitalRepository.ListVitals(ctx, NormalizeVitalFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("listing vitals failed: %w", err)
	}

	return vitals, nil
}
