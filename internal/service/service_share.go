// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/models"
)

type shareService struct {
	shareRepository store.ShareRepository
	userRepository  store.UserRepository
	accessService   AccessService

	logger *logger.Logger
}

func NewShareService(shareRepository store.ShareRepository, userRepository store.UserRepository, accessService AccessService, logger *logger.Logger) ShareService {
	return &shareService{
		shareRepository: shareRepository,
		userRepository:  userRepository,
		accessService:   accessService,
		logger:          logger,
	}
}

// GrantShare gives the user registered under email viewer access and
// returns the report's current shares. Granting twice is a no-op.
//
// Errors: ErrEmailRequired, ErrForbidden (caller is not the owner),
// ErrUserNotFound, ErrCannotShareWithSelf.
func (s *shareService) GrantShare(ctx context.Context, ownerID, reportID int64, email string) ([]models.ShareEntry, error) {
	log := logger.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	if err := s.requireOwner(ctx, ownerID, reportID); err != nil {
		return nil, err
	}

	grantee, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil, ErrUserNotFound
		}
		log.Err(err).Int64("report_id", reportID).Msg("grantee lookup failed")
		return nil, fmt.Errorf("grantee lookup failed: %w", err)
	}
	if grantee.UserID == ownerID {
		return nil, ErrCannotShareWithSelf
	}

	if err := s.shareRepository.GrantShare(ctx, reportID, grantee.UserID); err != nil {
		log.Err(err).
			Int64("report_id", reportID).
			Int64("grantee_id", grantee.UserID).
			Msg("granting share failed")
		return nil, fmt.Errorf("granting share failed: %w", err)
	}

	log.Info().Int64("report_id", reportID).Int64("grantee_id", grantee.UserID).Msg("report shared")

	return s.listShares(ctx, reportID)
}

func (s *shareService) ListShares(ctx context.Context, ownerID, reportID int64) ([]models.ShareEntry, error) {
	if err := s.requireOwner(ctx, ownerID, reportID); err != nil {
		return nil, err
	}

	return s.listShares(ctx, reportID)
}

// RevokeShare deletes the share. An unknown shareID succeeds.
func (s *shareService) RevokeShare(ctx context.Context, ownerID, reportID, shareID int64) error {
	if err := s.requireOwner(ctx, ownerID, reportID); err != nil {
		return err
	}

	if err := s.shareRepository.RevokeShare(ctx, reportID, shareID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("report_id", reportID).
			Int64("share_id", shareID).
			Msg("revoking share failed")
		return fmt.Errorf("revoking share failed: %w", err)
	}

	return nil
}

func (s *shareService) requireOwner(ctx context.Context, userID, reportID int64) error {
	owner, err := s.accessService.IsOwner(ctx, userID, reportID)
	if err != nil {
		return err
	}
	if !owner {
		return ErrForbidden
	}

	return nil
}

func (s *shareService) listShares(ctx context.Context, reportID int64) ([]models.ShareEntry, error) {
	shares, err := s.shareRepository.ListShares(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("listing shares failed: %w", err)
	}

	return shares, nil
}
