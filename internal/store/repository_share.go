// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/models"
	sq "github.com/Masterminds/squirrel"
)

type shareRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		db:     db,
		logger: logger,
	}
}

func (s *shareRepository) GrantShare(ctx context.Context, reportID, granteeID int64) error {
	log := logger.FromContext(ctx)

	q := s.db.builder.Insert(models.Share{}.TableName()).
		Columns("report_id", "shared_with_user_id", "role").
		Values(reportID, granteeID, models.RoleViewer).
		Suffix("ON CONFLICT (report_id, shared_with_user_id) DO NOTHING")

	if _, err := s.db.exec(ctx, q); err != nil {
		log.Err(err).
			Str("func", "*shareRepository.GrantShare").
			Int64("report_id", reportID).
			Int64("grantee_id", granteeID).
			Msg("failed to insert share")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListShares returns the report's shares joined with the grantee's name
// and email, oldest grant first.
func (s *shareRepository) ListShares(ctx context.Context, reportID int64) ([]models.ShareEntry, error) {
	log := logger.FromContext(ctx)

	q := s.db.builder.Select("s.id", "u.name", "u.email", "s.role", "s.created_at").
		From("shares s").
		Join("users u ON u.id = s.shared_with_user_id").
		Where(sq.Eq{"s.report_id": reportID}).
		OrderBy("s.id ASC")

	rows, err := s.db.query(ctx, q)
	if err != nil {
		log.Err(err).
			Str("func", "*shareRepository.ListShares").
			Int64("report_id", reportID).
			Msg("failed to execute shares listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shares := make([]models.ShareEntry, 0)
	for rows.Next() {
		var entry models.ShareEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Email, &entry.Role, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		shares = append(shares, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return shares, nil
}

func (s *shareRepository) RevokeShare(ctx context.Context, reportID, shareID int64) error {
	log := logger.FromContext(ctx)

	q := s.db.builder.Delete(models.Share{}.TableName()).
		Where(sq.Eq{"id": shareID, "report_id": reportID})

	if _, err := s.db.exec(ctx, q); err != nil {
		log.Err(err).
			Str("func", "*shareRepository.RevokeShare").
			Int64("report_id", reportID).
			Int64("share_id", shareID).
			Msg("failed to delete share")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *shareRepository) HasShare(ctx context.Context, reportID, userID int64) (bool, error) {
	q := s.db.builder.Select("1").
		From(models.Share{}.TableName()).
		Where(sq.Eq{"report_id": reportID, "shared_with_user_id": userID})

	return s.db.exists(ctx, q)
}
