// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/models"
	sq "github.com/Masterminds/squirrel"
)

var vitalColumns = []string{"id", "user_id", "type", "value", "unit", "date", "report_id", "created_at"}

type vitalRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewVitalRepository(db *DB, logger *logger.Logger) VitalRepository {
	logger.Debug().Msg("creating vital repository")
	return &vitalRepository{
		db:     db,
		logger: logger,
	}
}

func (v *vitalRepository) CreateVital(ctx context.Context, vital models.Vital) (models.Vital, error) {
	log := logger.FromContext(ctx)

	var unit any
	if vital.Unit != "" {
		unit = vital.Unit
	}

	q := v.db.builder.Insert(vital.TableName()).
		Columns("user_id", "type", "value", "unit", "date", "report_id").
		Values(vital.UserID, vital.Type, vital.Value, unit, vital.Date, vital.ReportID).
		Suffix("RETURNING id, created_at")

	row, err := v.db.queryRow(ctx, q)
	if err != nil {
		return models.Vital{}, err
	}

	if err := row.Scan(&vital.ID, &vital.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*vitalRepository.CreateVital").
			Int64("user_id", vital.UserID).
			Str("type", vital.Type).
			Msg("failed to insert vital")
		return models.Vital{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return vital, nil
}

// ListVitals returns the user's vitals matching filter, oldest date first.
func (v *vitalRepository) ListVitals(ctx context.Context, filter models.VitalFilter) ([]models.Vital, error) {
	log := logger.FromContext(ctx)

	q := v.db.builder.Select(vitalColumns...).
		From(models.Vital{}.TableName()).
		Where(sq.Eq{"user_id": filter.UserID})
	if filter.Type != "" {
		q = q.Where(sq.Eq{"type": filter.Type})
	}
	if filter.DateFrom != "" {
		q = q.Where(sq.GtOrEq{"date": filter.DateFrom})
	}
	if filter.DateTo != "" {
		q = q.Where(sq.LtOrEq{"date": filter.DateTo})
	}
	q = q.OrderBy("date ASC", "id ASC")

	rows, err := v.db.query(ctx, q)
	if err != nil {
		log.Err(err).
			Str("func", "*vitalRepository.ListVitals").
			Int64("user_id", filter.UserID).
			Msg("failed to execute vitals listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vitals := make([]models.Vital, 0)
	for rows.Next() {
		var (
			vital    models.Vital
			unit     sql.NullString
			reportID sql.NullInt64
		)
		if err := rows.Scan(&vital.ID, &vital.UserID, &vital.Type, &vital.Value, &unit, &vital.Date, &reportID, &vital.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "*vitalRepository.ListVitals").
				Msg("failed to scan vital row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vital.Unit = unit.String
		if reportID.Valid {
			vital.ReportID = &reportID.Int64
		}
		vitals = append(vitals, vital)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vitals, nil
}

func (v *vitalRepository) DeleteVitalsByReport(ctx context.Context, reportID int64) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := v.db.exec(ctx, v.db.builder.Delete(models.Vital{}.TableName()).Where(sq.Eq{"report_id": reportID}))
	if err != nil {
		log.Err(err).
			Str("func", "*vitalRepository.DeleteVitalsByReport").
			Int64("report_id", reportID).
			Msg("failed to delete mirrored vitals")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
