// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/models"
	sq "github.com/Masterminds/squirrel"
)

var reportColumns = []string{
	"r.id", "r.owner_id", "r.category", "r.date", "r.vitals_json",
	"r.original_name", "r.stored_name", "r.mime_type", "r.size", "r.created_at",
}

type reportRepository struct {
	db      *DB
	matcher VitalTypeMatcher
	logger  *logger.Logger
}

// NewReportRepository constructs a [ReportRepository]. matcher renders the
// vitalType filter of [ReportRepository.ListReports].
func NewReportRepository(db *DB, matcher VitalTypeMatcher, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:      db,
		matcher: matcher,
		logger:  logger,
	}
}

func (r *reportRepository) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	log := logger.FromContext(ctx)

	q := r.db.builder.Insert(report.TableName()).
		Columns("owner_id", "category", "date", "vitals_json", "original_name", "stored_name", "mime_type", "size").
		Values(report.OwnerID, report.Category, report.Date, report.VitalsJSON,
			report.OriginalName, report.StoredName, report.MimeType, report.Size).
		Suffix("RETURNING id, created_at")

	row, err := r.db.queryRow(ctx, q)
	if err != nil {
		return models.Report{}, err
	}

	if err := row.Scan(&report.ID, &report.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*reportRepository.CreateReport").
			Int64("owner_id", report.OwnerID).
			Msg("failed to insert report")
		return models.Report{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return report, nil
}

func (r *reportRepository) FindReportByID(ctx context.Context, reportID int64) (models.Report, error) {
	log := logger.FromContext(ctx)

	q := r.db.builder.Select(reportColumns...).
		From("reports r").
		Where(sq.Eq{"r.id": reportID})

	row, err := r.db.queryRow(ctx, q)
	if err != nil {
		return models.Report{}, err
	}

	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotFound
		}
		log.Err(err).
			Str("func", "*reportRepository.FindReportByID").
			Int64("report_id", reportID).
			Msg("failed to scan report row")
		return models.Report{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return report, nil
}

// ListReports returns the reports owned by or shared with filter.UserID
// that match every non-empty criterion, newest date first and, within a
// date, most recently created first.
func (r *reportRepository) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.query(ctx, r.buildListQuery(filter))
	if err != nil {
		log.Err(err).
			Str("func", "*reportRepository.ListReports").
			Int64("user_id", filter.UserID).
			Msg("failed to execute report listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reports := make([]models.Report, 0)
	for rows.Next() {
		report, scanErr := scanReport(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*reportRepository.ListReports").
				Int64("user_id", filter.UserID).
				Msg("failed to scan report row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		reports = append(reports, report)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*reportRepository.ListReports").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reports, nil
}

func (r *reportRepository) buildListQuery(filter models.ReportFilter) sq.SelectBuilder {
	q := r.db.builder.Select(reportColumns...).
		Distinct().
		From("reports r").
		LeftJoin("shares s ON s.report_id = r.id AND s.shared_with_user_id = ?", filter.UserID).
		Where(sq.Or{
			sq.Eq{"r.owner_id": filter.UserID},
			sq.Expr("s.id IS NOT NULL"),
		})

	if filter.Category != "" {
		q = q.Where(sq.Eq{"r.category": filter.Category})
	}
	if filter.DateFrom != "" {
		q = q.Where(sq.GtOrEq{"r.date": filter.DateFrom})
	}
	if filter.DateTo != "" {
		q = q.Where(sq.LtOrEq{"r.date": filter.DateTo})
	}
	if filter.VitalType != "" {
		q = q.Where(r.matcher.Match(filter.VitalType))
	}

	return q.OrderBy("r.date DESC", "r.id DESC")
}

func (r *reportRepository) DeleteReport(ctx context.Context, reportID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.exec(ctx, r.db.builder.Delete(models.Report{}.TableName()).Where(sq.Eq{"id": reportID}))
	if err != nil {
		log.Err(err).
			Str("func", "*reportRepository.DeleteReport").
			Int64("report_id", reportID).
			Msg("failed to delete report")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReportNotFound
	}

	return nil
}

func (r *reportRepository) IsOwner(ctx context.Context, userID, reportID int64) (bool, error) {
	q := r.db.builder.Select("1").
		From(models.Report{}.TableName()).
		Where(sq.Eq{"id": reportID, "owner_id": userID})

	return r.db.exists(ctx, q)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (models.Report, error) {
	var (
		report models.Report
		vitals sql.NullString
	)

	err := row.Scan(
		&report.ID,
		&report.OwnerID,
		&report.Category,
		&report.Date,
		&vitals,
		&report.OriginalName,
		&report.StoredName,
		&report.MimeType,
		&report.Size,
		&report.CreatedAt,
	)
	if err != nil {
		return models.Report{}, err
	}

	if vitals.Valid {
		report.VitalsJSON = &vitals.String
	}

	return report, nil
}
