// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-health-wallet/internal/logger"
	"github.com/MKhiriev/go-health-wallet/internal/store"
	"github.com/MKhiriev/go-health-wallet/internal/utils"
	"github.com/MKhiriev/go-health-wallet/models"
)

type reportService struct {
	reportRepository store.ReportRepository
	vitalRepository  store.VitalRepository
	blobStorage      store.BlobStorage
	accessService    AccessService

	idGenerator *utils.UUIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewReportService(
	reportRepository store.ReportRepository,
	vitalRepository store.VitalRepository,
	blobStorage store.BlobStorage,
	accessService AccessService,
	logger *logger.Logger,
) ReportService {
	return &reportService{
		reportRepository: reportRepository,
		vitalRepository:  vitalRepository,
		blobStorage:      blobStorage,
		accessService:    accessService,
		idGenerator:      utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

// CreateReport expects a validated upload; see NewReportValidationService.
//
// Steps: put the blob, insert the report row, mirror the vitals. The three
// steps are not atomic. When the row insert fails the blob is removed on a
// best-effort basis.
func (s *reportService) CreateReport(ctx context.Context, upload models.ReportUpload) (models.ReportCreated, error) {
	log := logger.FromContext(ctx)

	if upload.File == nil || upload.File.Content == nil {
		return models.ReportCreated{}, ErrInvalidDataProvided
	}

	storedName := s.blobName(upload.File.Name)
	size, err := s.blobStorage.Put(ctx, storedName, upload.File.ContentType, upload.File.Size, upload.File.Content)
	if err != nil {
		log.Err(err).Str("stored_name", storedName).Msg("storing report file failed")
		return models.ReportCreated{}, fmt.Errorf("storing report file failed: %w", err)
	}

	report, err := s.reportRepository.CreateReport(ctx, models.Report{
		OwnerID:      upload.OwnerID,
		Category:     upload.Category,
		Date:         upload.Date,
		VitalsJSON:   compactVitalsPayload(upload.Vitals),
		OriginalName: upload.File.Name,
		StoredName:   storedName,
		MimeType:     upload.File.ContentType,
		Size:         size,
	})
	if err != nil {
		log.Err(err).Int64("owner_id", upload.OwnerID).Msg("report creation ended with error")
		if delErr := s.blobStorage.Delete(ctx, storedName); delErr != nil {
			log.Warn().Err(delErr).Str("stored_name", storedName).Msg("orphaned report file left in blob storage")
		}
		return models.ReportCreated{}, fmt.Errorf("report creation ended with error: %w", err)
	}

	result := models.ReportCreated{Report: report}
	result.MirroredVitals, result.MirrorErr = s.mirrorVitals(ctx, report)
	if result.MirrorErr != nil {
		log.Warn().Err(result.MirrorErr).Int64("report_id", report.ID).Msg("vitals mirroring failed")
	}

	return result, nil
}

// mirrorVitals stops at the first failed insert. Vitals inserted before the
// failure are kept and returned.
func (s *reportService) mirrorVitals(ctx context.Context, report models.Report) ([]models.Vital, error) {
	vitals, err := ExtractVitals(report.VitalsJSON, report.OwnerID, report.ID, report.Date)
	if err != nil {
		return nil, err
	}

	mirrored := make([]models.Vital, 0, len(vitals))
	for _, vital := range vitals {
		created, err := s.vitalRepository.CreateVital(ctx, vital)
		if err != nil {
			return mirrored, fmt.Errorf("mirroring %s failed: %w", vital.Type, err)
		}
		mirrored = append(mirrored, created)
	}

	return mirrored, nil
}

func (s *reportService) ListReports(ctx context.Context, filter models.ReportFilter) ([]models.Report, error) {
	reports, err := s.reportRepository.ListReports(ctx, NormalizeReportFilter(filter))
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", filter.UserID).Msg("listing reports failed")
		return nil, fmt.Errorf("listing reports failed: %w", err)
	}

	return reports, nil
}

// GetReport returns ErrReportNotFound for an absent row and ErrForbidden
// when the row exists but the user is neither owner nor viewer.
func (s *reportService) GetReport(ctx context.Context, userID, reportID int64) (models.Report, error) {
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return models.Report{}, err
	}

	if report.OwnerID == userID {
		return report, nil
	}

	canView, err := s.accessService.CanView(ctx, userID, reportID)
	if err != nil {
		return models.Report{}, err
	}
	if !canView {
		return models.Report{}, ErrForbidden
	}

	return report, nil
}

func (s *reportService) DownloadReport(ctx context.Context, userID, reportID int64) (models.ReportDownload, error) {
	report, err := s.GetReport(ctx, userID, reportID)
	if err != nil {
		return models.ReportDownload{}, err
	}

	content, err := s.blobStorage.Open(ctx, report.StoredName)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			logger.FromContext(ctx).Warn().
				Int64("report_id", reportID).
				Str("stored_name", report.StoredName).
				Msg("report file missing from blob storage")
			return models.ReportDownload{}, ErrBlobMissing
		}
		return models.ReportDownload{}, fmt.Errorf("opening report file failed: %w", err)
	}

	return models.ReportDownload{Report: report, Content: content}, nil
}

// DeleteReport returns ErrReportNotFound for an absent row and ErrForbidden
// when the caller does not own the report.
func (s *reportService) DeleteReport(ctx context.Context, userID, reportID int64) (models.ReportDeleted, error) {
	log := logger.FromContext(ctx)

	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return models.ReportDeleted{}, err
	}
	if report.OwnerID != userID {
		return models.ReportDeleted{}, ErrForbidden
	}

	removed, err := s.vitalRepository.DeleteVitalsByReport(ctx, reportID)
	if err != nil {
		log.Err(err).Int64("report_id", reportID).Msg("deleting mirrored vitals failed")
		return models.ReportDeleted{}, fmt.Errorf("deleting mirrored vitals failed: %w", err)
	}

	if err := s.reportRepository.DeleteReport(ctx, reportID); err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			return models.ReportDeleted{}, ErrReportNotFound
		}
		log.Err(err).Int64("report_id", reportID).Msg("deleting report failed")
		return models.ReportDeleted{}, fmt.Errorf("deleting report failed: %w", err)
	}

	result := models.ReportDeleted{ReportID: reportID, RemovedVitals: removed}
	if err := s.blobStorage.Delete(ctx, report.StoredName); err != nil {
		result.BlobErr = err
		log.Warn().Err(err).Str("stored_name", report.StoredName).Msg("deleting report file failed")
	}

	return result, nil
}

func (s *reportService) findReport(ctx context.Context, reportID int64) (models.Report, error) {
	report, err := s.reportRepository.FindReportByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, store.ErrReportNotFound) {
			return models.Report{}, ErrReportNotFound
		}
		logger.FromContext(ctx).Err(err).Int64("report_id", reportID).Msg("fetching report failed")
		return models.Report{}, fmt.Errorf("fetching report failed: %w", err)
	}

	return report, nil
}

// blobName returns <unix millis>-<uuid v7><original extension>.
func (s *reportService) blobName(originalName string) string {
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), s.idGenerator.Generate(), filepath.Ext(filepath.Base(originalName)))
}
