package report

import (
	"context"
	"fmt"

	"anoa.com/skillswap/internal/entity"
	reportRepo "anoa.com/skillswap/internal/modules/report/repository"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/microcosm-cc/bluemonday"
)

const listLimit = 50

type ReportService interface {
	CreateReport(ctx context.Context, report *entity.Report) error
	ListReports(ctx context.Context) ([]entity.Report, error)
}

type reportService struct {
	repo      reportRepo.ReportRepository
	sanitizer *bluemonday.Policy
}

func NewReportService(repo reportRepo.ReportRepository) ReportService {
	return &reportService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *reportService) CreateReport(ctx context.Context, report *entity.Report) error {
	if report.ReporterID == report.ReportedUserID {
		return fmt.Errorf("%w: cannot report yourself", apperror.ErrValidation)
	}

	report.Description = s.sanitizer.Sanitize(report.Description)
	report.Status = entity.ReportStatusPending

	if err := s.repo.Create(ctx, report); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStore, err)
	}
	return nil
}

func (s *reportService) ListReports(ctx context.Context) ([]entity.Report, error) {
	return s.repo.FindAll(ctx, listLimit)
}
