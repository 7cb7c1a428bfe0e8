package report

import (
	"context"

	"anoa.com/skillswap/internal/entity"
	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindAll(ctx context.Context, limit int) ([]entity.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *reportRepository) FindAll(ctx context.Context, limit int) ([]entity.Report, error) {
	var reports []entity.Report
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}
