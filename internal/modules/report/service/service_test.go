package report

import (
	"context"
	"testing"

	"anoa.com/skillswap/internal/entity"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	stored []entity.Report
}

func (f *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	f.stored = append(f.stored, *report)
	return nil
}

func (f *fakeReportRepo) FindAll(ctx context.Context, limit int) ([]entity.Report, error) {
	if limit > len(f.stored) {
		limit = len(f.stored)
	}
	return f.stored[:limit], nil
}

func TestCreateReportRejectsSelfReport(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	id := uuid.New()
	err := svc.CreateReport(context.Background(), &entity.Report{
		ReporterID:     id,
		ReportedUserID: id,
		Reason:         "spam",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCreateReportSanitizesAndMarksPending(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	err := svc.CreateReport(context.Background(), &entity.Report{
		ReporterID:     uuid.New(),
		ReportedUserID: uuid.New(),
		Reason:         "harassment",
		Description:    `rude messages <a href="javascript:x">link</a>`,
		Status:         entity.ReportStatusResolved,
	})
	require.NoError(t, err)
	require.Len(t, repo.stored, 1)
	assert.Equal(t, entity.ReportStatusPending, repo.stored[0].Status)
	assert.NotContains(t, repo.stored[0].Description, "javascript:")
	assert.Contains(t, repo.stored[0].Description, "rude messages")
}
