package swap

import (
	"context"
	"errors"

	"anoa.com/skillswap/internal/entity"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SwapRequestRepository interface {
	Create(ctx context.Context, request *entity.SwapRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error)
	// FindReceived returns requests addressed to the user, newest-first.
	FindReceived(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequest, error)
	// FindSent returns requests the user sent, newest-first.
	FindSent(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SwapStatus) error
}

type swapRequestRepository struct {
	db *gorm.DB
}

func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepository{db: db}
}

func (r *swapRequestRepository) Create(ctx context.Context, request *entity.SwapRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *swapRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error) {
	var request entity.SwapRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *swapRequestRepository) FindReceived(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequest, error) {
	var requests []entity.SwapRequest
	err := r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *swapRequestRepository) FindSent(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequest, error) {
	var requests []entity.SwapRequest
	err := r.db.WithContext(ctx).
		Where("from_user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *swapRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SwapStatus) error {
	res := r.db.WithContext(ctx).Model(&entity.SwapRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
