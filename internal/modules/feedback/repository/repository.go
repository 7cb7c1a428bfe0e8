package feedback

import (
	"context"

	"anoa.com/skillswap/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Feedback, error)
	AverageRating(ctx context.Context, userID uuid.UUID) (float64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) FindForUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Feedback, error) {
	var feedback []entity.Feedback
	err := r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&feedback).Error
	return feedback, err
}

func (r *feedbackRepository) AverageRating(ctx context.Context, userID uuid.UUID) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&entity.Feedback{}).
		Where("to_user_id = ?", userID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
