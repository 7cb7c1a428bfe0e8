package admin

import (
	"context"

	"anoa.com/skillswap/internal/entity"
	"gorm.io/gorm"
)

type AdminActionRepository interface {
	Create(ctx context.Context, action *entity.AdminAction) error
	FindAll(ctx context.Context, limit int) ([]entity.AdminAction, error)
}

type adminActionRepository struct {
	db *gorm.DB
}

func NewAdminActionRepository(db *gorm.DB) AdminActionRepository {
	return &adminActionRepository{db: db}
}

func (r *adminActionRepository) Create(ctx context.Context, action *entity.AdminAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}

func (r *adminActionRepository) FindAll(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	var actions []entity.AdminAction
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&actions).Error
	return actions, err
}
