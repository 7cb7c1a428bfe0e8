package profile

import (
	"context"
	"errors"

	"anoa.com/skillswap/internal/entity"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	// FindPublicActive returns the newest public, active profiles, capped at
	// limit. Skill filtering happens in the service: the store query only
	// supports equality predicates, so the caller over-fetches and filters.
	FindPublicActive(ctx context.Context, limit int) ([]*entity.Profile, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Profile, int64, error)
	Update(ctx context.Context, profile *entity.Profile) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	SetRating(ctx context.Context, id uuid.UUID, rating float64) error
	IncrementCompletedSwaps(ctx context.Context, id uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindPublicActive(ctx context.Context, limit int) ([]*entity.Profile, error) {
	var profiles []*entity.Profile
	err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Where("status = ?", entity.ProfileStatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Profile, int64, error) {
	var profiles []*entity.Profile
	var total int64

	if err := r.db.WithContext(ctx).Model(&entity.Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&profiles).Error
	return profiles, total, err
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.db.WithContext(ctx).Model(&entity.Profile{}).
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

func (r *profileRepository) SetRating(ctx context.Context, id uuid.UUID, rating float64) error {
	return r.db.WithContext(ctx).Model(&entity.Profile{}).
		Where("id = ?", id).
		Update("rating", rating).Error
}

func (r *profileRepository) IncrementCompletedSwaps(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Profile{}).
		Where("id = ?", id).
		Update("completed_swaps", gorm.Expr("completed_swaps + 1")).Error
}
