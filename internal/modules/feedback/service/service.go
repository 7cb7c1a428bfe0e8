package feedback

import (
	"context"
	"fmt"
	"log"

	"anoa.com/skillswap/internal/entity"
	feedbackRepo "anoa.com/skillswap/internal/modules/feedback/repository"
	profileRepo "anoa.com/skillswap/internal/modules/profile/repository"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const listLimit = 10

type FeedbackService interface {
	CreateFeedback(ctx context.Context, feedback *entity.Feedback) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Feedback, error)
}

type feedbackService struct {
	repo      feedbackRepo.FeedbackRepository
	profiles  profileRepo.ProfileRepository
	sanitizer *bluemonday.Policy
}

func NewFeedbackService(repo feedbackRepo.FeedbackRepository, profiles profileRepo.ProfileRepository) FeedbackService {
	return &feedbackService{
		repo:      repo,
		profiles:  profiles,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, feedback *entity.Feedback) error {
	if feedback.FromUserID == feedback.ToUserID {
		return fmt.Errorf("%w: cannot leave feedback for yourself", apperror.ErrValidation)
	}

	feedback.Comment = s.sanitizer.Sanitize(feedback.Comment)

	if err := s.repo.Create(ctx, feedback); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrStore, err)
	}

	// Stored rating aggregate; recomputing it is advisory.
	avg, err := s.repo.AverageRating(ctx, feedback.ToUserID)
	if err != nil {
		log.Printf("feedback %s: rating average not recomputed: %v", feedback.ID, err)
		return nil
	}
	if err := s.profiles.SetRating(ctx, feedback.ToUserID, avg); err != nil {
		log.Printf("feedback %s: rating for %s not updated: %v", feedback.ID, feedback.ToUserID, err)
	}

	return nil
}

func (s *feedbackService) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Feedback, error) {
	return s.repo.FindForUser(ctx, userID, listLimit)
}
