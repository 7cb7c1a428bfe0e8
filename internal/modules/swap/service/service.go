package swap

import (
	"context"
	"fmt"
	"log"

	"anoa.com/skillswap/internal/entity"
	notification "anoa.com/skillswap/internal/modules/notification/service"
	profileRepo "anoa.com/skillswap/internal/modules/profile/repository"
	swapRepo "anoa.com/skillswap/internal/modules/swap/repository"
	"anoa.com/skillswap/internal/watch"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
)

// RequestsChannel is the invalidation channel for live queries over a user's
// swap requests (sent or received).
func RequestsChannel(userID uuid.UUID) string {
	return fmt.Sprintf("swap_requests:%s", userID)
}

type SwapService interface {
	CreateRequest(ctx context.Context, fromUserID, toUserID uuid.UUID, skillWanted, message string) (*entity.SwapRequest, error)
	// UpdateStatus validates the transition, writes the new status and emits
	// one advisory notification. actorID is the user who initiated the
	// change; it decides who gets notified on completion.
	UpdateStatus(ctx context.Context, requestID uuid.UUID, newStatus entity.SwapStatus, actorID uuid.UUID) (*entity.SwapRequest, error)
}

type swapService struct {
	repo          swapRepo.SwapRequestRepository
	profiles      profileRepo.ProfileRepository
	notifications notification.NotificationService
	redisClient   *redis.Client
	sanitizer     *bluemonday.Policy
}

func NewSwapService(
	repo swapRepo.SwapRequestRepository,
	profiles profileRepo.ProfileRepository,
	notifications notification.NotificationService,
	redisClient *redis.Client,
) SwapService {
	return &swapService{
		repo:          repo,
		profiles:      profiles,
		notifications: notifications,
		redisClient:   redisClient,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

func (s *swapService) CreateRequest(ctx context.Context, fromUserID, toUserID uuid.UUID, skillWanted, message string) (*entity.SwapRequest, error) {
	if fromUserID == toUserID {
		return nil, fmt.Errorf("%w: cannot send a swap request to yourself", apperror.ErrValidation)
	}

	request := &entity.SwapRequest{
		FromUserID:  fromUserID,
		ToUserID:    toUserID,
		SkillWanted: skillWanted,
		Message:     s.sanitizer.Sanitize(message),
		Status:      entity.SwapStatusPending,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStore, err)
	}

	// Advisory: the request stands even if the notification never lands.
	if sender, err := s.profiles.FindByID(ctx, fromUserID); err != nil {
		log.Printf("swap %s: sender profile lookup failed, notification suppressed: %v", request.ID, err)
	} else {
		s.notifications.Notify(ctx, toUserID,
			fmt.Sprintf("%s sent you a new skill swap request!", sender.Name),
			entity.NotificationTypeSwapRequest, request.ID)
	}

	watch.Invalidate(ctx, s.redisClient, RequestsChannel(fromUserID), RequestsChannel(toUserID))

	return request, nil
}

func (s *swapService) UpdateStatus(ctx context.Context, requestID uuid.UUID, newStatus entity.SwapStatus, actorID uuid.UUID) (*entity.SwapRequest, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperror.ErrValidation, newStatus)
	}

	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(request.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", apperror.ErrInvalidTransition, request.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, requestID, newStatus); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStore, err)
	}
	request.Status = newStatus

	if newStatus == entity.SwapStatusCompleted {
		s.recordCompletion(ctx, request)
	}

	s.notifyStatusChange(ctx, request, actorID)

	watch.Invalidate(ctx, s.redisClient,
		RequestsChannel(request.FromUserID), RequestsChannel(request.ToUserID))

	return request, nil
}

// recordCompletion bumps both parties' completed-swap counters. Advisory:
// failures are logged, the completed status stands.
func (s *swapService) recordCompletion(ctx context.Context, request *entity.SwapRequest) {
	for _, id := range []uuid.UUID{request.FromUserID, request.ToUserID} {
		if err := s.profiles.IncrementCompletedSwaps(ctx, id); err != nil {
			log.Printf("swap %s: completed-swaps counter for %s not updated: %v", request.ID, id, err)
		}
	}
}

// notifyStatusChange emits exactly one notification describing the change.
// Recipient and wording depend on the target status; a failed profile lookup
// suppresses the notification but never the status change itself.
func (s *swapService) notifyStatusChange(ctx context.Context, request *entity.SwapRequest, actorID uuid.UUID) {
	sender, err := s.profiles.FindByID(ctx, request.FromUserID)
	if err != nil {
		log.Printf("swap %s: sender profile lookup failed, notification suppressed: %v", request.ID, err)
		return
	}
	recipient, err := s.profiles.FindByID(ctx, request.ToUserID)
	if err != nil {
		log.Printf("swap %s: recipient profile lookup failed, notification suppressed: %v", request.ID, err)
		return
	}

	var message string
	var notifyUserID uuid.UUID

	switch request.Status {
	case entity.SwapStatusAccepted:
		message = fmt.Sprintf("%s accepted your skill swap request!", recipient.Name)
		notifyUserID = request.FromUserID
	case entity.SwapStatusRejected:
		message = fmt.Sprintf("%s declined your skill swap request.", recipient.Name)
		notifyUserID = request.FromUserID
	case entity.SwapStatusCancelled:
		message = fmt.Sprintf("%s cancelled their skill swap request.", sender.Name)
		notifyUserID = request.ToUserID
	case entity.SwapStatusCompleted:
		// Notify whichever party did not click complete. Without a usable
		// actor id, fall back to notifying the original sender.
		notifyUserID = request.FromUserID
		partner := recipient
		if actorID == request.FromUserID {
			notifyUserID = request.ToUserID
			partner = sender
		}
		message = fmt.Sprintf("Your skill swap with %s is completed!", partner.Name)
	default:
		return
	}

	s.notifications.Notify(ctx, notifyUserID, message,
		entity.NotificationTypeSwapRequestStatus, request.ID)
}
