package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"anoa.com/skillswap/internal/entity"
	notifRepo "anoa.com/skillswap/internal/modules/notification/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Channel is the redis pub/sub channel carrying a user's notifications to
// connected websocket clients.
func Channel(userID uuid.UUID) string {
	return fmt.Sprintf("user_notifications:%s", userID)
}

type NotificationService interface {
	CreateNotification(ctx context.Context, notification *entity.Notification) error
	// Notify is the advisory variant used as a side effect of swap mutations:
	// it never returns an error, it logs and moves on.
	Notify(ctx context.Context, userID uuid.UUID, message, notifType string, relatedEntityID uuid.UUID)
	GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	repo        notifRepo.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo notifRepo.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *notificationService) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	// 1. Save to DB
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	// 2. Publish to Redis if Redis is available
	if s.redisClient != nil {
		payload, err := json.Marshal(notification)
		if err == nil {
			s.redisClient.Publish(ctx, Channel(notification.UserID), payload)
		}
	}

	return nil
}

func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, message, notifType string, relatedEntityID uuid.UUID) {
	n := &entity.Notification{
		UserID:          userID,
		Message:         message,
		Type:            notifType,
		RelatedEntityID: &relatedEntityID,
	}
	if err := s.CreateNotification(ctx, n); err != nil {
		log.Printf("notification for user %s dropped: %v", userID, err)
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
