package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

// Broadcaster pushes stored notifications to connected clients.
type Broadcaster interface {
	Publish(ctx context.Context, notification *domain.Notification) error
}

// NopBroadcaster drops every notification.
type NopBroadcaster struct{}

func (NopBroadcaster) Publish(context.Context, *domain.Notification) error { return nil }

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notificationRepo: notificationRepo}
}

// List returns the user's notifications, newest first.
func (uc *NotificationUseCase) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.Notification, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := uc.notificationRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return uc.notificationRepo.MarkRead(ctx, notificationID, userID)
}
