package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisBroadcaster publishes notifications on a per-user Redis channel for the push gateway.
type RedisBroadcaster struct {
	client *redis.Client
}

func NewRedisBroadcaster(client *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

// Channel returns the channel notifications for userID are published on.
func Channel(userID uuid.UUID) string {
	return "notifications:" + userID.String()
}

func (b *RedisBroadcaster) Publish(ctx context.Context, notification *domain.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	if err := b.client.Publish(ctx, Channel(notification.UserID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
