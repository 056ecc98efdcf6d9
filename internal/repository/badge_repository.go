package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
)

type BadgeRepository interface {
	ListActive(ctx context.Context) ([]*domain.Badge, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Badge, error)
	// Upsert inserts or updates a badge definition by key.
	Upsert(ctx context.Context, badge *domain.Badge) error
}

// BadgeAward is everything written when a user earns a badge.
type BadgeAward struct {
	UserBadge    *domain.UserBadge
	Notification *domain.Notification
}

type UserBadgeRepository interface {
	EarnedBadgeKeys(ctx context.Context, userID uuid.UUID) ([]string, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.EarnedBadge, error)
	SetDisplayed(ctx context.Context, userID, badgeID uuid.UUID, displayed bool) error
	// Award records the user badge, adds its points to the user and stores the
	// notification in one transaction. It returns false without writing anything
	// when the user already holds the badge.
	Award(ctx context.Context, award *BadgeAward) (bool, error)
}
