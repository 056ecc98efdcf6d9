package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
)

type InteractionRepository interface {
	ToggleLike(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (active bool, total int, err error)
	ToggleSave(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (active bool, total int, err error)
	// Vote sets the user's vote on an idea to value (-1, 0 or 1) and returns the idea's vote total.
	Vote(ctx context.Context, userID, ideaID uuid.UUID, value int) (total int, err error)
	GetOwnerID(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) (uuid.UUID, error)
}
