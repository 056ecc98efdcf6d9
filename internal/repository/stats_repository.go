package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
)

type StatsRepository interface {
	// GetActivityCounts fills the stored counters of UserStats. Derived fields are left zero.
	GetActivityCounts(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	// LeaderboardEntries returns activity counts for every active user in one query.
	LeaderboardEntries(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]domain.LeaderboardEntry, bool, error)
	Set(ctx context.Context, limit int, entries []domain.LeaderboardEntry) error
}
