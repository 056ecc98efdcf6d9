package leaderboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/repository"
)

const maxLimit = 100

type LeaderboardUseCase struct {
	statsRepo    repository.StatsRepository
	cache        repository.LeaderboardCache
	defaultLimit int
}

// NewLeaderboardUseCase creates the use case. cache may be nil.
func NewLeaderboardUseCase(statsRepo repository.StatsRepository, cache repository.LeaderboardCache, defaultLimit int) *LeaderboardUseCase {
	return &LeaderboardUseCase{
		statsRepo:    statsRepo,
		cache:        cache,
		defaultLimit: defaultLimit,
	}
}

// MyRankResponse is the caller's own leaderboard position
type MyRankResponse struct {
	Entry      domain.LeaderboardEntry `json:"entry"`
	TotalUsers int                     `json:"total_users"`
}

// Top returns the best ranked users. Cache errors fall through to the database.
func (uc *LeaderboardUseCase) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if uc.cache != nil {
		entries, ok, err := uc.cache.Get(ctx, limit)
		if err != nil {
			logger.Warning("leaderboard cache read failed: %v", err)
		} else if ok {
			return entries, nil
		}
	}

	ranked, err := uc.ranked(ctx)
	if err != nil {
		return nil, err
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, limit, ranked); err != nil {
			logger.Warning("leaderboard cache write failed: %v", err)
		}
	}
	return ranked, nil
}

// MyRank returns the user's position, always computed fresh.
func (uc *LeaderboardUseCase) MyRank(ctx context.Context, userID uuid.UUID) (*MyRankResponse, error) {
	ranked, err := uc.ranked(ctx)
	if err != nil {
		return nil, err
	}

	for _, entry := range ranked {
		if entry.UserID == userID {
			return &MyRankResponse{Entry: entry, TotalUsers: len(ranked)}, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (uc *LeaderboardUseCase) ranked(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries, err := uc.statsRepo.LeaderboardEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return domain.RankEntries(entries), nil
}
