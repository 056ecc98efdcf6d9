package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

type leaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeaderboardCache stores ranked leaderboard pages in Redis for ttl.
func NewLeaderboardCache(client *redis.Client, ttl time.Duration) repository.LeaderboardCache {
	return &leaderboardCache{client: client, ttl: ttl}
}

func leaderboardKey(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}

func (c *leaderboardCache) Get(ctx context.Context, limit int) ([]domain.LeaderboardEntry, bool, error) {
	raw, err := c.client.Get(ctx, leaderboardKey(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entries []domain.LeaderboardEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached leaderboard: %w", err)
	}
	return entries, true, nil
}

func (c *leaderboardCache) Set(ctx context.Context, limit int, entries []domain.LeaderboardEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, leaderboardKey(limit), raw, c.ttl).Err()
}
