package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	entries []domain.LeaderboardEntry
	err     error
	calls   int
}

func (r *fakeStatsRepo) GetActivityCounts(context.Context, uuid.UUID) (*domain.UserStats, error) {
	return &domain.UserStats{}, nil
}

func (r *fakeStatsRepo) LeaderboardEntries(context.Context) ([]domain.LeaderboardEntry, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.LeaderboardEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

type memoryCache struct {
	pages  map[int][]domain.LeaderboardEntry
	getErr error
}

func (c *memoryCache) Get(_ context.Context, limit int) ([]domain.LeaderboardEntry, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	page, ok := c.pages[limit]
	return page, ok, nil
}

func (c *memoryCache) Set(_ context.Context, limit int, entries []domain.LeaderboardEntry) error {
	c.pages[limit] = entries
	return nil
}

func sampleEntries() (ids [3]uuid.UUID, entries []domain.LeaderboardEntry) {
	joined := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range ids {
		ids[i] = uuid.New()
	}
	entries = []domain.LeaderboardEntry{
		{UserID: ids[0], Username: "low", IdeasCount: 1, JoinedAt: joined},
		{UserID: ids[1], Username: "high", ProjectsCount: 2, JoinedAt: joined},
		{UserID: ids[2], Username: "mid", CollaborationsCount: 1, JoinedAt: joined},
	}
	return ids, entries
}

func TestLeaderboardUseCase_Top(t *testing.T) {
	ids, entries := sampleEntries()
	repo := &fakeStatsRepo{entries: entries}
	uc := NewLeaderboardUseCase(repo, nil, 50)

	top, err := uc.Top(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, ids[1], top[0].UserID)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, 100, top[0].Score)
	assert.Equal(t, ids[2], top[1].UserID)
	assert.Equal(t, 2, top[1].Rank)
}

func TestLeaderboardUseCase_TopUsesCache(t *testing.T) {
	_, entries := sampleEntries()
	repo := &fakeStatsRepo{entries: entries}
	cache := &memoryCache{pages: map[int][]domain.LeaderboardEntry{}}
	uc := NewLeaderboardUseCase(repo, cache, 50)
	ctx := context.Background()

	first, err := uc.Top(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, first, 3)
	assert.Contains(t, cache.pages, 50)

	second, err := uc.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestLeaderboardUseCase_TopCacheFailureFallsThrough(t *testing.T) {
	_, entries := sampleEntries()
	repo := &fakeStatsRepo{entries: entries}
	cache := &memoryCache{pages: map[int][]domain.LeaderboardEntry{}, getErr: errors.New("redis down")}
	uc := NewLeaderboardUseCase(repo, cache, 50)

	top, err := uc.Top(context.Background(), 500)

	require.NoError(t, err)
	assert.Len(t, top, 3)
	assert.Equal(t, 1, repo.calls)
	assert.Contains(t, cache.pages, maxLimit)
}

func TestLeaderboardUseCase_MyRank(t *testing.T) {
	ids, entries := sampleEntries()
	repo := &fakeStatsRepo{entries: entries}
	uc := NewLeaderboardUseCase(repo, nil, 50)
	ctx := context.Background()

	mine, err := uc.MyRank(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, 3, mine.Entry.Rank)
	assert.Equal(t, 3, mine.TotalUsers)

	_, err = uc.MyRank(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	repo.err = errors.New("db down")
	_, err = uc.MyRank(ctx, ids[0])
	assert.Error(t, err)
}
