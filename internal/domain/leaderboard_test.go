package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticScore(t *testing.T) {
	e := LeaderboardEntry{IdeasCount: 3, ProjectsCount: 2, CollaborationsCount: 1}
	assert.Equal(t, 3*10+2*50+1*30, e.SyntheticScore())
}

func TestRankEntries(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	newcomer := uuid.New()
	leader := uuid.New()

	entries := []LeaderboardEntry{
		{UserID: highID, IdeasCount: 5, JoinedAt: older},
		{UserID: newcomer, IdeasCount: 5, JoinedAt: newer},
		{UserID: leader, ProjectsCount: 1, JoinedAt: newer},
		{UserID: lowID, IdeasCount: 5, JoinedAt: older},
	}

	ranked := RankEntries(entries)

	require.Len(t, ranked, 4)
	assert.Equal(t, leader, ranked[0].UserID)
	assert.Equal(t, 50, ranked[0].Score)
	assert.Equal(t, lowID, ranked[1].UserID)
	assert.Equal(t, highID, ranked[2].UserID)
	assert.Equal(t, newcomer, ranked[3].UserID)

	for i, e := range ranked {
		assert.Equal(t, i+1, e.Rank)
	}

	assert.Equal(t, 2, RankOf(ranked, lowID))
	assert.Equal(t, 0, RankOf(ranked, uuid.New()))
}
