package domain

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	IdeaPoints          = 10
	ProjectPoints       = 50
	CollaborationPoints = 30
)

type LeaderboardEntry struct {
	Rank                int       `json:"rank" db:"-"`
	UserID              uuid.UUID `json:"user_id" db:"user_id"`
	Username            string    `json:"username" db:"username"`
	DisplayName         string    `json:"display_name" db:"display_name"`
	AvatarURL           *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	IdeasCount          int       `json:"ideas_count" db:"ideas_count"`
	ProjectsCount       int       `json:"projects_count" db:"projects_count"`
	CollaborationsCount int       `json:"collaborations_count" db:"collaborations_count"`
	Score               int       `json:"score" db:"-"`
	JoinedAt            time.Time `json:"joined_at" db:"created_at"`
}

// SyntheticScore weighs activity into a single leaderboard score.
func (e LeaderboardEntry) SyntheticScore() int {
	return e.IdeasCount*IdeaPoints + e.ProjectsCount*ProjectPoints + e.CollaborationsCount*CollaborationPoints
}

// RankEntries scores and sorts entries in place, best first, and assigns 1-based ranks.
// Ties go to the older account, then to the lower id.
func RankEntries(entries []LeaderboardEntry) []LeaderboardEntry {
	for i := range entries {
		entries[i].Score = entries[i].SyntheticScore()
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.JoinedAt.Equal(b.JoinedAt) {
			return a.JoinedAt.Before(b.JoinedAt)
		}
		return bytes.Compare(a.UserID[:], b.UserID[:]) < 0
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// RankOf returns the rank of userID in ranked entries, or 0 if absent.
func RankOf(entries []LeaderboardEntry, userID uuid.UUID) int {
	for _, e := range entries {
		if e.UserID == userID {
			return e.Rank
		}
	}
	return 0
}
