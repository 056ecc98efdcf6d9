package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetActivityCounts(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	var stats domain.UserStats
	query := `
		WITH owned AS (
			SELECT 'idea' AS target_type, id FROM ideas WHERE author_id = $1
			UNION ALL
			SELECT 'project', id FROM projects WHERE owner_id = $1
			UNION ALL
			SELECT 'comment', id FROM comments WHERE author_id = $1
		)
		SELECT
			(SELECT COUNT(*) FROM projects WHERE owner_id = $1) AS projects_count,
			(SELECT COUNT(*) FROM ideas WHERE author_id = $1) AS ideas_count,
			(SELECT COUNT(*) FROM comments WHERE author_id = $1) AS comments_count,
			(SELECT COUNT(*) FROM likes l JOIN owned o ON o.target_type = l.target_type AND o.id = l.target_id) AS likes_received,
			(SELECT COUNT(*) FROM saves s JOIN owned o ON o.target_type = s.target_type AND o.id = s.target_id) AS saves_received,
			(SELECT COUNT(*) FROM votes WHERE user_id = $1) AS votes_count,
			(SELECT COUNT(*) FROM collaboration_requests
			  WHERE status = 'accepted' AND (sender_id = $1 OR receiver_id = $1)) AS collaborations_count
	`
	if err := r.db.GetContext(ctx, &stats, query, userID); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) LeaderboardEntries(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	entries := []domain.LeaderboardEntry{}
	query := `
		WITH accepted AS (
			SELECT sender_id AS user_id FROM collaboration_requests WHERE status = 'accepted'
			UNION ALL
			SELECT receiver_id FROM collaboration_requests WHERE status = 'accepted'
		)
		SELECT u.id AS user_id, u.username, u.display_name, u.avatar_url, u.created_at,
		       COALESCE(i.cnt, 0) AS ideas_count,
		       COALESCE(p.cnt, 0) AS projects_count,
		       COALESCE(c.cnt, 0) AS collaborations_count
		FROM users u
		LEFT JOIN (SELECT author_id, COUNT(*) AS cnt FROM ideas GROUP BY author_id) i ON i.author_id = u.id
		LEFT JOIN (SELECT owner_id, COUNT(*) AS cnt FROM projects GROUP BY owner_id) p ON p.owner_id = u.id
		LEFT JOIN (SELECT user_id, COUNT(*) AS cnt FROM accepted GROUP BY user_id) c ON c.user_id = u.id
		WHERE u.is_active = true
	`
	err := r.db.SelectContext(ctx, &entries, query)
	return entries, err
}
