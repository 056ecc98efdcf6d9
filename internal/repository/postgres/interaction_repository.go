package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

type interactionRepository struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) repository.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) ToggleLike(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (bool, int, error) {
	return r.toggle(ctx, "likes", userID, targetType, targetID)
}

func (r *interactionRepository) ToggleSave(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (bool, int, error) {
	return r.toggle(ctx, "saves", userID, targetType, targetID)
}

// toggle removes the row if present and inserts it otherwise. table is one of likes or saves.
func (r *interactionRepository) toggle(ctx context.Context, table string, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (active bool, total int, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	remove := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND target_type = $2 AND target_id = $3`, table)
	result, err := tx.ExecContext(ctx, remove, userID, targetType, targetID)
	if err != nil {
		return false, 0, err
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return false, 0, err
	}

	if removed == 0 {
		add := fmt.Sprintf(`
			INSERT INTO %s (user_id, target_type, target_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, target_type, target_id) DO NOTHING
		`, table)
		if _, err = tx.ExecContext(ctx, add, userID, targetType, targetID); err != nil {
			return false, 0, err
		}
		active = true
	}

	count := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE target_type = $1 AND target_id = $2`, table)
	if err = tx.QueryRowxContext(ctx, count, targetType, targetID).Scan(&total); err != nil {
		return false, 0, err
	}

	if err = tx.Commit(); err != nil {
		return false, 0, err
	}
	return active, total, nil
}

func (r *interactionRepository) Vote(ctx context.Context, userID, ideaID uuid.UUID, value int) (int, error) {
	var err error
	if value == 0 {
		_, err = r.db.ExecContext(ctx, `DELETE FROM votes WHERE user_id = $1 AND idea_id = $2`, userID, ideaID)
	} else {
		query := `
			INSERT INTO votes (user_id, idea_id, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, idea_id) DO UPDATE SET value = EXCLUDED.value
		`
		_, err = r.db.ExecContext(ctx, query, userID, ideaID, value)
	}
	if err != nil {
		return 0, err
	}

	var total int
	err = r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(value), 0) FROM votes WHERE idea_id = $1`, ideaID).Scan(&total)
	return total, err
}

func (r *interactionRepository) GetOwnerID(ctx context.Context, targetType domain.TargetType, targetID uuid.UUID) (uuid.UUID, error) {
	var query string
	switch targetType {
	case domain.TargetIdea:
		query = `SELECT author_id FROM ideas WHERE id = $1`
	case domain.TargetProject:
		query = `SELECT owner_id FROM projects WHERE id = $1`
	case domain.TargetComment:
		query = `SELECT author_id FROM comments WHERE id = $1`
	default:
		return uuid.Nil, domain.ErrInvalidTargetType
	}

	var ownerID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, targetID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, domain.ErrTargetNotFound
		}
		return uuid.Nil, err
	}
	return ownerID, nil
}
