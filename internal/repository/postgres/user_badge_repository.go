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

type userBadgeRepository struct {
	db *sqlx.DB
}

func NewUserBadgeRepository(db *sqlx.DB) repository.UserBadgeRepository {
	return &userBadgeRepository{db: db}
}

func (r *userBadgeRepository) EarnedBadgeKeys(ctx context.Context, userID uuid.UUID) ([]string, error) {
	keys := []string{}
	query := `
		SELECT b.key
		FROM user_badges ub
		JOIN badges b ON b.id = ub.badge_id
		WHERE ub.user_id = $1
	`
	err := r.db.SelectContext(ctx, &keys, query, userID)
	return keys, err
}

func (r *userBadgeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.EarnedBadge, error) {
	query := `
		SELECT ub.id, ub.user_id, ub.badge_id, ub.earned_at, ub.points_awarded, ub.is_displayed,
		       b.key, b.name, b.description, b.icon, b.category, b.rarity, b.criteria, b.points, b.is_active, b.created_at
		FROM user_badges ub
		JOIN badges b ON b.id = ub.badge_id
		WHERE ub.user_id = $1
		ORDER BY ub.earned_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	earned := []*domain.EarnedBadge{}
	for rows.Next() {
		var (
			eb       domain.EarnedBadge
			badge    domain.Badge
			criteria []byte
		)
		if err := rows.Scan(
			&eb.ID, &eb.UserID, &eb.BadgeID, &eb.EarnedAt, &eb.PointsAwarded, &eb.IsDisplayed,
			&badge.Key, &badge.Name, &badge.Description, &badge.Icon, &badge.Category,
			&badge.Rarity, &criteria, &badge.Points, &badge.IsActive, &badge.CreatedAt,
		); err != nil {
			return nil, err
		}
		badge.ID = eb.BadgeID
		badge.Criteria = domain.ParseCriteria(criteria)
		eb.Badge = &badge
		earned = append(earned, &eb)
	}
	return earned, rows.Err()
}

func (r *userBadgeRepository) SetDisplayed(ctx context.Context, userID, badgeID uuid.UUID, displayed bool) error {
	query := `UPDATE user_badges SET is_displayed = $1 WHERE user_id = $2 AND badge_id = $3`
	result, err := r.db.ExecContext(ctx, query, displayed, userID, badgeID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserBadgeNotFound
	}
	return nil
}

func (r *userBadgeRepository) Award(ctx context.Context, award *repository.BadgeAward) (awarded bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin award transaction: %w", err)
	}
	defer func() {
		if err != nil || !awarded {
			_ = tx.Rollback()
		}
	}()

	ub := award.UserBadge

	// The unique (user_id, badge_id) constraint settles concurrent awards.
	insertBadge := `
		INSERT INTO user_badges (user_id, badge_id, points_awarded, is_displayed)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, badge_id) DO NOTHING
		RETURNING id, earned_at
	`
	err = tx.QueryRowxContext(ctx, insertBadge, ub.UserID, ub.BadgeID, ub.PointsAwarded, ub.IsDisplayed).
		Scan(&ub.ID, &ub.EarnedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert user badge: %w", err)
	}

	addPoints := `UPDATE users SET total_points = total_points + $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := tx.ExecContext(ctx, addPoints, ub.PointsAwarded, ub.UserID)
	if err != nil {
		return false, fmt.Errorf("failed to add badge points: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 0 {
		err = domain.ErrUserNotFound
		return false, err
	}

	if award.Notification != nil {
		if err = insertNotification(ctx, tx, award.Notification); err != nil {
			return false, fmt.Errorf("failed to insert badge notification: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit award: %w", err)
	}
	return true, nil
}
