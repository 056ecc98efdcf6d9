package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

type badgeRepository struct {
	db *sqlx.DB
}

func NewBadgeRepository(db *sqlx.DB) repository.BadgeRepository {
	return &badgeRepository{db: db}
}

// badgeRow carries the raw jsonb criteria next to the badge columns.
type badgeRow struct {
	domain.Badge
	CriteriaRaw []byte `db:"criteria"`
}

func (row *badgeRow) toDomain() *domain.Badge {
	badge := row.Badge
	badge.Criteria = domain.ParseCriteria(row.CriteriaRaw)
	return &badge
}

const badgeColumns = `id, key, name, description, icon, category, rarity, criteria, points, is_active, created_at`

func (r *badgeRepository) ListActive(ctx context.Context) ([]*domain.Badge, error) {
	var rows []badgeRow
	query := `SELECT ` + badgeColumns + ` FROM badges WHERE is_active = true ORDER BY category, points`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	badges := make([]*domain.Badge, 0, len(rows))
	for i := range rows {
		badges = append(badges, rows[i].toDomain())
	}
	return badges, nil
}

func (r *badgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Badge, error) {
	var row badgeRow
	query := `SELECT ` + badgeColumns + ` FROM badges WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBadgeNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *badgeRepository) Upsert(ctx context.Context, badge *domain.Badge) error {
	criteria, err := json.Marshal(domain.SpecOf(badge.Criteria))
	if err != nil {
		return fmt.Errorf("failed to encode criteria: %w", err)
	}

	query := `
		INSERT INTO badges (key, name, description, icon, category, rarity, criteria, points, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (key) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description, icon = EXCLUDED.icon,
		    category = EXCLUDED.category, rarity = EXCLUDED.rarity, criteria = EXCLUDED.criteria,
		    points = EXCLUDED.points, is_active = EXCLUDED.is_active
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		badge.Key, badge.Name, badge.Description, badge.Icon, badge.Category,
		badge.Rarity, criteria, badge.Points, badge.IsActive,
	).Scan(&badge.ID, &badge.CreatedAt)
}
