package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, username, display_name, bio, avatar_url, github_url,
	skills, preferred_roles, interests, availability_hours, time_zone,
	work_team_preference, work_pace, work_communication, work_decision_style,
	total_points, is_early_adopter, is_beta_tester, is_active,
	created_at, updated_at
`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			username, display_name, bio, avatar_url, github_url,
			skills, preferred_roles, interests, availability_hours, time_zone,
			work_team_preference, work_pace, work_communication, work_decision_style,
			is_early_adopter, is_beta_tester
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, is_active, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		user.Username, user.DisplayName, user.Bio, user.AvatarURL, user.GithubURL,
		pq.Array(user.Skills), pq.Array(user.PreferredRoles), pq.Array(user.Interests),
		user.AvailabilityHours, user.TimeZone,
		user.WorkStyle.TeamPreference, user.WorkStyle.Pace,
		user.WorkStyle.Communication, user.WorkStyle.DecisionStyle,
		user.IsEarlyAdopter, user.IsBetaTester,
	).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.DisplayName, &user.Bio, &user.AvatarURL, &user.GithubURL,
		pq.Array(&user.Skills), pq.Array(&user.PreferredRoles), pq.Array(&user.Interests),
		&user.AvailabilityHours, &user.TimeZone,
		&user.WorkStyle.TeamPreference, &user.WorkStyle.Pace,
		&user.WorkStyle.Communication, &user.WorkStyle.DecisionStyle,
		&user.TotalPoints, &user.IsEarlyAdopter, &user.IsBetaTester, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET display_name = $1, bio = $2, avatar_url = $3, github_url = $4,
		    skills = $5, preferred_roles = $6, interests = $7,
		    availability_hours = $8, time_zone = $9,
		    work_team_preference = $10, work_pace = $11,
		    work_communication = $12, work_decision_style = $13,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $14
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.DisplayName, user.Bio, user.AvatarURL, user.GithubURL,
		pq.Array(user.Skills), pq.Array(user.PreferredRoles), pq.Array(user.Interests),
		user.AvailabilityHours, user.TimeZone,
		user.WorkStyle.TeamPreference, user.WorkStyle.Pace,
		user.WorkStyle.Communication, user.WorkStyle.DecisionStyle,
		user.ID,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	return err
}
