package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `json:"id" db:"id"`
	Username          string    `json:"username" db:"username"`
	DisplayName       string    `json:"display_name" db:"display_name"`
	Bio               *string   `json:"bio" db:"bio"`
	AvatarURL         *string   `json:"avatar_url" db:"avatar_url"`
	GithubURL         *string   `json:"github_url" db:"github_url"`
	Skills            []string  `json:"skills" db:"skills"`
	PreferredRoles    []string  `json:"preferred_roles" db:"preferred_roles"`
	Interests         []string  `json:"interests" db:"interests"`
	AvailabilityHours float64   `json:"availability_hours" db:"availability_hours"`
	TimeZone          string    `json:"time_zone" db:"time_zone"`
	WorkStyle         WorkStyle `json:"work_style"`
	TotalPoints       int       `json:"total_points" db:"total_points"`
	IsEarlyAdopter    bool      `json:"is_early_adopter" db:"is_early_adopter"`
	IsBetaTester      bool      `json:"is_beta_tester" db:"is_beta_tester"`
	IsActive          bool      `json:"is_active" db:"is_active"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// AccountAgeWeeks returns the number of full weeks since the account was created.
func (u *User) AccountAgeWeeks(now time.Time) int {
	if u.CreatedAt.IsZero() || now.Before(u.CreatedAt) {
		return 0
	}
	return int(now.Sub(u.CreatedAt).Hours() / (24 * 7))
}

// ProfileCompletion returns the share of filled profile fields as a percentage (0-100).
func (u *User) ProfileCompletion() int {
	filled := []bool{
		u.DisplayName != "",
		u.Bio != nil && *u.Bio != "",
		u.AvatarURL != nil && *u.AvatarURL != "",
		u.GithubURL != nil && *u.GithubURL != "",
		len(u.Skills) > 0,
		len(u.PreferredRoles) > 0,
		len(u.Interests) > 0,
		u.AvailabilityHours > 0,
		u.TimeZone != "",
		u.WorkStyle.IsSet(),
	}

	done := 0
	for _, ok := range filled {
		if ok {
			done++
		}
	}
	return done * 100 / len(filled)
}
