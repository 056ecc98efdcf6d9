package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserAccountAgeWeeks(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	u := &User{CreatedAt: now.Add(-(4*7*24 + 1) * time.Hour)}
	assert.Equal(t, 4, u.AccountAgeWeeks(now))

	u.CreatedAt = now.Add(-(4*7*24 - 1) * time.Hour)
	assert.Equal(t, 3, u.AccountAgeWeeks(now))

	u.CreatedAt = now.Add(time.Hour)
	assert.Equal(t, 0, u.AccountAgeWeeks(now))

	assert.Equal(t, 0, (&User{}).AccountAgeWeeks(now))
}

func TestUserProfileCompletion(t *testing.T) {
	assert.Equal(t, 0, (&User{}).ProfileCompletion())

	bio := "Building things"
	avatar := "https://example.com/a.png"
	github := "https://github.com/ada"
	full := &User{
		DisplayName:       "Ada",
		Bio:               &bio,
		AvatarURL:         &avatar,
		GithubURL:         &github,
		Skills:            []string{"go"},
		PreferredRoles:    []string{"backend"},
		Interests:         []string{"ai"},
		AvailabilityHours: 10,
		TimeZone:          "Europe/London",
		WorkStyle:         WorkStyle{Pace: PaceFast},
	}
	assert.Equal(t, 100, full.ProfileCompletion())

	empty := ""
	full.Bio = &empty
	assert.Equal(t, 90, full.ProfileCompletion())
}
