package compatibility

import "github.com/peve-dev/peve-backend/internal/domain"

const maxWeeklyHours = 168

// NormalizeProfile extracts the comparable profile of a user. Missing lists become
// empty slices and availability is clamped to a week; a nil user yields an empty profile.
func NormalizeProfile(user *domain.User) domain.Profile {
	if user == nil {
		return domain.Profile{
			Skills:         []string{},
			PreferredRoles: []string{},
			Interests:      []string{},
		}
	}

	hours := user.AvailabilityHours
	if hours < 0 {
		hours = 0
	}
	if hours > maxWeeklyHours {
		hours = maxWeeklyHours
	}

	return domain.Profile{
		Skills:            orEmpty(user.Skills),
		PreferredRoles:    orEmpty(user.PreferredRoles),
		Interests:         orEmpty(user.Interests),
		AvailabilityHours: hours,
		TimeZone:          user.TimeZone,
		WorkStyle:         user.WorkStyle,
	}
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
