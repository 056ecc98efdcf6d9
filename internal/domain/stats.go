package domain

// StatKey names a UserStats counter that count criteria can target.
type StatKey string

const (
	StatProjects          StatKey = "projects"
	StatIdeas             StatKey = "ideas"
	StatComments          StatKey = "comments"
	StatLikesReceived     StatKey = "likes_received"
	StatSavesReceived     StatKey = "saves_received"
	StatVotes             StatKey = "votes"
	StatCollaborations    StatKey = "collaborations"
	StatAccountAgeWeeks   StatKey = "account_age_weeks"
	StatProfileCompletion StatKey = "profile_completion"
	StatSkills            StatKey = "skills"
)

// statAliases maps the field-style names used by older badge definitions.
var statAliases = map[StatKey]StatKey{
	"projectsCount":       StatProjects,
	"ideasCount":          StatIdeas,
	"commentsCount":       StatComments,
	"likesReceived":       StatLikesReceived,
	"savesReceived":       StatSavesReceived,
	"votesCount":          StatVotes,
	"collaborationsCount": StatCollaborations,
	"accountAgeWeeks":     StatAccountAgeWeeks,
	"profileCompletion":   StatProfileCompletion,
	"skillsCount":         StatSkills,
}

// UserStats is a snapshot of a user's activity, rebuilt on every evaluation.
type UserStats struct {
	ProjectsCount       int  `json:"projects_count" db:"projects_count"`
	IdeasCount          int  `json:"ideas_count" db:"ideas_count"`
	CommentsCount       int  `json:"comments_count" db:"comments_count"`
	LikesReceived       int  `json:"likes_received" db:"likes_received"`
	SavesReceived       int  `json:"saves_received" db:"saves_received"`
	VotesCount          int  `json:"votes_count" db:"votes_count"`
	CollaborationsCount int  `json:"collaborations_count" db:"collaborations_count"`
	AccountAgeWeeks     int  `json:"account_age_weeks" db:"-"`
	ProfileCompletion   int  `json:"profile_completion" db:"-"`
	SkillsCount         int  `json:"skills_count" db:"-"`
	IsEarlyAdopter      bool `json:"is_early_adopter" db:"-"`
	IsBetaTester        bool `json:"is_beta_tester" db:"-"`
}

// Value returns the counter named by key. ok is false for unknown keys.
func (s UserStats) Value(key StatKey) (value int, ok bool) {
	if alias, found := statAliases[key]; found {
		key = alias
	}

	switch key {
	case StatProjects:
		return s.ProjectsCount, true
	case StatIdeas:
		return s.IdeasCount, true
	case StatComments:
		return s.CommentsCount, true
	case StatLikesReceived:
		return s.LikesReceived, true
	case StatSavesReceived:
		return s.SavesReceived, true
	case StatVotes:
		return s.VotesCount, true
	case StatCollaborations:
		return s.CollaborationsCount, true
	case StatAccountAgeWeeks:
		return s.AccountAgeWeeks, true
	case StatProfileCompletion:
		return s.ProfileCompletion, true
	case StatSkills:
		return s.SkillsCount, true
	default:
		return 0, false
	}
}
