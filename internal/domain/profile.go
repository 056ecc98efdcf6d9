package domain

type TeamPreference string

const (
	TeamPreferenceSolo      TeamPreference = "solo"
	TeamPreferenceSmallTeam TeamPreference = "small_team"
	TeamPreferenceLargeTeam TeamPreference = "large_team"
)

type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceSteady  Pace = "steady"
	PaceFast    Pace = "fast"
)

type Communication string

const (
	CommunicationAsync Communication = "async"
	CommunicationSync  Communication = "sync"
	CommunicationMixed Communication = "mixed"
)

type DecisionStyle string

const (
	DecisionStyleDataDriven    DecisionStyle = "data_driven"
	DecisionStyleIntuitive     DecisionStyle = "intuitive"
	DecisionStyleCollaborative DecisionStyle = "collaborative"
)

// WorkStyle describes how a user likes to work. Empty fields are unset.
type WorkStyle struct {
	TeamPreference TeamPreference `json:"team_preference,omitempty" db:"work_team_preference"`
	Pace           Pace           `json:"pace,omitempty" db:"work_pace"`
	Communication  Communication  `json:"communication,omitempty" db:"work_communication"`
	DecisionStyle  DecisionStyle  `json:"decision_style,omitempty" db:"work_decision_style"`
}

// IsSet reports whether at least one dimension is filled in.
func (w WorkStyle) IsSet() bool {
	return w.TeamPreference != "" || w.Pace != "" || w.Communication != "" || w.DecisionStyle != ""
}

// Profile is the comparable subset of a user used for compatibility scoring.
type Profile struct {
	Skills            []string  `json:"skills"`
	PreferredRoles    []string  `json:"preferred_roles"`
	Interests         []string  `json:"interests"`
	AvailabilityHours float64   `json:"availability_hours"`
	TimeZone          string    `json:"time_zone"`
	WorkStyle         WorkStyle `json:"work_style"`
}
