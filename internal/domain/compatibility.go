package domain

type CompatibilityBreakdown struct {
	SkillOverlap           float64 `json:"skill_overlap"`
	RoleOverlap            float64 `json:"role_overlap"`
	InterestOverlap        float64 `json:"interest_overlap"`
	TimeOverlap            float64 `json:"time_overlap"`
	WorkStyleCompatibility float64 `json:"work_style_compatibility"`
	PastCollabBonus        float64 `json:"past_collab_bonus"`
}

// CompatibilityResult is computed on demand and never stored on its own.
type CompatibilityResult struct {
	Score       int                    `json:"score"`
	Label       string                 `json:"label"`
	Recommended bool                   `json:"recommended"`
	Breakdown   CompatibilityBreakdown `json:"breakdown"`
	Reasons     []string               `json:"reasons"`
	Summary     string                 `json:"summary,omitempty"`
}

// CompatibilityContext carries signals about the pair that profiles alone do not hold.
type CompatibilityContext struct {
	PastCollab          bool `json:"past_collab"`
	SimilarAvailability bool `json:"similar_availability"`
}
