package compatibility

import (
	"fmt"
	"math"
	"sort"

	"github.com/peve-dev/peve-backend/internal/domain"
)

// Component weights. Components without data on either side drop out and the rest are renormalized.
const (
	skillWeight     = 0.30
	roleWeight      = 0.20
	interestWeight  = 0.20
	timeWeight      = 0.15
	workStyleWeight = 0.15

	pastCollabBonus = 10

	// RecommendedScore is the lowest score at which sending a request is suggested.
	RecommendedScore = 60

	workStyleDimensions = 4
)

const (
	LabelExcellent = "Excellent Match"
	LabelGood      = "Good Match"
	LabelModerate  = "Moderate Match"
	LabelLow       = "Low Match"
)

// Label maps a score to its category.
func Label(score int) string {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelModerate
	default:
		return LabelLow
	}
}

// ComputeCompatibility scores how well two profiles fit for collaboration.
// The result is symmetric in a and b.
func ComputeCompatibility(a, b domain.Profile, cc domain.CompatibilityContext) domain.CompatibilityResult {
	var (
		breakdown   domain.CompatibilityBreakdown
		weighted    float64
		totalWeight float64
	)
	reasons := []string{}

	include := func(value, weight float64) {
		weighted += value * weight
		totalWeight += weight
	}

	if shared, ratio, ok := overlap(a.Skills, b.Skills); ok {
		breakdown.SkillOverlap = ratio
		include(ratio, skillWeight)
		for _, s := range shared {
			reasons = append(reasons, "Shared skill: "+s)
		}
	}

	if shared, ratio, ok := overlap(a.PreferredRoles, b.PreferredRoles); ok {
		breakdown.RoleOverlap = ratio
		include(ratio, roleWeight)
		for _, r := range shared {
			reasons = append(reasons, "Shared role: "+r)
		}
	}

	if shared, ratio, ok := overlap(a.Interests, b.Interests); ok {
		breakdown.InterestOverlap = ratio
		include(ratio, interestWeight)
		for _, i := range shared {
			reasons = append(reasons, "Shared interest: "+i)
		}
	}

	if ratio, ok := timeOverlap(a, b, cc); ok {
		breakdown.TimeOverlap = ratio
		include(ratio, timeWeight)
		if ratio >= 0.7 {
			reasons = append(reasons, "Similar weekly availability")
		}
	}

	if ratio, matching, ok := workStyleMatch(a.WorkStyle, b.WorkStyle); ok {
		breakdown.WorkStyleCompatibility = ratio
		include(ratio, workStyleWeight)
		if matching >= workStyleDimensions/2 {
			reasons = append(reasons, fmt.Sprintf("Compatible work style (%d/%d)", matching, workStyleDimensions))
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = weighted / totalWeight * 100
	}

	if cc.PastCollab {
		breakdown.PastCollabBonus = pastCollabBonus / 100.0
		score += pastCollabBonus
		reasons = append(reasons, "You have collaborated before")
	}

	final := int(math.Round(score))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	return domain.CompatibilityResult{
		Score:       final,
		Label:       Label(final),
		Recommended: final >= RecommendedScore,
		Breakdown:   breakdown,
		Reasons:     reasons,
	}
}

// overlap returns the sorted shared values and the Jaccard ratio of two lists.
// ok is false when both lists are empty.
func overlap(a, b []string) (shared []string, ratio float64, ok bool) {
	setA := toSet(a)
	setB := toSet(b)

	for v := range setA {
		if _, found := setB[v]; found {
			shared = append(shared, v)
		}
	}
	sort.Strings(shared)

	union := len(setA) + len(setB) - len(shared)
	if union == 0 {
		return nil, 0, false
	}
	return shared, float64(len(shared)) / float64(union), true
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		set[v] = struct{}{}
	}
	return set
}

// timeOverlap compares weekly hours; different time zones halve the ratio.
func timeOverlap(a, b domain.Profile, cc domain.CompatibilityContext) (float64, bool) {
	if cc.SimilarAvailability {
		return 1, true
	}
	if a.AvailabilityHours <= 0 || b.AvailabilityHours <= 0 {
		return 0, false
	}

	ratio := min(a.AvailabilityHours, b.AvailabilityHours) / max(a.AvailabilityHours, b.AvailabilityHours)
	if a.TimeZone != "" && b.TimeZone != "" && a.TimeZone != b.TimeZone {
		ratio *= 0.5
	}
	return ratio, true
}

// workStyleMatch counts the dimensions both users filled in with the same value.
func workStyleMatch(a, b domain.WorkStyle) (ratio float64, matching int, ok bool) {
	if !a.IsSet() || !b.IsSet() {
		return 0, 0, false
	}

	pairs := [workStyleDimensions][2]string{
		{string(a.TeamPreference), string(b.TeamPreference)},
		{string(a.Pace), string(b.Pace)},
		{string(a.Communication), string(b.Communication)},
		{string(a.DecisionStyle), string(b.DecisionStyle)},
	}
	for _, p := range pairs {
		if p[0] != "" && p[0] == p[1] {
			matching++
		}
	}
	return float64(matching) / workStyleDimensions, matching, true
}
