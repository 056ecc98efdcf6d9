package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type BadgeRarity string

const (
	BadgeRarityCommon    BadgeRarity = "common"
	BadgeRarityRare      BadgeRarity = "rare"
	BadgeRarityEpic      BadgeRarity = "epic"
	BadgeRarityLegendary BadgeRarity = "legendary"
)

type CriteriaType string

const (
	CriteriaTypeCount  CriteriaType = "count"
	CriteriaTypeRank   CriteriaType = "rank"
	CriteriaTypeCustom CriteriaType = "custom"
)

// Criteria is one of CountCriteria, RankCriteria, CustomCriteria or UnknownCriteria.
type Criteria interface {
	Type() CriteriaType
	isCriteria()
}

// CountCriteria passes when the named stat reaches Threshold.
type CountCriteria struct {
	Target    StatKey
	Threshold int
}

// RankCriteria passes when the user's leaderboard rank is Threshold or better.
type RankCriteria struct {
	Threshold int
}

// CustomCriteria passes when the named predicate holds.
type CustomCriteria struct {
	Logic string
}

// UnknownCriteria keeps criteria that could not be decoded. It never passes.
type UnknownCriteria struct {
	RawType CriteriaType
}

func (CountCriteria) Type() CriteriaType     { return CriteriaTypeCount }
func (RankCriteria) Type() CriteriaType      { return CriteriaTypeRank }
func (CustomCriteria) Type() CriteriaType    { return CriteriaTypeCustom }
func (c UnknownCriteria) Type() CriteriaType { return c.RawType }

func (CountCriteria) isCriteria()   {}
func (RankCriteria) isCriteria()    {}
func (CustomCriteria) isCriteria()  {}
func (UnknownCriteria) isCriteria() {}

// CriteriaSpec is the stored and wire form of a badge criteria.
type CriteriaSpec struct {
	Type        CriteriaType `json:"type"`
	Target      string       `json:"target,omitempty"`
	Threshold   int          `json:"threshold,omitempty"`
	CustomLogic string       `json:"customLogic,omitempty"`
}

// Criteria converts the spec into its typed variant.
// A count spec without a target decodes as UnknownCriteria.
func (s CriteriaSpec) Criteria() Criteria {
	switch s.Type {
	case CriteriaTypeCount:
		if s.Target == "" {
			return UnknownCriteria{RawType: s.Type}
		}
		return CountCriteria{Target: StatKey(s.Target), Threshold: s.Threshold}
	case CriteriaTypeRank:
		return RankCriteria{Threshold: s.Threshold}
	case CriteriaTypeCustom:
		return CustomCriteria{Logic: s.CustomLogic}
	default:
		return UnknownCriteria{RawType: s.Type}
	}
}

// SpecOf converts typed criteria back into a CriteriaSpec.
func SpecOf(c Criteria) CriteriaSpec {
	switch v := c.(type) {
	case CountCriteria:
		return CriteriaSpec{Type: CriteriaTypeCount, Target: string(v.Target), Threshold: v.Threshold}
	case RankCriteria:
		return CriteriaSpec{Type: CriteriaTypeRank, Threshold: v.Threshold}
	case CustomCriteria:
		return CriteriaSpec{Type: CriteriaTypeCustom, CustomLogic: v.Logic}
	case UnknownCriteria:
		return CriteriaSpec{Type: v.RawType}
	default:
		return CriteriaSpec{}
	}
}

// ParseCriteria decodes stored JSON criteria. Malformed input yields UnknownCriteria.
func ParseCriteria(raw []byte) Criteria {
	var spec CriteriaSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return UnknownCriteria{}
	}
	return spec.Criteria()
}

type Badge struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Key         string      `json:"key" db:"key"`
	Name        string      `json:"name" db:"name"`
	Description string      `json:"description" db:"description"`
	Icon        string      `json:"icon" db:"icon"`
	Category    string      `json:"category" db:"category"`
	Rarity      BadgeRarity `json:"rarity" db:"rarity"`
	Criteria    Criteria    `json:"-" db:"-"`
	Points      int         `json:"points" db:"points"`
	IsActive    bool        `json:"is_active" db:"is_active"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

func (b Badge) MarshalJSON() ([]byte, error) {
	type badgeAlias Badge
	return json.Marshal(struct {
		badgeAlias
		Criteria CriteriaSpec `json:"criteria"`
	}{
		badgeAlias: badgeAlias(b),
		Criteria:   SpecOf(b.Criteria),
	})
}

type UserBadge struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	BadgeID       uuid.UUID `json:"badge_id" db:"badge_id"`
	EarnedAt      time.Time `json:"earned_at" db:"earned_at"`
	PointsAwarded int       `json:"points_awarded" db:"points_awarded"`
	IsDisplayed   bool      `json:"is_displayed" db:"is_displayed"`
}

// AwardedBadge is a badge together with the award record created for it.
type AwardedBadge struct {
	Badge     *Badge     `json:"badge"`
	UserBadge *UserBadge `json:"user_badge"`
}

// EarnedBadge is a user badge joined with its definition.
type EarnedBadge struct {
	UserBadge
	Badge *Badge `json:"badge"`
}
