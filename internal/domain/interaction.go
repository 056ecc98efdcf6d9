package domain

import "github.com/google/uuid"

type TargetType string

const (
	TargetIdea    TargetType = "idea"
	TargetProject TargetType = "project"
	TargetComment TargetType = "comment"
)

func (t TargetType) IsValid() bool {
	switch t {
	case TargetIdea, TargetProject, TargetComment:
		return true
	default:
		return false
	}
}

// InteractionResult is returned by like and save toggles.
type InteractionResult struct {
	TargetType TargetType     `json:"target_type"`
	TargetID   uuid.UUID      `json:"target_id"`
	Active     bool           `json:"active"`
	Total      int            `json:"total"`
	NewBadges  []AwardedBadge `json:"new_badges"`
}
