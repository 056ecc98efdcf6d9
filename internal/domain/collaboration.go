package domain

import (
	"time"

	"github.com/google/uuid"
)

type CollaborationStatus string

const (
	CollaborationPending  CollaborationStatus = "pending"
	CollaborationAccepted CollaborationStatus = "accepted"
	CollaborationDeclined CollaborationStatus = "declined"
)

type CollaborationRequest struct {
	ID                 uuid.UUID           `json:"id" db:"id"`
	SenderID           uuid.UUID           `json:"sender_id" db:"sender_id"`
	ReceiverID         uuid.UUID           `json:"receiver_id" db:"receiver_id"`
	ProjectID          *uuid.UUID          `json:"project_id,omitempty" db:"project_id"`
	Message            *string             `json:"message,omitempty" db:"message"`
	CompatibilityScore int                 `json:"compatibility_score" db:"compatibility_score"`
	Status             CollaborationStatus `json:"status" db:"status"`
	CreatedAt          time.Time           `json:"created_at" db:"created_at"`
	RespondedAt        *time.Time          `json:"responded_at,omitempty" db:"responded_at"`
}

func (r *CollaborationRequest) HasUser(userID uuid.UUID) bool {
	return r.SenderID == userID || r.ReceiverID == userID
}

func (r *CollaborationRequest) GetOtherUserID(userID uuid.UUID) (uuid.UUID, bool) {
	if r.SenderID == userID {
		return r.ReceiverID, true
	}
	if r.ReceiverID == userID {
		return r.SenderID, true
	}
	return uuid.Nil, false
}
