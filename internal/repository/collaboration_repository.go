package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
)

type CollaborationRepository interface {
	// Create stores the request and the receiver's notification together.
	Create(ctx context.Context, req *domain.CollaborationRequest, notification *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.CollaborationRequest, error)
	GetPendingBetween(ctx context.Context, senderID, receiverID uuid.UUID) (*domain.CollaborationRequest, error)
	ListIncoming(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.CollaborationRequest, error)
	// Respond sets the status of a pending request and stores the sender's notification together.
	Respond(ctx context.Context, req *domain.CollaborationRequest, notification *domain.Notification) error
	HasCollaborated(ctx context.Context, userA, userB uuid.UUID) (bool, error)
}
