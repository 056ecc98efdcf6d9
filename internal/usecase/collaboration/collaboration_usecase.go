package collaboration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
	"github.com/peve-dev/peve-backend/internal/usecase/notification"
)

// Scorer computes the compatibility of two loaded users.
type Scorer interface {
	Score(ctx context.Context, a, b *domain.User) domain.CompatibilityResult
}

// BadgeChecker runs a badge check after an action. It never fails.
type BadgeChecker interface {
	CheckAndAwardBadges(ctx context.Context, userID uuid.UUID, action string, targetID *uuid.UUID) []domain.AwardedBadge
}

type CollaborationUseCase struct {
	collabRepo  repository.CollaborationRepository
	userRepo    repository.UserRepository
	scorer      Scorer
	badges      BadgeChecker
	broadcaster notification.Broadcaster
}

func NewCollaborationUseCase(
	collabRepo repository.CollaborationRepository,
	userRepo repository.UserRepository,
	scorer Scorer,
	badges BadgeChecker,
	broadcaster notification.Broadcaster,
) *CollaborationUseCase {
	if broadcaster == nil {
		broadcaster = notification.NopBroadcaster{}
	}
	return &CollaborationUseCase{
		collabRepo:  collabRepo,
		userRepo:    userRepo,
		scorer:      scorer,
		badges:      badges,
		broadcaster: broadcaster,
	}
}

// CreateRequestInput represents a new collaboration request
type CreateRequestInput struct {
	ReceiverID uuid.UUID  `json:"receiver_id" binding:"required"`
	ProjectID  *uuid.UUID `json:"project_id"`
	Message    *string    `json:"message" binding:"omitempty,max=1000"`
}

// RespondInput represents the receiver's answer
type RespondInput struct {
	Status domain.CollaborationStatus `json:"status" binding:"required,collab_status"`
}

// RespondResult represents the answered request and any badges the receiver earned
type RespondResult struct {
	Request   *domain.CollaborationRequest `json:"request"`
	NewBadges []domain.AwardedBadge        `json:"new_badges"`
}

type requestData struct {
	RequestID          uuid.UUID                  `json:"request_id"`
	FromUserID         uuid.UUID                  `json:"from_user_id"`
	CompatibilityScore int                        `json:"compatibility_score"`
	Status             domain.CollaborationStatus `json:"status"`
}

// CreateRequest stores a request from sender to the receiver and notifies the receiver.
func (uc *CollaborationUseCase) CreateRequest(ctx context.Context, senderID uuid.UUID, input *CreateRequestInput) (*domain.CollaborationRequest, error) {
	if senderID == input.ReceiverID {
		return nil, domain.ErrCannotCollaborateWithSelf
	}

	sender, err := uc.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := uc.userRepo.GetByID(ctx, input.ReceiverID)
	if err != nil {
		return nil, err
	}

	_, err = uc.collabRepo.GetPendingBetween(ctx, senderID, input.ReceiverID)
	if err == nil {
		return nil, domain.ErrCollaborationRequestExists
	}
	if !errors.Is(err, domain.ErrCollaborationRequestNotFound) {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}

	result := uc.scorer.Score(ctx, sender, receiver)

	req := &domain.CollaborationRequest{
		ID:                 uuid.New(),
		SenderID:           senderID,
		ReceiverID:         input.ReceiverID,
		ProjectID:          input.ProjectID,
		Message:            input.Message,
		CompatibilityScore: result.Score,
		Status:             domain.CollaborationPending,
	}

	data, _ := json.Marshal(requestData{
		RequestID:          req.ID,
		FromUserID:         senderID,
		CompatibilityScore: result.Score,
		Status:             domain.CollaborationPending,
	})
	n := &domain.Notification{
		UserID:  input.ReceiverID,
		Type:    domain.NotificationCollaborationRequest,
		Title:   "New collaboration request",
		Message: fmt.Sprintf("%s wants to collaborate with you (%d%% match)", displayName(sender), result.Score),
		Data:    data,
	}

	if err := uc.collabRepo.Create(ctx, req, n); err != nil {
		if errors.Is(err, domain.ErrCollaborationRequestExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create collaboration request: %w", err)
	}

	uc.publish(ctx, n)
	return req, nil
}

// Respond accepts or declines a pending request. Only the receiver may answer.
// Accepting runs a badge check for both users.
func (uc *CollaborationUseCase) Respond(ctx context.Context, userID, requestID uuid.UUID, input *RespondInput) (*RespondResult, error) {
	if input.Status != domain.CollaborationAccepted && input.Status != domain.CollaborationDeclined {
		return nil, domain.ErrInvalidInput
	}

	req, err := uc.collabRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != userID {
		return nil, domain.ErrNotRequestReceiver
	}
	if req.Status != domain.CollaborationPending {
		return nil, domain.ErrRequestAlreadyAnswered
	}

	receiver, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	req.Status = input.Status
	data, _ := json.Marshal(requestData{
		RequestID:          req.ID,
		FromUserID:         userID,
		CompatibilityScore: req.CompatibilityScore,
		Status:             req.Status,
	})
	n := &domain.Notification{
		UserID:  req.SenderID,
		Type:    domain.NotificationCollaborationAnswer,
		Title:   "Collaboration request " + string(req.Status),
		Message: fmt.Sprintf("%s %s your collaboration request", displayName(receiver), req.Status),
		Data:    data,
	}

	if err := uc.collabRepo.Respond(ctx, req, n); err != nil {
		if errors.Is(err, domain.ErrRequestAlreadyAnswered) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to answer collaboration request: %w", err)
	}

	uc.publish(ctx, n)

	result := &RespondResult{Request: req, NewBadges: []domain.AwardedBadge{}}
	if req.Status == domain.CollaborationAccepted {
		result.NewBadges = uc.badges.CheckAndAwardBadges(ctx, userID, badge.ActionCollaboration, &req.ID)
		uc.badges.CheckAndAwardBadges(ctx, req.SenderID, badge.ActionCollaboration, &req.ID)
	}
	return result, nil
}

// ListIncoming returns requests sent to the user, newest first.
func (uc *CollaborationUseCase) ListIncoming(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.CollaborationRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	requests, err := uc.collabRepo.ListIncoming(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list collaboration requests: %w", err)
	}
	return requests, nil
}

func (uc *CollaborationUseCase) publish(ctx context.Context, n *domain.Notification) {
	if err := uc.broadcaster.Publish(ctx, n); err != nil {
		logger.Warning("failed to broadcast %s to user %s: %v", n.Type, n.UserID, err)
	}
}

func displayName(u *domain.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
