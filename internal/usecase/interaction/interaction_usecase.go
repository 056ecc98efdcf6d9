package interaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
)

// BadgeChecker runs a badge check after an action. It never fails.
type BadgeChecker interface {
	CheckAndAwardBadges(ctx context.Context, userID uuid.UUID, action string, targetID *uuid.UUID) []domain.AwardedBadge
}

type InteractionUseCase struct {
	interactionRepo repository.InteractionRepository
	badges          BadgeChecker
}

func NewInteractionUseCase(interactionRepo repository.InteractionRepository, badges BadgeChecker) *InteractionUseCase {
	return &InteractionUseCase{
		interactionRepo: interactionRepo,
		badges:          badges,
	}
}

// VoteRequest represents a vote on an idea; 0 removes the vote
type VoteRequest struct {
	Value *int `json:"value" binding:"required,oneof=-1 0 1"`
}

// VoteResult represents the outcome of a vote
type VoteResult struct {
	IdeaID    uuid.UUID             `json:"idea_id"`
	Value     int                   `json:"value"`
	Total     int                   `json:"total"`
	NewBadges []domain.AwardedBadge `json:"new_badges"`
}

// ToggleLike likes the target or removes an existing like.
func (uc *InteractionUseCase) ToggleLike(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (*domain.InteractionResult, error) {
	return uc.toggle(ctx, userID, targetType, targetID, uc.interactionRepo.ToggleLike, badge.ActionLike, badge.ActionContentLiked)
}

// ToggleSave saves the target or removes an existing save.
func (uc *InteractionUseCase) ToggleSave(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (*domain.InteractionResult, error) {
	return uc.toggle(ctx, userID, targetType, targetID, uc.interactionRepo.ToggleSave, badge.ActionSave, badge.ActionContentSaved)
}

type toggleFunc func(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (bool, int, error)

func (uc *InteractionUseCase) toggle(
	ctx context.Context,
	userID uuid.UUID,
	targetType domain.TargetType,
	targetID uuid.UUID,
	apply toggleFunc,
	actorAction, ownerAction string,
) (*domain.InteractionResult, error) {
	if !targetType.IsValid() {
		return nil, domain.ErrInvalidTargetType
	}

	ownerID, err := uc.interactionRepo.GetOwnerID(ctx, targetType, targetID)
	if err != nil {
		return nil, err
	}

	active, total, err := apply(ctx, userID, targetType, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to %s %s: %w", actorAction, targetType, err)
	}

	result := &domain.InteractionResult{
		TargetType: targetType,
		TargetID:   targetID,
		Active:     active,
		Total:      total,
		NewBadges:  uc.badges.CheckAndAwardBadges(ctx, userID, actorAction, &targetID),
	}

	// Received likes and saves only count toward the owner's badges.
	if active && ownerID != userID {
		uc.badges.CheckAndAwardBadges(ctx, ownerID, ownerAction, &targetID)
	}

	return result, nil
}

// Vote sets the user's vote on an idea.
func (uc *InteractionUseCase) Vote(ctx context.Context, userID, ideaID uuid.UUID, req *VoteRequest) (*VoteResult, error) {
	if req.Value == nil || *req.Value < -1 || *req.Value > 1 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := uc.interactionRepo.GetOwnerID(ctx, domain.TargetIdea, ideaID); err != nil {
		return nil, err
	}

	total, err := uc.interactionRepo.Vote(ctx, userID, ideaID, *req.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to vote: %w", err)
	}

	return &VoteResult{
		IdeaID:    ideaID,
		Value:     *req.Value,
		Total:     total,
		NewBadges: uc.badges.CheckAndAwardBadges(ctx, userID, badge.ActionVote, &ideaID),
	}, nil
}
