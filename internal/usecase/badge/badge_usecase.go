package badge

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

type BadgeUseCase struct {
	badgeRepo     repository.BadgeRepository
	userBadgeRepo repository.UserBadgeRepository
	userRepo      repository.UserRepository
	awarder       *Awarder
}

func NewBadgeUseCase(
	badgeRepo repository.BadgeRepository,
	userBadgeRepo repository.UserBadgeRepository,
	userRepo repository.UserRepository,
	awarder *Awarder,
) *BadgeUseCase {
	return &BadgeUseCase{
		badgeRepo:     badgeRepo,
		userBadgeRepo: userBadgeRepo,
		userRepo:      userRepo,
		awarder:       awarder,
	}
}

// SetDisplayRequest toggles whether an earned badge shows on the profile
type SetDisplayRequest struct {
	IsDisplayed *bool `json:"is_displayed" binding:"required"`
}

// ListCatalog returns all active badges.
func (uc *BadgeUseCase) ListCatalog(ctx context.Context) ([]*domain.Badge, error) {
	badges, err := uc.badgeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, nil
}

// ListMine returns the badges the user has earned, newest first.
func (uc *BadgeUseCase) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.EarnedBadge, error) {
	earned, err := uc.userBadgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user badges: %w", err)
	}
	return earned, nil
}

func (uc *BadgeUseCase) SetDisplayed(ctx context.Context, userID, badgeID uuid.UUID, req *SetDisplayRequest) error {
	return uc.userBadgeRepo.SetDisplayed(ctx, userID, badgeID, *req.IsDisplayed)
}

// Check runs a manual badge check for the user.
func (uc *BadgeUseCase) Check(ctx context.Context, userID uuid.UUID) []domain.AwardedBadge {
	return uc.awarder.CheckAndAwardBadges(ctx, userID, ActionManual, nil)
}

// MyStats returns the stats badge criteria are evaluated against.
func (uc *BadgeUseCase) MyStats(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.awarder.BuildStats(ctx, user)
}
