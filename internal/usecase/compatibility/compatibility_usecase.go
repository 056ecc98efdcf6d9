package compatibility

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/metrics"
	"github.com/peve-dev/peve-backend/internal/repository"
)

// Summarizer writes a short collaboration pitch for a scored pair.
type Summarizer interface {
	SummarizeCompatibility(ctx context.Context, a, b *domain.User, result *domain.CompatibilityResult) (string, error)
}

type CompatibilityUseCase struct {
	userRepo   repository.UserRepository
	collabRepo repository.CollaborationRepository
	summarizer Summarizer
}

// NewCompatibilityUseCase creates the use case. summarizer may be nil.
func NewCompatibilityUseCase(
	userRepo repository.UserRepository,
	collabRepo repository.CollaborationRepository,
	summarizer Summarizer,
) *CompatibilityUseCase {
	return &CompatibilityUseCase{
		userRepo:   userRepo,
		collabRepo: collabRepo,
		summarizer: summarizer,
	}
}

// CheckRequest represents a compatibility check request
type CheckRequest struct {
	TargetUserID uuid.UUID `json:"target_user_id" binding:"required"`
	WithSummary  bool      `json:"with_summary"`
}

// Check scores the current user against the target user.
// Missing users return domain.ErrUserNotFound; other lookup failures degrade to a zero score.
func (uc *CompatibilityUseCase) Check(ctx context.Context, currentUserID uuid.UUID, req *CheckRequest) (*domain.CompatibilityResult, error) {
	if currentUserID == req.TargetUserID {
		return nil, domain.ErrInvalidInput
	}

	me, err := uc.userRepo.GetByID(ctx, currentUserID)
	if err != nil {
		return uc.lookupFailed(err, currentUserID)
	}
	target, err := uc.userRepo.GetByID(ctx, req.TargetUserID)
	if err != nil {
		return uc.lookupFailed(err, req.TargetUserID)
	}

	result := uc.Score(ctx, me, target)

	if req.WithSummary && uc.summarizer != nil {
		summary, err := uc.summarizer.SummarizeCompatibility(ctx, me, target, &result)
		if err != nil {
			logger.Warning("compatibility summary for %s and %s failed: %v", me.ID, target.ID, err)
		} else {
			result.Summary = summary
		}
	}

	return &result, nil
}

// Score computes the compatibility of two loaded users. A failed history lookup counts as no past collaboration.
func (uc *CompatibilityUseCase) Score(ctx context.Context, a, b *domain.User) domain.CompatibilityResult {
	var cc domain.CompatibilityContext

	collaborated, err := uc.collabRepo.HasCollaborated(ctx, a.ID, b.ID)
	if err != nil {
		logger.Warning("collaboration history for %s and %s unavailable: %v", a.ID, b.ID, err)
	} else {
		cc.PastCollab = collaborated
	}

	result := ComputeCompatibility(NormalizeProfile(a), NormalizeProfile(b), cc)
	metrics.CompatibilityChecks.WithLabelValues(result.Label).Inc()
	return result
}

func (uc *CompatibilityUseCase) lookupFailed(err error, userID uuid.UUID) (*domain.CompatibilityResult, error) {
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("user %s: %w", userID, err)
	}

	logger.Error("compatibility check: load user %s: %v", userID, err)
	result := ComputeCompatibility(NormalizeProfile(nil), NormalizeProfile(nil), domain.CompatibilityContext{})
	return &result, nil
}
