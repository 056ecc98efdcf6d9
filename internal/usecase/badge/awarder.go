package badge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/metrics"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/peve-dev/peve-backend/internal/usecase/notification"
)

// Actions that trigger a badge check.
const (
	ActionLike          = "like"
	ActionSave          = "save"
	ActionVote          = "vote"
	ActionContentLiked  = "content_liked"
	ActionContentSaved  = "content_saved"
	ActionCollaboration = "collaboration"
	ActionProfileUpdate = "profile_update"
	ActionManual        = "manual"
)

// Awarder grants every badge a user newly qualifies for.
type Awarder struct {
	userRepo      repository.UserRepository
	badgeRepo     repository.BadgeRepository
	userBadgeRepo repository.UserBadgeRepository
	statsRepo     repository.StatsRepository
	evaluator     *Evaluator
	broadcaster   notification.Broadcaster
	now           func() time.Time
}

func NewAwarder(
	userRepo repository.UserRepository,
	badgeRepo repository.BadgeRepository,
	userBadgeRepo repository.UserBadgeRepository,
	statsRepo repository.StatsRepository,
	evaluator *Evaluator,
	broadcaster notification.Broadcaster,
) *Awarder {
	if broadcaster == nil {
		broadcaster = notification.NopBroadcaster{}
	}
	return &Awarder{
		userRepo:      userRepo,
		badgeRepo:     badgeRepo,
		userBadgeRepo: userBadgeRepo,
		statsRepo:     statsRepo,
		evaluator:     evaluator,
		broadcaster:   broadcaster,
		now:           time.Now,
	}
}

// CheckAndAwardBadges awards the badges the user qualifies for and does not hold yet.
// It never fails: errors are logged and yield an empty list.
func (a *Awarder) CheckAndAwardBadges(ctx context.Context, userID uuid.UUID, action string, targetID *uuid.UUID) (awarded []domain.AwardedBadge) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("badge check for user %s (%s) panicked: %v", userID, action, r)
			metrics.BadgeCheckFailures.Inc()
			awarded = []domain.AwardedBadge{}
		}
		metrics.BadgeCheckDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
	}()

	awarded, err := a.checkAndAward(ctx, userID, action, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Warning("badge check skipped, user %s not found", userID)
		} else {
			logger.Error("badge check for user %s (%s) failed: %v", userID, action, err)
			metrics.BadgeCheckFailures.Inc()
		}
		return []domain.AwardedBadge{}
	}
	return awarded
}

func (a *Awarder) checkAndAward(ctx context.Context, userID uuid.UUID, action string, targetID *uuid.UUID) ([]domain.AwardedBadge, error) {
	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	badges, err := a.badgeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	stats, err := a.BuildStats(ctx, user)
	if err != nil {
		return nil, err
	}

	earnedKeys, err := a.userBadgeRepo.EarnedBadgeKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load earned badges: %w", err)
	}
	earned := make(map[string]struct{}, len(earnedKeys))
	for _, key := range earnedKeys {
		earned[key] = struct{}{}
	}

	pass := a.evaluator.NewPass()
	awarded := []domain.AwardedBadge{}

	for _, badge := range badges {
		if _, ok := earned[badge.Key]; ok {
			continue
		}
		if !pass.Evaluate(ctx, badge, stats, userID) {
			continue
		}

		result, ok := a.award(ctx, user, badge, action, targetID)
		if ok {
			awarded = append(awarded, result)
		}
	}

	if len(awarded) > 0 {
		logger.Success("user %s earned %d badge(s) on %s", userID, len(awarded), action)
	}
	return awarded, nil
}

// BuildStats combines stored activity counts with the fields derived from the user record.
func (a *Awarder) BuildStats(ctx context.Context, user *domain.User) (*domain.UserStats, error) {
	stats, err := a.statsRepo.GetActivityCounts(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity counts: %w", err)
	}

	stats.AccountAgeWeeks = user.AccountAgeWeeks(a.now())
	stats.ProfileCompletion = user.ProfileCompletion()
	stats.SkillsCount = len(user.Skills)
	stats.IsEarlyAdopter = user.IsEarlyAdopter
	stats.IsBetaTester = user.IsBetaTester
	return stats, nil
}

type badgeEarnedData struct {
	BadgeID  uuid.UUID  `json:"badge_id"`
	BadgeKey string     `json:"badge_key"`
	Points   int        `json:"points"`
	Action   string     `json:"action"`
	TargetID *uuid.UUID `json:"target_id,omitempty"`
}

// award persists one badge. Failures are logged and reported as not awarded.
func (a *Awarder) award(ctx context.Context, user *domain.User, badge *domain.Badge, action string, targetID *uuid.UUID) (domain.AwardedBadge, bool) {
	data, err := json.Marshal(badgeEarnedData{
		BadgeID:  badge.ID,
		BadgeKey: badge.Key,
		Points:   badge.Points,
		Action:   action,
		TargetID: targetID,
	})
	if err != nil {
		logger.Error("badge %s: failed to encode notification data: %v", badge.Key, err)
		return domain.AwardedBadge{}, false
	}

	award := &repository.BadgeAward{
		UserBadge: &domain.UserBadge{
			UserID:        user.ID,
			BadgeID:       badge.ID,
			PointsAwarded: badge.Points,
			IsDisplayed:   true,
		},
		Notification: &domain.Notification{
			UserID:  user.ID,
			Type:    domain.NotificationBadgeEarned,
			Title:   "New badge earned!",
			Message: fmt.Sprintf("You earned the %q badge: %s", badge.Name, badge.Description),
			Data:    data,
		},
	}

	ok, err := a.userBadgeRepo.Award(ctx, award)
	if err != nil {
		logger.Error("failed to award badge %s to user %s: %v", badge.Key, user.ID, err)
		metrics.BadgeCheckFailures.Inc()
		return domain.AwardedBadge{}, false
	}
	if !ok {
		logger.Debug("badge %s already held by user %s", badge.Key, user.ID)
		return domain.AwardedBadge{}, false
	}

	metrics.BadgesAwarded.WithLabelValues(badge.Key).Inc()

	if err := a.broadcaster.Publish(ctx, award.Notification); err != nil {
		logger.Warning("failed to broadcast badge %s to user %s: %v", badge.Key, user.ID, err)
	}

	return domain.AwardedBadge{Badge: badge, UserBadge: award.UserBadge}, true
}
