package badge

import (
	"context"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
)

// RankProvider loads activity counts for every active user in one query.
type RankProvider interface {
	LeaderboardEntries(ctx context.Context) ([]domain.LeaderboardEntry, error)
}

var customPredicates = map[string]func(domain.UserStats) bool{
	"account_age_weeks >= 4":    func(s domain.UserStats) bool { return s.AccountAgeWeeks >= 4 },
	"profile_completion >= 100": func(s domain.UserStats) bool { return s.ProfileCompletion >= 100 },
	"early_adopter":             func(s domain.UserStats) bool { return s.IsEarlyAdopter },
	"beta_tester":               func(s domain.UserStats) bool { return s.IsBetaTester },
}

// Evaluator decides whether a user meets badge criteria. Anything it cannot
// decide counts as not met.
type Evaluator struct {
	ranks RankProvider
}

func NewEvaluator(ranks RankProvider) *Evaluator {
	return &Evaluator{ranks: ranks}
}

// Evaluate checks a single badge with a fresh leaderboard.
func (e *Evaluator) Evaluate(ctx context.Context, badge *domain.Badge, stats *domain.UserStats, userID uuid.UUID) bool {
	return e.NewPass().Evaluate(ctx, badge, stats, userID)
}

// NewPass starts an evaluation round that loads the leaderboard at most once.
func (e *Evaluator) NewPass() *Pass {
	return &Pass{ranks: e.ranks}
}

type Pass struct {
	ranks  RankProvider
	ranked []domain.LeaderboardEntry
	loaded bool
	failed bool
}

func (p *Pass) Evaluate(ctx context.Context, badge *domain.Badge, stats *domain.UserStats, userID uuid.UUID) bool {
	if badge == nil || badge.Criteria == nil || stats == nil {
		return false
	}

	switch c := badge.Criteria.(type) {
	case domain.CountCriteria:
		value, ok := stats.Value(c.Target)
		if !ok {
			logger.Debug("badge %s: unknown count target %q", badge.Key, c.Target)
			return false
		}
		return value >= c.Threshold
	case domain.RankCriteria:
		return p.rankWithin(ctx, userID, c.Threshold)
	case domain.CustomCriteria:
		predicate, ok := customPredicates[c.Logic]
		if !ok {
			logger.Debug("badge %s: unknown custom logic %q", badge.Key, c.Logic)
			return false
		}
		return predicate(*stats)
	default:
		return false
	}
}

func (p *Pass) rankWithin(ctx context.Context, userID uuid.UUID, threshold int) bool {
	if threshold <= 0 || p.ranks == nil {
		return false
	}

	if !p.loaded {
		p.loaded = true
		entries, err := p.ranks.LeaderboardEntries(ctx)
		if err != nil {
			logger.Error("rank criteria: failed to load leaderboard: %v", err)
			p.failed = true
			return false
		}
		p.ranked = domain.RankEntries(entries)
	}
	if p.failed {
		return false
	}

	rank := domain.RankOf(p.ranked, userID)
	return rank > 0 && rank <= threshold
}
