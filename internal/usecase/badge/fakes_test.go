package badge

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

type fakeUserRepo struct {
	repository.UserRepository
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) points(id uuid.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[id].TotalPoints
}

type fakeBadgeRepo struct {
	repository.BadgeRepository
	badges []*domain.Badge
	err    error
	panics bool
}

func (r *fakeBadgeRepo) ListActive(context.Context) ([]*domain.Badge, error) {
	if r.panics {
		panic("badge store exploded")
	}
	return r.badges, r.err
}

// fakeUserBadgeRepo mimics the unique (user_id, badge_id) constraint and the points update.
type fakeUserBadgeRepo struct {
	mu      sync.Mutex
	users   *fakeUserRepo
	catalog map[uuid.UUID]*domain.Badge
	held    map[uuid.UUID]map[uuid.UUID]*domain.UserBadge
	failFor map[uuid.UUID]bool
	awards  int
	keysErr error
}

func newFakeUserBadgeRepo(users *fakeUserRepo, badges []*domain.Badge) *fakeUserBadgeRepo {
	catalog := make(map[uuid.UUID]*domain.Badge, len(badges))
	for _, b := range badges {
		catalog[b.ID] = b
	}
	return &fakeUserBadgeRepo{
		users:   users,
		catalog: catalog,
		held:    map[uuid.UUID]map[uuid.UUID]*domain.UserBadge{},
		failFor: map[uuid.UUID]bool{},
	}
}

func (r *fakeUserBadgeRepo) EarnedBadgeKeys(_ context.Context, userID uuid.UUID) ([]string, error) {
	if r.keysErr != nil {
		return nil, r.keysErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := []string{}
	for badgeID := range r.held[userID] {
		keys = append(keys, r.catalog[badgeID].Key)
	}
	return keys, nil
}

func (r *fakeUserBadgeRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.EarnedBadge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	earned := []*domain.EarnedBadge{}
	for badgeID, ub := range r.held[userID] {
		earned = append(earned, &domain.EarnedBadge{UserBadge: *ub, Badge: r.catalog[badgeID]})
	}
	return earned, nil
}

func (r *fakeUserBadgeRepo) SetDisplayed(_ context.Context, userID, badgeID uuid.UUID, displayed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ub, ok := r.held[userID][badgeID]
	if !ok {
		return domain.ErrUserBadgeNotFound
	}
	ub.IsDisplayed = displayed
	return nil
}

func (r *fakeUserBadgeRepo) Award(_ context.Context, award *repository.BadgeAward) (bool, error) {
	ub := award.UserBadge
	if r.failFor[ub.BadgeID] {
		return false, errors.New("insert failed")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.held[ub.UserID] == nil {
		r.held[ub.UserID] = map[uuid.UUID]*domain.UserBadge{}
	}
	if _, ok := r.held[ub.UserID][ub.BadgeID]; ok {
		return false, nil
	}

	ub.ID = uuid.New()
	r.held[ub.UserID][ub.BadgeID] = ub
	r.awards++

	r.users.mu.Lock()
	r.users.users[ub.UserID].TotalPoints += ub.PointsAwarded
	r.users.mu.Unlock()

	award.Notification.ID = uuid.New()
	return true, nil
}

type fakeStatsRepo struct {
	stats      map[uuid.UUID]domain.UserStats
	entries    []domain.LeaderboardEntry
	statsErr   error
	entriesErr error
	entryCalls int
}

func (r *fakeStatsRepo) GetActivityCounts(_ context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	if r.statsErr != nil {
		return nil, r.statsErr
	}
	s := r.stats[userID]
	return &s, nil
}

func (r *fakeStatsRepo) LeaderboardEntries(context.Context) ([]domain.LeaderboardEntry, error) {
	r.entryCalls++
	if r.entriesErr != nil {
		return nil, r.entriesErr
	}
	entries := make([]domain.LeaderboardEntry, len(r.entries))
	copy(entries, r.entries)
	return entries, nil
}

type recordingBroadcaster struct {
	mu        sync.Mutex
	published []*domain.Notification
	err       error
}

func (b *recordingBroadcaster) Publish(_ context.Context, n *domain.Notification) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, n)
	return b.err
}

func countBadge(key string, target domain.StatKey, threshold, points int) *domain.Badge {
	return &domain.Badge{
		ID:       uuid.New(),
		Key:      key,
		Name:     key,
		Criteria: domain.CountCriteria{Target: target, Threshold: threshold},
		Points:   points,
		IsActive: true,
	}
}
