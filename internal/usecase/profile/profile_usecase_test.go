package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users   map[uuid.UUID]*domain.User
	updated int
}

func (r *memoryUserRepo) Create(_ context.Context, u *domain.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) UpdateProfile(_ context.Context, u *domain.User) error {
	r.updated++
	r.users[u.ID] = u
	return nil
}

type actionRecorder struct {
	actions []string
}

func (c *actionRecorder) CheckAndAwardBadges(_ context.Context, _ uuid.UUID, action string, _ *uuid.UUID) []domain.AwardedBadge {
	c.actions = append(c.actions, action)
	return []domain.AwardedBadge{{Badge: &domain.Badge{Key: "complete_profile", Points: 50}}}
}

type fakeBioGenerator struct{}

func (fakeBioGenerator) GenerateBio(_ context.Context, name string, skills, _ []string) (map[string]string, error) {
	return map[string]string{"short": name + " builds with " + skills[0]}, nil
}

func TestProfileUseCase_UpdateProfile(t *testing.T) {
	id := uuid.New()
	repo := &memoryUserRepo{users: map[uuid.UUID]*domain.User{id: {ID: id, Username: "ada"}}}
	checker := &actionRecorder{}
	uc := NewProfileUseCase(repo, checker, nil)

	skills := []string{" go ", "sql", "go", ""}
	hours := 12.0
	pace := domain.Pace("fast")

	resp, err := uc.UpdateProfile(context.Background(), id, &UpdateProfileRequest{
		Skills:            &skills,
		AvailabilityHours: &hours,
		Pace:              &pace,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, resp.User.Skills)
	assert.Equal(t, 12.0, resp.User.AvailabilityHours)
	assert.Equal(t, pace, resp.User.WorkStyle.Pace)
	assert.Len(t, resp.NewBadges, 1)
	assert.Equal(t, []string{badge.ActionProfileUpdate}, checker.actions)
	assert.Equal(t, 1, repo.updated)
}

func TestProfileUseCase_UpdateUnknownUser(t *testing.T) {
	checker := &actionRecorder{}
	uc := NewProfileUseCase(&memoryUserRepo{users: map[uuid.UUID]*domain.User{}}, checker, nil)

	_, err := uc.UpdateProfile(context.Background(), uuid.New(), &UpdateProfileRequest{})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, checker.actions)
}

func TestProfileUseCase_GenerateBio(t *testing.T) {
	id := uuid.New()
	repo := &memoryUserRepo{users: map[uuid.UUID]*domain.User{id: {ID: id, DisplayName: "Ada", Skills: []string{"go"}}}}

	_, err := NewProfileUseCase(repo, &actionRecorder{}, nil).GenerateBio(context.Background(), id)
	assert.Error(t, err)

	bios, err := NewProfileUseCase(repo, &actionRecorder{}, fakeBioGenerator{}).GenerateBio(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ada builds with go", bios["short"])
}
