package interaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInteractionRepo struct {
	owners map[uuid.UUID]uuid.UUID
	likes  map[[2]uuid.UUID]bool
	votes  map[[2]uuid.UUID]int
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{
		owners: map[uuid.UUID]uuid.UUID{},
		likes:  map[[2]uuid.UUID]bool{},
		votes:  map[[2]uuid.UUID]int{},
	}
}

func (r *fakeInteractionRepo) ToggleLike(_ context.Context, userID uuid.UUID, _ domain.TargetType, targetID uuid.UUID) (bool, int, error) {
	key := [2]uuid.UUID{userID, targetID}
	r.likes[key] = !r.likes[key]
	total := 0
	for k, liked := range r.likes {
		if liked && k[1] == targetID {
			total++
		}
	}
	return r.likes[key], total, nil
}

func (r *fakeInteractionRepo) ToggleSave(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (bool, int, error) {
	return r.ToggleLike(ctx, userID, targetType, targetID)
}

func (r *fakeInteractionRepo) Vote(_ context.Context, userID, ideaID uuid.UUID, value int) (int, error) {
	r.votes[[2]uuid.UUID{userID, ideaID}] = value
	total := 0
	for k, v := range r.votes {
		if k[1] == ideaID {
			total += v
		}
	}
	return total, nil
}

func (r *fakeInteractionRepo) GetOwnerID(_ context.Context, _ domain.TargetType, targetID uuid.UUID) (uuid.UUID, error) {
	owner, ok := r.owners[targetID]
	if !ok {
		return uuid.Nil, domain.ErrTargetNotFound
	}
	return owner, nil
}

type badgeCall struct {
	userID uuid.UUID
	action string
}

type recordingChecker struct {
	calls []badgeCall
}

func (c *recordingChecker) CheckAndAwardBadges(_ context.Context, userID uuid.UUID, action string, _ *uuid.UUID) []domain.AwardedBadge {
	c.calls = append(c.calls, badgeCall{userID: userID, action: action})
	return []domain.AwardedBadge{}
}

func TestInteractionUseCase_ToggleLike(t *testing.T) {
	repo := newFakeInteractionRepo()
	checker := &recordingChecker{}
	uc := NewInteractionUseCase(repo, checker)
	ctx := context.Background()

	actor, owner, idea := uuid.New(), uuid.New(), uuid.New()
	repo.owners[idea] = owner

	result, err := uc.ToggleLike(ctx, actor, domain.TargetIdea, idea)
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, []badgeCall{
		{userID: actor, action: badge.ActionLike},
		{userID: owner, action: badge.ActionContentLiked},
	}, checker.calls)

	// unliking only rechecks the actor
	checker.calls = nil
	result, err = uc.ToggleLike(ctx, actor, domain.TargetIdea, idea)
	require.NoError(t, err)
	assert.False(t, result.Active)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, []badgeCall{{userID: actor, action: badge.ActionLike}}, checker.calls)
}

func TestInteractionUseCase_ToggleSaveOwnContent(t *testing.T) {
	repo := newFakeInteractionRepo()
	checker := &recordingChecker{}
	uc := NewInteractionUseCase(repo, checker)

	me, project := uuid.New(), uuid.New()
	repo.owners[project] = me

	result, err := uc.ToggleSave(context.Background(), me, domain.TargetProject, project)
	require.NoError(t, err)
	assert.True(t, result.Active)
	assert.Equal(t, []badgeCall{{userID: me, action: badge.ActionSave}}, checker.calls)
}

func TestInteractionUseCase_ToggleErrors(t *testing.T) {
	repo := newFakeInteractionRepo()
	checker := &recordingChecker{}
	uc := NewInteractionUseCase(repo, checker)
	ctx := context.Background()

	_, err := uc.ToggleLike(ctx, uuid.New(), domain.TargetType("user"), uuid.New())
	assert.ErrorIs(t, err, domain.ErrInvalidTargetType)

	_, err = uc.ToggleSave(ctx, uuid.New(), domain.TargetComment, uuid.New())
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)

	assert.Empty(t, checker.calls)
}

func TestInteractionUseCase_Vote(t *testing.T) {
	repo := newFakeInteractionRepo()
	checker := &recordingChecker{}
	uc := NewInteractionUseCase(repo, checker)
	ctx := context.Background()

	voter, idea := uuid.New(), uuid.New()
	repo.owners[idea] = uuid.New()

	up := 1
	result, err := uc.Vote(ctx, voter, idea, &VoteRequest{Value: &up})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Value)
	assert.Equal(t, 1, result.Total)
	assert.NotNil(t, result.NewBadges)
	assert.Equal(t, []badgeCall{{userID: voter, action: badge.ActionVote}}, checker.calls)

	tooMuch := 2
	_, err = uc.Vote(ctx, voter, idea, &VoteRequest{Value: &tooMuch})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Vote(ctx, voter, uuid.New(), &VoteRequest{Value: &up})
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}
