package compatibility

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	repository.UserRepository
	users map[uuid.UUID]*domain.User
	err   error
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type stubCollabRepo struct {
	repository.CollaborationRepository
	collaborated bool
	err          error
}

func (r *stubCollabRepo) HasCollaborated(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return r.collaborated, r.err
}

type stubSummarizer struct {
	calls int
}

func (s *stubSummarizer) SummarizeCompatibility(context.Context, *domain.User, *domain.User, *domain.CompatibilityResult) (string, error) {
	s.calls++
	return "build it together", nil
}

func newPair() (*domain.User, *domain.User) {
	a := &domain.User{ID: uuid.New(), Username: "ada", Skills: []string{"go", "sql"}}
	b := &domain.User{ID: uuid.New(), Username: "grace", Skills: []string{"go"}}
	return a, b
}

func TestCompatibilityUseCase_Check(t *testing.T) {
	a, b := newPair()
	users := &stubUserRepo{users: map[uuid.UUID]*domain.User{a.ID: a, b.ID: b}}

	t.Run("scores existing users", func(t *testing.T) {
		uc := NewCompatibilityUseCase(users, &stubCollabRepo{}, nil)

		result, err := uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: b.ID})

		require.NoError(t, err)
		assert.Equal(t, 50, result.Score)
		assert.Empty(t, result.Summary)
	})

	t.Run("unknown target", func(t *testing.T) {
		uc := NewCompatibilityUseCase(users, &stubCollabRepo{}, nil)

		_, err := uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: uuid.New()})

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("self check", func(t *testing.T) {
		uc := NewCompatibilityUseCase(users, &stubCollabRepo{}, nil)

		_, err := uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: a.ID})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("history failure counts as no past collaboration", func(t *testing.T) {
		uc := NewCompatibilityUseCase(users, &stubCollabRepo{collaborated: true, err: errors.New("db down")}, nil)

		result, err := uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: b.ID})

		require.NoError(t, err)
		assert.Zero(t, result.Breakdown.PastCollabBonus)
		assert.Equal(t, 50, result.Score)
	})

	t.Run("past collaboration adds bonus", func(t *testing.T) {
		uc := NewCompatibilityUseCase(users, &stubCollabRepo{collaborated: true}, nil)

		result, err := uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: b.ID})

		require.NoError(t, err)
		assert.Equal(t, 60, result.Score)
		assert.True(t, result.Recommended)
	})

	t.Run("database failure degrades to zero score", func(t *testing.T) {
		uc := NewCompatibilityUseCase(&stubUserRepo{err: errors.New("db down")}, &stubCollabRepo{}, nil)

		result, err := uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: b.ID})

		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, LabelLow, result.Label)
	})

	t.Run("summary on request", func(t *testing.T) {
		summarizer := &stubSummarizer{}
		uc := NewCompatibilityUseCase(users, &stubCollabRepo{}, summarizer)

		result, err := uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: b.ID, WithSummary: true})
		require.NoError(t, err)
		assert.Equal(t, "build it together", result.Summary)

		_, err = uc.Check(context.Background(), a.ID, &CheckRequest{TargetUserID: b.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, summarizer.calls)
	})
}
