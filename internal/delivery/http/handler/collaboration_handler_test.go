package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/peve-dev/peve-backend/internal/usecase/compatibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	repository.UserRepository
	users map[uuid.UUID]*domain.User
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type stubCollabRepo struct {
	repository.CollaborationRepository
}

func (stubCollabRepo) HasCollaborated(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

func newCompatibilityRouter(t *testing.T, callerID uuid.UUID, users ...*domain.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, RegisterValidators())

	repo := &stubUserRepo{users: map[uuid.UUID]*domain.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	h := NewCollaborationHandler(compatibility.NewCompatibilityUseCase(repo, stubCollabRepo{}, nil), nil)

	r := gin.New()
	r.POST("/check", func(c *gin.Context) {
		c.Set("user_id", callerID)
		c.Next()
	}, h.CheckCompatibility)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckCompatibility(t *testing.T) {
	me := &domain.User{ID: uuid.New(), Username: "ada", Skills: []string{"go", "sql"}}
	other := &domain.User{ID: uuid.New(), Username: "grace", Skills: []string{"go"}}
	r := newCompatibilityRouter(t, me.ID, me, other)

	w := postJSON(r, "/check", `{"target_user_id":"`+other.ID.String()+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var result domain.CompatibilityResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 50, result.Score)
	assert.Equal(t, "Moderate Match", result.Label)
	assert.False(t, result.Recommended)
	assert.Equal(t, []string{"Shared skill: go"}, result.Reasons)
}

func TestCheckCompatibility_Errors(t *testing.T) {
	me := &domain.User{ID: uuid.New(), Username: "ada"}
	r := newCompatibilityRouter(t, me.ID, me)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"unknown target", `{"target_user_id":"` + uuid.NewString() + `"}`, http.StatusNotFound},
		{"self", `{"target_user_id":"` + me.ID.String() + `"}`, http.StatusBadRequest},
		{"missing target", `{}`, http.StatusBadRequest},
		{"malformed id", `{"target_user_id":"nope"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/check", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestCheckCompatibility_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCollaborationHandler(nil, nil)
	r := gin.New()
	r.POST("/check", h.CheckCompatibility)

	w := postJSON(r, "/check", `{"target_user_id":"`+uuid.NewString()+`"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
