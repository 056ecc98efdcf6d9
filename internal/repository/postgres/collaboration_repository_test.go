package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest() *domain.CollaborationRequest {
	return &domain.CollaborationRequest{
		ID:                 uuid.New(),
		SenderID:           uuid.New(),
		ReceiverID:         uuid.New(),
		CompatibilityScore: 64,
		Status:             domain.CollaborationPending,
	}
}

func TestCollaborationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollaborationRepository(db)
	req := newRequest()
	created := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO collaboration_requests")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_read", "created_at"}).AddRow(uuid.NewString(), false, created))
	mock.ExpectCommit()

	n := &domain.Notification{UserID: req.ReceiverID, Type: domain.NotificationCollaborationRequest, Title: "New collaboration request"}
	require.NoError(t, repo.Create(context.Background(), req, n))
	assert.Equal(t, created, req.CreatedAt)
	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollaborationRepository_CreateDuplicatePending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollaborationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO collaboration_requests")).
		WillReturnError(&pq.Error{Code: uniqueViolation})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), newRequest(), nil)
	assert.ErrorIs(t, err, domain.ErrCollaborationRequestExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollaborationRepository_GetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCollaborationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM collaboration_requests WHERE id = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrCollaborationRequestNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
