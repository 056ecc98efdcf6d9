package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
)

const uniqueViolation = "23505"

type collaborationRepository struct {
	db *sqlx.DB
}

func NewCollaborationRepository(db *sqlx.DB) repository.CollaborationRepository {
	return &collaborationRepository{db: db}
}

func (r *collaborationRepository) Create(ctx context.Context, req *domain.CollaborationRequest, notification *domain.Notification) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO collaboration_requests (id, sender_id, receiver_id, project_id, message, compatibility_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	err = tx.QueryRowxContext(ctx, query,
		req.ID, req.SenderID, req.ReceiverID, req.ProjectID, req.Message, req.CompatibilityScore, req.Status,
	).Scan(&req.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			err = domain.ErrCollaborationRequestExists
		}
		return err
	}

	if notification != nil {
		if err = insertNotification(ctx, tx, notification); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *collaborationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.CollaborationRequest, error) {
	var req domain.CollaborationRequest
	query := `SELECT * FROM collaboration_requests WHERE id = $1`
	err := r.db.GetContext(ctx, &req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCollaborationRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *collaborationRepository) GetPendingBetween(ctx context.Context, senderID, receiverID uuid.UUID) (*domain.CollaborationRequest, error) {
	var req domain.CollaborationRequest
	query := `
		SELECT * FROM collaboration_requests
		WHERE sender_id = $1 AND receiver_id = $2 AND status = 'pending'
	`
	err := r.db.GetContext(ctx, &req, query, senderID, receiverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCollaborationRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *collaborationRepository) ListIncoming(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.CollaborationRequest, error) {
	requests := []*domain.CollaborationRequest{}
	query := `
		SELECT * FROM collaboration_requests
		WHERE receiver_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &requests, query, userID, limit, offset)
	return requests, err
}

func (r *collaborationRepository) Respond(ctx context.Context, req *domain.CollaborationRequest, notification *domain.Notification) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		UPDATE collaboration_requests
		SET status = $1, responded_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = 'pending'
		RETURNING responded_at
	`
	err = tx.QueryRowxContext(ctx, query, req.Status, req.ID).Scan(&req.RespondedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrRequestAlreadyAnswered
		}
		return err
	}

	if notification != nil {
		if err = insertNotification(ctx, tx, notification); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *collaborationRepository) HasCollaborated(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM collaboration_requests
			WHERE status = 'accepted'
			  AND ((sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1))
		)
	`
	err := r.db.QueryRowContext(ctx, query, userA, userB).Scan(&exists)
	return exists, err
}
