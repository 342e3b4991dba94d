package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smarthire-api/core/database"
	"smarthire-api/core/logger"
	"smarthire-api/modules/response/entity"

	"github.com/google/uuid"
)

type ResponseRepositoryInterface interface {
	Create(ctx context.Context, rec *entity.InterviewResponse) error
	GetByToken(ctx context.Context, token string) (*entity.InterviewResponse, error)
	ResolveIfPending(ctx context.Context, token string, status entity.ResponseStatus) (bool, error)
	ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]entity.InterviewResponse, error)
}

type ResponseRepository struct {
	db database.IDatabase
}

func NewResponseRepository(db database.IDatabase) ResponseRepositoryInterface {
	return &ResponseRepository{db: db}
}

func (r *ResponseRepository) Create(ctx context.Context, rec *entity.InterviewResponse) error {
	query := `
		INSERT INTO interview_responses (token, interview_id, recipient, action, start_time, end_time, conferencing_link, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	err := r.db.ExecContext(ctx, query,
		rec.Token,
		rec.InterviewID,
		rec.Recipient,
		rec.Action,
		rec.StartTime,
		rec.EndTime,
		rec.ConferencingLink,
		rec.Status,
		rec.SentAt,
	)
	if err != nil {
		logger.Error("ResponseRepository:Create:Error", "error", err, "interview_id", rec.InterviewID)
	}
	return err
}

func (r *ResponseRepository) GetByToken(ctx context.Context, token string) (*entity.InterviewResponse, error) {
	query := `
		SELECT token, interview_id, recipient, action, start_time, end_time, conferencing_link, status, sent_at, responded_at
		FROM interview_responses
		WHERE token = $1
	`
	var rec entity.InterviewResponse
	err := r.db.GetContext(ctx, &rec, query, token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("ResponseRepository:GetByToken:Error", "error", err)
		return nil, err
	}
	return &rec, nil
}

// ResolveIfPending flips a token from pending to its terminal status in one
// guarded update. It reports false when the token was no longer pending, so
// concurrent clicks on the same link resolve exactly once.
func (r *ResponseRepository) ResolveIfPending(ctx context.Context, token string, status entity.ResponseStatus) (bool, error) {
	query := `
		UPDATE interview_responses
		SET status = $1, responded_at = $2
		WHERE token = $3 AND status = 'pending'
		RETURNING token
	`
	var resolved string
	err := r.db.QueryRowContext(ctx, query, status, time.Now(), token).Scan(&resolved)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.Error("ResponseRepository:ResolveIfPending:Error", "error", err)
		return false, err
	}
	return true, nil
}

func (r *ResponseRepository) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]entity.InterviewResponse, error) {
	query := `
		SELECT token, interview_id, recipient, action, start_time, end_time, conferencing_link, status, sent_at, responded_at
		FROM interview_responses
		WHERE interview_id = $1
		ORDER BY recipient, action
	`
	var recs []entity.InterviewResponse
	if err := r.db.SelectContext(ctx, &recs, query, interviewID); err != nil {
		logger.Error("ResponseRepository:ListByInterview:Error", "error", err, "interview_id", interviewID)
		return nil, err
	}
	return recs, nil
}
