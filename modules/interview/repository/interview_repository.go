package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smarthire-api/core/database"
	"smarthire-api/core/logger"
	"smarthire-api/core/params"
	"smarthire-api/modules/interview/entity"

	"github.com/google/uuid"
)

// ListFilter narrows interview listings to one job or candidate.
type ListFilter struct {
	JobID       *uuid.UUID
	CandidateID *uuid.UUID
}

type InterviewRepositoryInterface interface {
	Create(ctx context.Context, interview *entity.Interview) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Interview, error)
	List(ctx context.Context, qp *params.QueryParams, filter ListFilter) ([]entity.Interview, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error
}

type InterviewRepository struct {
	db database.IDatabase
}

func NewInterviewRepository(db database.IDatabase) InterviewRepositoryInterface {
	return &InterviewRepository{db: db}
}

// Create inserts with the caller-provided id: response tokens referencing the
// interview are issued in the same flow, so the id exists before the row.
func (r *InterviewRepository) Create(ctx context.Context, interview *entity.Interview) error {
	query := `
		INSERT INTO interviews (id, job_id, candidate_id, round, summary, provider_event_id, start_time, end_time, attendees, conferencing_link, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	now := time.Now()
	interview.CreatedAt = now
	interview.UpdatedAt = now

	err := r.db.ExecContext(ctx, query,
		interview.ID,
		interview.JobID,
		interview.CandidateID,
		interview.Round,
		interview.Summary,
		interview.ProviderEventID,
		interview.StartTime,
		interview.EndTime,
		interview.Attendees,
		interview.ConferencingLink,
		interview.Status,
		interview.CreatedAt,
		interview.UpdatedAt,
	)
	if err != nil {
		logger.Error("InterviewRepository:Create:Error", "error", err, "interview_id", interview.ID)
	}
	return err
}

func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
	query := `
		SELECT id, job_id, candidate_id, round, summary, provider_event_id, start_time, end_time, attendees, conferencing_link, status, created_at, updated_at
		FROM interviews
		WHERE id = $1
	`
	var interview entity.Interview
	err := r.db.GetContext(ctx, &interview, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("InterviewRepository:GetByID:Error", "error", err, "interview_id", id)
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) List(ctx context.Context, qp *params.QueryParams, filter ListFilter) ([]entity.Interview, int, error) {
	where := ""
	args := []any{}
	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		where = fmt.Sprintf("WHERE job_id = $%d", len(args))
	}
	if filter.CandidateID != nil {
		args = append(args, *filter.CandidateID)
		clause := fmt.Sprintf("candidate_id = $%d", len(args))
		if where == "" {
			where = "WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM interviews "+where, args...); err != nil {
		logger.Error("InterviewRepository:List:CountError", "error", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, job_id, candidate_id, round, summary, provider_event_id, start_time, end_time, attendees, conferencing_link, status, created_at, updated_at
		FROM interviews %s
		ORDER BY start_time DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, qp.Limit, qp.Offset())

	var interviews []entity.Interview
	if err := r.db.SelectContext(ctx, &interviews, query, args...); err != nil {
		logger.Error("InterviewRepository:List:Error", "error", err)
		return nil, 0, err
	}
	return interviews, total, nil
}

func (r *InterviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error {
	query := `UPDATE interviews SET status = $1, updated_at = $2 WHERE id = $3`
	err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		logger.Error("InterviewRepository:UpdateStatus:Error", "error", err, "interview_id", id)
	}
	return err
}
