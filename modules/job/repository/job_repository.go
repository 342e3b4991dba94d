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
	"smarthire-api/modules/job/entity"

	"github.com/google/uuid"
)

type JobRepositoryInterface interface {
	Create(ctx context.Context, job *entity.Job) (*entity.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	List(ctx context.Context, qp *params.QueryParams) ([]entity.Job, int, error)
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobRepository struct {
	db database.IDatabase
}

func NewJobRepository(db database.IDatabase) JobRepositoryInterface {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	query := `
		INSERT INTO jobs (owner_id, title, role_slug, description, required_skills, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query,
		job.OwnerID,
		job.Title,
		job.RoleSlug,
		job.Description,
		job.RequiredSkills,
		job.Status,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err := row.Scan(&job.ID); err != nil {
		logger.Error("JobRepository:Create:Error", "error", err)
		return nil, err
	}
	return job, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	query := `
		SELECT id, owner_id, title, role_slug, description, required_skills, status, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`
	var job entity.Job
	err := r.db.GetContext(ctx, &job, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("JobRepository:GetByID:Error", "error", err, "job_id", id)
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context, qp *params.QueryParams) ([]entity.Job, int, error) {
	where := ""
	args := []any{}
	if qp.Search != "" {
		where = "WHERE title ILIKE $1 OR required_skills ILIKE $1"
		args = append(args, "%"+qp.Search+"%")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM jobs " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Error("JobRepository:List:CountError", "error", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, owner_id, title, role_slug, description, required_skills, status, created_at, updated_at
		FROM jobs %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, qp.Limit, qp.Offset())

	var jobs []entity.Job
	if err := r.db.SelectContext(ctx, &jobs, query, args...); err != nil {
		logger.Error("JobRepository:List:Error", "error", err)
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *JobRepository) Update(ctx context.Context, job *entity.Job) error {
	query := `
		UPDATE jobs
		SET title = $1, role_slug = $2, description = $3, required_skills = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	job.UpdatedAt = time.Now()
	err := r.db.ExecContext(ctx, query,
		job.Title,
		job.RoleSlug,
		job.Description,
		job.RequiredSkills,
		job.Status,
		job.UpdatedAt,
		job.ID,
	)
	if err != nil {
		logger.Error("JobRepository:Update:Error", "error", err, "job_id", job.ID)
	}
	return err
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		logger.Error("JobRepository:Delete:Error", "error", err, "job_id", id)
	}
	return err
}
