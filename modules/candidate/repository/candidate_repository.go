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
	"smarthire-api/modules/candidate/entity"

	"github.com/google/uuid"
)

type CandidateRepositoryInterface interface {
	Create(ctx context.Context, candidate *entity.Candidate) (*entity.Candidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error)
	List(ctx context.Context, qp *params.QueryParams) ([]entity.Candidate, int, error)
	Update(ctx context.Context, candidate *entity.Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CandidateRepository struct {
	db database.IDatabase
}

func NewCandidateRepository(db database.IDatabase) CandidateRepositoryInterface {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, candidate *entity.Candidate) (*entity.Candidate, error) {
	query := `
		INSERT INTO candidates (job_id, name, email, phone, technical_skills, experience_years, resume_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query,
		candidate.JobID,
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		candidate.TechnicalSkills,
		candidate.ExperienceYears,
		candidate.ResumeURL,
		candidate.CreatedAt,
		candidate.UpdatedAt,
	)
	if err := row.Scan(&candidate.ID); err != nil {
		logger.Error("CandidateRepository:Create:Error", "error", err)
		return nil, err
	}
	return candidate, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Candidate, error) {
	query := `
		SELECT id, job_id, name, email, phone, technical_skills, experience_years, resume_url, created_at, updated_at
		FROM candidates
		WHERE id = $1
	`
	var candidate entity.Candidate
	err := r.db.GetContext(ctx, &candidate, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("CandidateRepository:GetByID:Error", "error", err, "candidate_id", id)
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepository) List(ctx context.Context, qp *params.QueryParams) ([]entity.Candidate, int, error) {
	where := ""
	args := []any{}
	if qp.Search != "" {
		where = "WHERE name ILIKE $1 OR email ILIKE $1 OR technical_skills ILIKE $1"
		args = append(args, "%"+qp.Search+"%")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM candidates " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Error("CandidateRepository:List:CountError", "error", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT id, job_id, name, email, phone, technical_skills, experience_years, resume_url, created_at, updated_at
		FROM candidates %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, qp.Limit, qp.Offset())

	var candidates []entity.Candidate
	if err := r.db.SelectContext(ctx, &candidates, query, args...); err != nil {
		logger.Error("CandidateRepository:List:Error", "error", err)
		return nil, 0, err
	}
	return candidates, total, nil
}

func (r *CandidateRepository) Update(ctx context.Context, candidate *entity.Candidate) error {
	query := `
		UPDATE candidates
		SET job_id = $1, name = $2, email = $3, phone = $4, technical_skills = $5, experience_years = $6, resume_url = $7, updated_at = $8
		WHERE id = $9
	`
	candidate.UpdatedAt = time.Now()
	err := r.db.ExecContext(ctx, query,
		candidate.JobID,
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		candidate.TechnicalSkills,
		candidate.ExperienceYears,
		candidate.ResumeURL,
		candidate.UpdatedAt,
		candidate.ID,
	)
	if err != nil {
		logger.Error("CandidateRepository:Update:Error", "error", err, "candidate_id", candidate.ID)
	}
	return err
}

func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		logger.Error("CandidateRepository:Delete:Error", "error", err, "candidate_id", id)
	}
	return err
}
