package service

import (
	"context"

	"smarthire-api/core/errors"
	"smarthire-api/core/logger"
	"smarthire-api/core/params"
	"smarthire-api/modules/job/dto"
	"smarthire-api/modules/job/entity"
	"smarthire-api/modules/job/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type JobServiceInterface interface {
	CreateJob(ctx context.Context, ownerID uuid.UUID, req *dto.CreateJobRequest) (*entity.Job, *errors.AppError)
	GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, *errors.AppError)
	ListJobs(ctx context.Context, qp *params.QueryParams) (*dto.JobListResponse, *errors.AppError)
	UpdateJob(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*entity.Job, *errors.AppError)
	DeleteJob(ctx context.Context, id uuid.UUID) *errors.AppError
}

type JobService struct {
	repo repository.JobRepositoryInterface
}

func NewJobService(repo repository.JobRepositoryInterface) JobServiceInterface {
	return &JobService{repo: repo}
}

func (s *JobService) CreateJob(ctx context.Context, ownerID uuid.UUID, req *dto.CreateJobRequest) (*entity.Job, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}

	job := &entity.Job{
		OwnerID:        ownerID,
		Title:          req.Title,
		RoleSlug:       slug.Make(req.Title),
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Status:         entity.JobStatusOpen,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create job", err)
	}

	logger.Info("JobService:CreateJob", "job_id", created.ID, "slug", created.RoleSlug)
	return created, nil
}

func (s *JobService) GetJob(ctx context.Context, id uuid.UUID) (*entity.Job, *errors.AppError) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get job", err)
	}
	if job == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "job not found", nil)
	}
	return job, nil
}

func (s *JobService) ListJobs(ctx context.Context, qp *params.QueryParams) (*dto.JobListResponse, *errors.AppError) {
	jobs, total, err := s.repo.List(ctx, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list jobs", err)
	}
	return &dto.JobListResponse{
		Jobs:  jobs,
		Total: total,
		Page:  qp.Page,
		Limit: qp.Limit,
	}, nil
}

func (s *JobService) UpdateJob(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*entity.Job, *errors.AppError) {
	job, appErr := s.GetJob(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil && *req.Title != "" {
		job.Title = *req.Title
		job.RoleSlug = slug.Make(*req.Title)
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.RequiredSkills != nil {
		job.RequiredSkills = *req.RequiredSkills
	}
	if req.Status != nil {
		status := entity.JobStatus(*req.Status)
		if status != entity.JobStatusOpen && status != entity.JobStatusClosed {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid job status", nil)
		}
		job.Status = status
	}

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update job", err)
	}
	return job, nil
}

func (s *JobService) DeleteJob(ctx context.Context, id uuid.UUID) *errors.AppError {
	if _, appErr := s.GetJob(ctx, id); appErr != nil {
		return appErr
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete job", err)
	}
	return nil
}
