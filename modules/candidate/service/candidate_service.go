package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"smarthire-api/core/errors"
	"smarthire-api/core/logger"
	"smarthire-api/core/params"
	"smarthire-api/core/storage"
	"smarthire-api/core/utils"
	"smarthire-api/modules/candidate/dto"
	"smarthire-api/modules/candidate/entity"
	"smarthire-api/modules/candidate/repository"

	"github.com/google/uuid"
)

type CandidateServiceInterface interface {
	CreateCandidate(ctx context.Context, req *dto.CreateCandidateRequest) (*entity.Candidate, *errors.AppError)
	GetCandidate(ctx context.Context, id uuid.UUID) (*entity.Candidate, *errors.AppError)
	ListCandidates(ctx context.Context, qp *params.QueryParams) (*dto.CandidateListResponse, *errors.AppError)
	UpdateCandidate(ctx context.Context, id uuid.UUID, req *dto.UpdateCandidateRequest) (*entity.Candidate, *errors.AppError)
	DeleteCandidate(ctx context.Context, id uuid.UUID) *errors.AppError
	UploadResume(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*dto.ResumeUploadResponse, *errors.AppError)
}

type CandidateService struct {
	repo    repository.CandidateRepositoryInterface
	storage storage.Storage
}

func NewCandidateService(repo repository.CandidateRepositoryInterface, st storage.Storage) CandidateServiceInterface {
	return &CandidateService{repo: repo, storage: st}
}

func (s *CandidateService) CreateCandidate(ctx context.Context, req *dto.CreateCandidateRequest) (*entity.Candidate, *errors.AppError) {
	if req.Name == "" || req.Email == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "name and email are required", nil)
	}

	candidate := &entity.Candidate{
		Name:            req.Name,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:           req.Phone,
		TechnicalSkills: req.TechnicalSkills,
		ExperienceYears: req.ExperienceYears,
	}
	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid job_id", nil)
		}
		candidate.JobID = &jobID
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create candidate", err)
	}

	logger.Info("CandidateService:CreateCandidate", "candidate_id", created.ID, "email", created.Email)
	return created, nil
}

func (s *CandidateService) GetCandidate(ctx context.Context, id uuid.UUID) (*entity.Candidate, *errors.AppError) {
	candidate, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get candidate", err)
	}
	if candidate == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "candidate not found", nil)
	}
	return candidate, nil
}

func (s *CandidateService) ListCandidates(ctx context.Context, qp *params.QueryParams) (*dto.CandidateListResponse, *errors.AppError) {
	candidates, total, err := s.repo.List(ctx, qp)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list candidates", err)
	}
	return &dto.CandidateListResponse{
		Candidates: candidates,
		Total:      total,
		Page:       qp.Page,
		Limit:      qp.Limit,
	}, nil
}

func (s *CandidateService) UpdateCandidate(ctx context.Context, id uuid.UUID, req *dto.UpdateCandidateRequest) (*entity.Candidate, *errors.AppError) {
	candidate, appErr := s.GetCandidate(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil && *req.Name != "" {
		candidate.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		candidate.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		candidate.Phone = *req.Phone
	}
	if req.TechnicalSkills != nil {
		candidate.TechnicalSkills = *req.TechnicalSkills
	}
	if req.ExperienceYears != nil {
		candidate.ExperienceYears = *req.ExperienceYears
	}

	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to update candidate", err)
	}
	return candidate, nil
}

func (s *CandidateService) DeleteCandidate(ctx context.Context, id uuid.UUID) *errors.AppError {
	if _, appErr := s.GetCandidate(ctx, id); appErr != nil {
		return appErr
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to delete candidate", err)
	}
	return nil
}

// UploadResume stores the resume file and saves its URL on the candidate.
func (s *CandidateService) UploadResume(ctx context.Context, id uuid.UUID, filename, contentType string, body io.Reader) (*dto.ResumeUploadResponse, *errors.AppError) {
	candidate, appErr := s.GetCandidate(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	ext := filepath.Ext(filename)
	key := fmt.Sprintf("resumes/%s/%s%s", candidate.ID, utils.GenerateID(), ext)

	url, err := s.storage.Upload(ctx, key, body, contentType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to upload resume", err)
	}

	candidate.ResumeURL = url
	if err := s.repo.Update(ctx, candidate); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to save resume url", err)
	}

	return &dto.ResumeUploadResponse{ResumeURL: url}, nil
}
