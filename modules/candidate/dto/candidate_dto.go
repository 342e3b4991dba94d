package dto

import "smarthire-api/modules/candidate/entity"

type CreateCandidateRequest struct {
	JobID           string  `json:"job_id,omitempty"`
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           string  `json:"phone"`
	TechnicalSkills string  `json:"technical_skills"`
	ExperienceYears float64 `json:"experience_years"`
}

type UpdateCandidateRequest struct {
	Name            *string  `json:"name,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	TechnicalSkills *string  `json:"technical_skills,omitempty"`
	ExperienceYears *float64 `json:"experience_years,omitempty"`
}

type CandidateListResponse struct {
	Candidates []entity.Candidate `json:"candidates"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type ResumeUploadResponse struct {
	ResumeURL string `json:"resume_url"`
}
