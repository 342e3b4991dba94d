package dto

import "smarthire-api/modules/job/entity"

type CreateJobRequest struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	RequiredSkills string `json:"required_skills"`
}

type UpdateJobRequest struct {
	Title          *string `json:"title,omitempty"`
	Description    *string `json:"description,omitempty"`
	RequiredSkills *string `json:"required_skills,omitempty"`
	Status         *string `json:"status,omitempty"`
}

type JobListResponse struct {
	Jobs  []entity.Job `json:"jobs"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}
