package entity

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is an applicant tied to a job posting.
type Candidate struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	JobID           *uuid.UUID `db:"job_id" json:"job_id,omitempty"`
	Name            string     `db:"name" json:"name"`
	Email           string     `db:"email" json:"email"`
	Phone           string     `db:"phone" json:"phone,omitempty"`
	TechnicalSkills string     `db:"technical_skills" json:"technical_skills,omitempty"`
	ExperienceYears float64    `db:"experience_years" json:"experience_years"`
	ResumeURL       string     `db:"resume_url" json:"resume_url,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
