package entity

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Job is an open position candidates interview for.
type Job struct {
	ID             uuid.UUID `db:"id" json:"id"`
	OwnerID        uuid.UUID `db:"owner_id" json:"owner_id"`
	Title          string    `db:"title" json:"title"`
	RoleSlug       string    `db:"role_slug" json:"role_slug"`
	Description    string    `db:"description" json:"description"`
	RequiredSkills string    `db:"required_skills" json:"required_skills"`
	Status         JobStatus `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
