package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InterviewStatus represents the lifecycle state of an interview.
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

// Interview is a scheduled interview event, persisted after the calendar
// provider has accepted it.
type Interview struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	JobID            *uuid.UUID      `db:"job_id" json:"job_id,omitempty"`
	CandidateID      *uuid.UUID      `db:"candidate_id" json:"candidate_id,omitempty"`
	Round            int             `db:"round" json:"round"`
	Summary          string          `db:"summary" json:"summary"`
	ProviderEventID  string          `db:"provider_event_id" json:"provider_event_id"`
	StartTime        time.Time       `db:"start_time" json:"start_time"`
	EndTime          time.Time       `db:"end_time" json:"end_time"`
	Attendees        string          `db:"attendees" json:"-"`
	ConferencingLink string          `db:"conferencing_link" json:"conferencing_link,omitempty"`
	Status           InterviewStatus `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// AttendeeList splits the stored comma-separated attendee emails.
func (i *Interview) AttendeeList() []string {
	if i.Attendees == "" {
		return nil
	}
	return strings.Split(i.Attendees, ",")
}

// JoinAttendees is the inverse of AttendeeList.
func JoinAttendees(emails []string) string {
	return strings.Join(emails, ",")
}
