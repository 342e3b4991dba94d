package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResponseAction is the decision a token is bound to at issue time.
type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionDecline ResponseAction = "decline"
)

// ResponseStatus is the lifecycle state of one recipient's token record.
type ResponseStatus string

const (
	StatusPending  ResponseStatus = "pending"
	StatusAccepted ResponseStatus = "accepted"
	StatusDeclined ResponseStatus = "declined"
)

// InterviewResponse is one single-use response token. Each recipient gets a
// pair of records, one bound to accept and one to decline, so the response
// link itself carries no mutable state.
type InterviewResponse struct {
	Token            string         `db:"token" json:"-"`
	InterviewID      uuid.UUID      `db:"interview_id" json:"interview_id"`
	Recipient        string         `db:"recipient" json:"recipient"`
	Action           ResponseAction `db:"action" json:"action"`
	StartTime        time.Time      `db:"start_time" json:"start_time"`
	EndTime          time.Time      `db:"end_time" json:"end_time"`
	ConferencingLink string         `db:"conferencing_link" json:"conferencing_link,omitempty"`
	Status           ResponseStatus `db:"status" json:"status"`
	SentAt           time.Time      `db:"sent_at" json:"sent_at"`
	RespondedAt      *time.Time     `db:"responded_at" json:"responded_at,omitempty"`
}

// StatusFor maps a bound action to the status a successful resolution records.
func StatusFor(action ResponseAction) ResponseStatus {
	if action == ActionAccept {
		return StatusAccepted
	}
	return StatusDeclined
}
