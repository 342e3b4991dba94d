package dto

import "time"

// InterviewInvitePayload is the queued task payload for one recipient's
// invitation email.
type InterviewInvitePayload struct {
	Recipient        string    `json:"recipient"`
	Summary          string    `json:"summary"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	ConferencingLink string    `json:"conferencing_link,omitempty"`
	AcceptToken      string    `json:"accept_token"`
	DeclineToken     string    `json:"decline_token"`
}
