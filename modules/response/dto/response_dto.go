package dto

import (
	"time"

	"smarthire-api/modules/response/entity"
)

// RespondResult is the outcome of resolving one response token.
type RespondResult struct {
	Recipient        string                `json:"recipient"`
	Action           entity.ResponseAction `json:"action"`
	Status           entity.ResponseStatus `json:"status"`
	AlreadyResponded bool                  `json:"already_responded"`
	StartTime        time.Time             `json:"start_time"`
	EndTime          time.Time             `json:"end_time"`
	ConferencingLink string                `json:"conferencing_link,omitempty"`
}

// RecipientStatus is one recipient's aggregate state, derived from their
// token pair.
type RecipientStatus struct {
	Recipient   string                `json:"recipient"`
	Status      entity.ResponseStatus `json:"status"`
	RespondedAt *time.Time            `json:"responded_at,omitempty"`
}

type InterviewResponsesResponse struct {
	InterviewID string            `json:"interview_id"`
	Recipients  []RecipientStatus `json:"recipients"`
}
