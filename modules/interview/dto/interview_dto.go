package dto

import (
	"time"

	"smarthire-api/modules/interview/entity"
)

// ScheduleInterviewRequest asks the pipeline to find a common slot inside the
// window and book it.
type ScheduleInterviewRequest struct {
	JobID           string    `json:"job_id,omitempty"`
	CandidateID     string    `json:"candidate_id,omitempty"`
	Round           int       `json:"round"`
	Summary         string    `json:"summary,omitempty"`
	Description     string    `json:"description,omitempty"`
	Attendees       []string  `json:"attendees" validate:"required"`
	WindowStart     time.Time `json:"window_start" validate:"required"`
	WindowEnd       time.Time `json:"window_end" validate:"required"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Conferencing    *bool     `json:"conferencing,omitempty"`
}

// ConferencingRequested defaults to true when the field is omitted.
func (r *ScheduleInterviewRequest) ConferencingRequested() bool {
	if r.Conferencing == nil {
		return true
	}
	return *r.Conferencing
}

// ScheduleInterviewResponse reports the outcome. Scheduled false with a
// Reason means no common slot existed; that is not an error.
type ScheduleInterviewResponse struct {
	Scheduled      bool              `json:"scheduled"`
	Reason         string            `json:"reason,omitempty"`
	SlotsEvaluated int               `json:"slots_evaluated"`
	Interview      *entity.Interview `json:"interview,omitempty"`
}

type InterviewListResponse struct {
	Interviews []entity.Interview `json:"interviews"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
