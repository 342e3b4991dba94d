package service

import (
	"context"
	"fmt"
	"time"

	"smarthire-api/core/constants"
	"smarthire-api/core/logger"
	calendarDto "smarthire-api/modules/calendar/dto"
	calendarService "smarthire-api/modules/calendar/service"
	"smarthire-api/modules/interview/entity"

	"github.com/google/uuid"
)

// SchedulingFailedError reports that every attempt to book the event with the
// provider failed.
type SchedulingFailedError struct {
	Attempts int
	Err      error
}

func (e *SchedulingFailedError) Error() string {
	return fmt.Sprintf("event scheduling failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *SchedulingFailedError) Unwrap() error {
	return e.Err
}

// ScheduleEventInput carries everything the scheduler needs for one booking.
type ScheduleEventInput struct {
	InterviewID  uuid.UUID
	Summary      string
	Description  string
	Slot         entity.TimeSlot
	Attendees    []string
	Conferencing bool
}

// ScheduledEvent is the provider-side result of a successful booking.
type ScheduledEvent struct {
	EventID          string
	HTMLLink         string
	ConferencingLink string
}

// EventScheduler books calendar events with bounded retries.
type EventScheduler struct {
	provider   calendarService.Provider
	maxRetries int
	backoff    time.Duration
}

func NewEventScheduler(provider calendarService.Provider, maxRetries int, backoff time.Duration) *EventScheduler {
	if maxRetries <= 0 {
		maxRetries = constants.DefaultMaxScheduleRetries
	}
	if backoff <= 0 {
		backoff = constants.DefaultRetryBackoff
	}
	return &EventScheduler{
		provider:   provider,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// Schedule creates the event, retrying transient provider failures. Each
// attempt gets a fresh conference request id so a half-created conference on
// the provider side cannot poison the retry.
func (s *EventScheduler) Schedule(ctx context.Context, input *ScheduleEventInput) (*ScheduledEvent, error) {
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		resp, err := s.provider.CreateEvent(ctx, &calendarDto.ProviderEventRequest{
			Summary:               input.Summary,
			Description:           input.Description,
			Start:                 input.Slot.Start,
			End:                   input.Slot.End,
			Attendees:             input.Attendees,
			ConferencingRequested: input.Conferencing,
			RequestID:             fmt.Sprintf("%s-%d", input.InterviewID, attempt),
		})
		if err == nil {
			return &ScheduledEvent{
				EventID:          resp.EventID,
				HTMLLink:         resp.HTMLLink,
				ConferencingLink: extractConferencingLink(resp),
			}, nil
		}

		lastErr = err
		logger.Warn("EventScheduler:Schedule:AttemptFailed",
			"interview_id", input.InterviewID,
			"attempt", attempt,
			"max_retries", s.maxRetries,
			"error", err,
		)

		if attempt < s.maxRetries {
			select {
			case <-ctx.Done():
				return nil, &SchedulingFailedError{Attempts: attempt, Err: ctx.Err()}
			case <-time.After(s.backoff * time.Duration(attempt)):
			}
		}
	}
	return nil, &SchedulingFailedError{Attempts: s.maxRetries, Err: lastErr}
}

// extractConferencingLink prefers a video entry point, then falls back to the
// first one offered. Empty means the event carries no conference.
func extractConferencingLink(resp *calendarDto.ProviderEventResponse) string {
	for _, ep := range resp.EntryPoints {
		if ep.Type == "video" {
			return ep.URI
		}
	}
	if len(resp.EntryPoints) > 0 {
		return resp.EntryPoints[0].URI
	}
	return ""
}
