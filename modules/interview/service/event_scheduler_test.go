package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	calendarDto "smarthire-api/modules/calendar/dto"
	"smarthire-api/modules/interview/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	failBefore int
	calls      int
	requestIDs []string
	busy       map[string][]calendarDto.BusyPeriod
	busyErr    error
	resp       *calendarDto.ProviderEventResponse
}

func (p *fakeProvider) ListBusy(ctx context.Context, email string, start, end time.Time) ([]calendarDto.BusyPeriod, error) {
	if p.busyErr != nil {
		return nil, p.busyErr
	}
	return p.busy[email], nil
}

func (p *fakeProvider) CreateEvent(ctx context.Context, req *calendarDto.ProviderEventRequest) (*calendarDto.ProviderEventResponse, error) {
	p.calls++
	p.requestIDs = append(p.requestIDs, req.RequestID)
	if p.calls <= p.failBefore {
		return nil, fmt.Errorf("provider error on call %d", p.calls)
	}
	if p.resp != nil {
		return p.resp, nil
	}
	return &calendarDto.ProviderEventResponse{EventID: "evt-1"}, nil
}

func testInput() *ScheduleEventInput {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &ScheduleEventInput{
		InterviewID:  uuid.New(),
		Summary:      "Interview Round 1",
		Slot:         entity.TimeSlot{Start: start, End: start.Add(30 * time.Minute)},
		Attendees:    []string{"interviewer@example.com", "candidate@example.com"},
		Conferencing: true,
	}
}

func TestEventScheduler_SucceedsFirstAttempt(t *testing.T) {
	provider := &fakeProvider{
		resp: &calendarDto.ProviderEventResponse{
			EventID: "evt-42",
			EntryPoints: []calendarDto.ConferenceEntryPoint{
				{Type: "video", URI: "https://meet.example.com/abc"},
			},
		},
	}
	scheduler := NewEventScheduler(provider, 3, time.Millisecond)

	event, err := scheduler.Schedule(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, "evt-42", event.EventID)
	assert.Equal(t, "https://meet.example.com/abc", event.ConferencingLink)
}

func TestEventScheduler_RetriesThenSucceeds(t *testing.T) {
	provider := &fakeProvider{failBefore: 2}
	scheduler := NewEventScheduler(provider, 3, time.Millisecond)

	event, err := scheduler.Schedule(context.Background(), testInput())
	require.NoError(t, err)
	assert.Equal(t, 3, provider.calls)
	assert.Equal(t, "evt-1", event.EventID)

	// Each attempt must carry a fresh conference request id.
	seen := map[string]bool{}
	for _, id := range provider.requestIDs {
		assert.False(t, seen[id], "request id %q reused", id)
		seen[id] = true
	}
}

func TestEventScheduler_ExhaustsRetries(t *testing.T) {
	provider := &fakeProvider{failBefore: 10}
	scheduler := NewEventScheduler(provider, 3, time.Millisecond)

	_, err := scheduler.Schedule(context.Background(), testInput())
	require.Error(t, err)

	var failed *SchedulingFailedError
	require.True(t, stderrors.As(err, &failed))
	assert.Equal(t, 3, failed.Attempts)
	assert.Equal(t, 3, provider.calls)
}

func TestEventScheduler_SingleRetryBudget(t *testing.T) {
	provider := &fakeProvider{failBefore: 10}
	scheduler := NewEventScheduler(provider, 1, time.Millisecond)

	_, err := scheduler.Schedule(context.Background(), testInput())
	require.Error(t, err)
	assert.Equal(t, 1, provider.calls)
}

func TestEventScheduler_DefaultsWhenUnconfigured(t *testing.T) {
	provider := &fakeProvider{failBefore: 10}
	scheduler := NewEventScheduler(provider, 0, 0)

	_, err := scheduler.Schedule(context.Background(), testInput())
	require.Error(t, err)
	assert.Equal(t, 3, provider.calls)
}

func TestExtractConferencingLink(t *testing.T) {
	assert.Equal(t, "", extractConferencingLink(&calendarDto.ProviderEventResponse{}))

	assert.Equal(t, "https://meet/video", extractConferencingLink(&calendarDto.ProviderEventResponse{
		EntryPoints: []calendarDto.ConferenceEntryPoint{
			{Type: "phone", URI: "tel:+123"},
			{Type: "video", URI: "https://meet/video"},
		},
	}))

	assert.Equal(t, "tel:+123", extractConferencingLink(&calendarDto.ProviderEventResponse{
		EntryPoints: []calendarDto.ConferenceEntryPoint{
			{Type: "phone", URI: "tel:+123"},
		},
	}))
}
