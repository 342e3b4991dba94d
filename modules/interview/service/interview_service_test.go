package service

import (
	"context"
	"os"
	"testing"
	"time"

	"smarthire-api/core/config"
	"smarthire-api/core/errors"
	"smarthire-api/core/params"
	calendarDto "smarthire-api/modules/calendar/dto"
	candidateEntity "smarthire-api/modules/candidate/entity"
	"smarthire-api/modules/interview/dto"
	"smarthire-api/modules/interview/entity"
	"smarthire-api/modules/interview/repository"
	jobEntity "smarthire-api/modules/job/entity"
	notificationDto "smarthire-api/modules/notification/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config.Set(&config.Config{
		Scheduler: config.SchedulerConfig{
			SlotDurationMinutes: 30,
			MaxRetries:          3,
			RetryBackoffMS:      1,
		},
	})
	os.Exit(m.Run())
}

type fakeInterviewRepo struct {
	created []*entity.Interview
	byID    map[uuid.UUID]*entity.Interview
}

func (r *fakeInterviewRepo) Create(ctx context.Context, interview *entity.Interview) error {
	r.created = append(r.created, interview)
	return nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Interview, error) {
	return r.byID[id], nil
}

func (r *fakeInterviewRepo) List(ctx context.Context, qp *params.QueryParams, filter repository.ListFilter) ([]entity.Interview, int, error) {
	return nil, 0, nil
}

func (r *fakeInterviewRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InterviewStatus) error {
	if iv, ok := r.byID[id]; ok {
		iv.Status = status
	}
	return nil
}

type fakeTokenIssuer struct {
	issued []string
}

func (f *fakeTokenIssuer) IssueTokens(ctx context.Context, interviewID uuid.UUID, recipient string, start, end time.Time, link string) (string, string, error) {
	f.issued = append(f.issued, recipient)
	return "accept-" + recipient, "decline-" + recipient, nil
}

type fakeDispatcher struct {
	payloads []*notificationDto.InterviewInvitePayload
}

func (f *fakeDispatcher) DispatchInvite(ctx context.Context, payload *notificationDto.InterviewInvitePayload) bool {
	f.payloads = append(f.payloads, payload)
	return true
}

type fakeJobRepo struct {
	job *jobEntity.Job
}

func (r *fakeJobRepo) Create(ctx context.Context, job *jobEntity.Job) (*jobEntity.Job, error) {
	return job, nil
}
func (r *fakeJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*jobEntity.Job, error) {
	if r.job != nil && r.job.ID == id {
		return r.job, nil
	}
	return nil, nil
}
func (r *fakeJobRepo) List(ctx context.Context, qp *params.QueryParams) ([]jobEntity.Job, int, error) {
	return nil, 0, nil
}
func (r *fakeJobRepo) Update(ctx context.Context, job *jobEntity.Job) error { return nil }
func (r *fakeJobRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }

type fakeCandidateRepo struct {
	candidate *candidateEntity.Candidate
}

func (r *fakeCandidateRepo) Create(ctx context.Context, c *candidateEntity.Candidate) (*candidateEntity.Candidate, error) {
	return c, nil
}
func (r *fakeCandidateRepo) GetByID(ctx context.Context, id uuid.UUID) (*candidateEntity.Candidate, error) {
	if r.candidate != nil && r.candidate.ID == id {
		return r.candidate, nil
	}
	return nil, nil
}
func (r *fakeCandidateRepo) List(ctx context.Context, qp *params.QueryParams) ([]candidateEntity.Candidate, int, error) {
	return nil, 0, nil
}
func (r *fakeCandidateRepo) Update(ctx context.Context, c *candidateEntity.Candidate) error {
	return nil
}
func (r *fakeCandidateRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type pipelineFixture struct {
	service    InterviewServiceInterface
	repo       *fakeInterviewRepo
	provider   *fakeProvider
	tokens     *fakeTokenIssuer
	dispatcher *fakeDispatcher
	jobs       *fakeJobRepo
	candidates *fakeCandidateRepo
}

func newPipelineFixture(provider *fakeProvider) *pipelineFixture {
	f := &pipelineFixture{
		repo:       &fakeInterviewRepo{byID: map[uuid.UUID]*entity.Interview{}},
		provider:   provider,
		tokens:     &fakeTokenIssuer{},
		dispatcher: &fakeDispatcher{},
		jobs:       &fakeJobRepo{},
		candidates: &fakeCandidateRepo{},
	}
	scheduler := NewEventScheduler(provider, 3, time.Millisecond)
	f.service = NewInterviewService(f.repo, provider, scheduler, f.tokens, f.dispatcher, f.jobs, f.candidates)
	return f
}

func windowReq(attendees ...string) *dto.ScheduleInterviewRequest {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	return &dto.ScheduleInterviewRequest{
		Attendees:   attendees,
		WindowStart: start,
		WindowEnd:   start.Add(2 * time.Hour),
	}
}

func TestScheduleInterview_BooksFirstCommonSlot(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{
		busy: map[string][]calendarDto.BusyPeriod{
			// Interviewer busy for the first hour, candidate busy 10:30-11:00.
			"interviewer@example.com": {{Start: start, End: start.Add(time.Hour)}},
			"candidate@example.com":   {{Start: start.Add(90 * time.Minute), End: start.Add(2 * time.Hour)}},
		},
		resp: &calendarDto.ProviderEventResponse{
			EventID: "evt-7",
			EntryPoints: []calendarDto.ConferenceEntryPoint{
				{Type: "video", URI: "https://meet.example.com/xyz"},
			},
		},
	}
	f := newPipelineFixture(provider)

	resp, appErr := f.service.ScheduleInterview(context.Background(),
		windowReq("interviewer@example.com", "candidate@example.com"))
	require.Nil(t, appErr)
	require.True(t, resp.Scheduled)
	require.NotNil(t, resp.Interview)

	// First commonly free slot is 10:00-10:30.
	assert.Equal(t, start.Add(time.Hour), resp.Interview.StartTime)
	assert.Equal(t, start.Add(90*time.Minute), resp.Interview.EndTime)
	assert.Equal(t, "evt-7", resp.Interview.ProviderEventID)
	assert.Equal(t, "https://meet.example.com/xyz", resp.Interview.ConferencingLink)
	assert.Equal(t, entity.InterviewStatusScheduled, resp.Interview.Status)

	require.Len(t, f.repo.created, 1)
	assert.ElementsMatch(t, []string{"interviewer@example.com", "candidate@example.com"}, f.tokens.issued)
	require.Len(t, f.dispatcher.payloads, 2)
	assert.Equal(t, "accept-interviewer@example.com", f.dispatcher.payloads[0].AcceptToken)
}

func TestScheduleInterview_NoCommonSlotIsNotAnError(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	provider := &fakeProvider{
		busy: map[string][]calendarDto.BusyPeriod{
			"a@example.com": {{Start: start, End: start.Add(time.Hour)}},
			"b@example.com": {{Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)}},
		},
	}
	f := newPipelineFixture(provider)

	resp, appErr := f.service.ScheduleInterview(context.Background(), windowReq("a@example.com", "b@example.com"))
	require.Nil(t, appErr)
	assert.False(t, resp.Scheduled)
	assert.NotEmpty(t, resp.Reason)
	assert.Equal(t, 4, resp.SlotsEvaluated)

	assert.Zero(t, provider.calls)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.tokens.issued)
}

func TestScheduleInterview_InvalidWindow(t *testing.T) {
	f := newPipelineFixture(&fakeProvider{})

	req := windowReq("a@example.com")
	req.WindowEnd = req.WindowStart

	_, appErr := f.service.ScheduleInterview(context.Background(), req)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestScheduleInterview_NoAttendees(t *testing.T) {
	f := newPipelineFixture(&fakeProvider{})

	_, appErr := f.service.ScheduleInterview(context.Background(), windowReq())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestScheduleInterview_BusyLookupFailure(t *testing.T) {
	provider := &fakeProvider{busyErr: context.DeadlineExceeded}
	f := newPipelineFixture(provider)

	_, appErr := f.service.ScheduleInterview(context.Background(), windowReq("a@example.com"))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrProviderUnavailable, appErr.Code)
	assert.Empty(t, f.repo.created)
}

func TestScheduleInterview_EventCreationExhaustsRetries(t *testing.T) {
	provider := &fakeProvider{failBefore: 10}
	f := newPipelineFixture(provider)

	_, appErr := f.service.ScheduleInterview(context.Background(), windowReq("a@example.com"))
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrProviderUnavailable, appErr.Code)
	assert.Equal(t, 3, provider.calls)
	assert.Empty(t, f.repo.created)
	assert.Empty(t, f.tokens.issued)
}

func TestScheduleInterview_CandidateFoldedIntoAttendees(t *testing.T) {
	provider := &fakeProvider{}
	f := newPipelineFixture(provider)

	jobID := uuid.New()
	candidateID := uuid.New()
	f.jobs.job = &jobEntity.Job{ID: jobID, Title: "Backend Engineer"}
	f.candidates.candidate = &candidateEntity.Candidate{
		ID:    candidateID,
		Name:  "Dana Lee",
		Email: "Dana.Lee@Example.com",
	}

	req := windowReq("interviewer@example.com")
	req.JobID = jobID.String()
	req.CandidateID = candidateID.String()
	req.Round = 2

	resp, appErr := f.service.ScheduleInterview(context.Background(), req)
	require.Nil(t, appErr)
	require.True(t, resp.Scheduled)

	attendees := resp.Interview.AttendeeList()
	assert.ElementsMatch(t, []string{"interviewer@example.com", "dana.lee@example.com"}, attendees)
	assert.Equal(t, "Interview Round 2: Dana Lee for Backend Engineer", resp.Interview.Summary)
	assert.Equal(t, &jobID, resp.Interview.JobID)
	assert.Equal(t, &candidateID, resp.Interview.CandidateID)
}

func TestCancelInterview(t *testing.T) {
	f := newPipelineFixture(&fakeProvider{})
	id := uuid.New()
	f.repo.byID[id] = &entity.Interview{ID: id, Status: entity.InterviewStatusScheduled}

	appErr := f.service.CancelInterview(context.Background(), id)
	require.Nil(t, appErr)
	assert.Equal(t, entity.InterviewStatusCancelled, f.repo.byID[id].Status)

	appErr = f.service.CancelInterview(context.Background(), id)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
