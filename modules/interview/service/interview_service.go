package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"smarthire-api/core/config"
	"smarthire-api/core/constants"
	"smarthire-api/core/errors"
	"smarthire-api/core/logger"
	"smarthire-api/core/params"
	calendarService "smarthire-api/modules/calendar/service"
	candidateRepository "smarthire-api/modules/candidate/repository"
	"smarthire-api/modules/interview/dto"
	"smarthire-api/modules/interview/entity"
	"smarthire-api/modules/interview/repository"
	jobRepository "smarthire-api/modules/job/repository"
	notificationDto "smarthire-api/modules/notification/dto"

	"github.com/google/uuid"
)

// ResponseTokenIssuer issues the accept/decline token pair for one recipient.
type ResponseTokenIssuer interface {
	IssueTokens(ctx context.Context, interviewID uuid.UUID, recipient string, start, end time.Time, conferencingLink string) (acceptToken, declineToken string, err error)
}

// InviteDispatcher queues one invitation email.
type InviteDispatcher interface {
	DispatchInvite(ctx context.Context, payload *notificationDto.InterviewInvitePayload) bool
}

type InterviewServiceInterface interface {
	ScheduleInterview(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.ScheduleInterviewResponse, *errors.AppError)
	GetInterview(ctx context.Context, id uuid.UUID) (*entity.Interview, *errors.AppError)
	ListInterviews(ctx context.Context, qp *params.QueryParams, jobID, candidateID string) (*dto.InterviewListResponse, *errors.AppError)
	CancelInterview(ctx context.Context, id uuid.UUID) *errors.AppError
}

type InterviewService struct {
	repo          repository.InterviewRepositoryInterface
	provider      calendarService.Provider
	scheduler     *EventScheduler
	tokens        ResponseTokenIssuer
	notifier      InviteDispatcher
	jobRepo       jobRepository.JobRepositoryInterface
	candidateRepo candidateRepository.CandidateRepositoryInterface
	slotDuration  time.Duration
}

func NewInterviewService(
	repo repository.InterviewRepositoryInterface,
	provider calendarService.Provider,
	scheduler *EventScheduler,
	tokens ResponseTokenIssuer,
	notifier InviteDispatcher,
	jobRepo jobRepository.JobRepositoryInterface,
	candidateRepo candidateRepository.CandidateRepositoryInterface,
) InterviewServiceInterface {
	slotMinutes := config.Get().Scheduler.SlotDurationMinutes
	if slotMinutes <= 0 {
		slotMinutes = constants.DefaultSlotDurationMinutes
	}
	return &InterviewService{
		repo:          repo,
		provider:      provider,
		scheduler:     scheduler,
		tokens:        tokens,
		notifier:      notifier,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		slotDuration:  time.Duration(slotMinutes) * time.Minute,
	}
}

// ScheduleInterview runs the full pipeline: discretize the window, encode
// each attendee's availability, intersect, book the first common slot, then
// issue response tokens and queue invitations.
func (s *InterviewService) ScheduleInterview(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.ScheduleInterviewResponse, *errors.AppError) {
	if len(req.Attendees) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "at least one attendee is required", nil)
	}

	duration := s.slotDuration
	if req.DurationMinutes > 0 {
		duration = time.Duration(req.DurationMinutes) * time.Minute
	}

	slots, err := GenerateSlots(req.WindowStart, req.WindowEnd, duration)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid scheduling window", err)
	}
	if len(slots) == 0 {
		return &dto.ScheduleInterviewResponse{
			Scheduled: false,
			Reason:    "the window is shorter than one interview slot",
		}, nil
	}

	jobID, candidateID, summary, attendees, appErr := s.resolveParticipants(ctx, req)
	if appErr != nil {
		return nil, appErr
	}

	masks := make([]entity.Bitmask, len(attendees))
	busyErrs := make([]error, len(attendees))
	var wg sync.WaitGroup
	for i, email := range attendees {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			busy, err := s.provider.ListBusy(ctx, email, req.WindowStart, req.WindowEnd)
			if err != nil {
				busyErrs[i] = err
				return
			}
			intervals := make([]entity.BusyInterval, len(busy))
			for j, b := range busy {
				intervals[j] = entity.BusyInterval{Start: b.Start, End: b.End}
			}
			masks[i] = EncodeAvailability(intervals, slots)
		}(i, email)
	}
	wg.Wait()

	for i, err := range busyErrs {
		if err != nil {
			logger.Error("InterviewService:ScheduleInterview:BusyLookupFailed", "email", attendees[i], "error", err)
			return nil, errors.NewAppError(errors.ErrProviderUnavailable,
				fmt.Sprintf("failed to read availability for %s", attendees[i]), err)
		}
	}

	common, err := IntersectBitmasks(masks)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to intersect availability", err)
	}

	slot, ok := SelectFirstFree(common, slots)
	if !ok {
		logger.Info("InterviewService:ScheduleInterview:NoCommonSlot",
			"attendees", len(attendees),
			"slots_evaluated", len(slots),
		)
		return &dto.ScheduleInterviewResponse{
			Scheduled:      false,
			Reason:         "no common availability in the requested window",
			SlotsEvaluated: len(slots),
		}, nil
	}

	interviewID := uuid.New()
	event, err := s.scheduler.Schedule(ctx, &ScheduleEventInput{
		InterviewID:  interviewID,
		Summary:      summary,
		Description:  req.Description,
		Slot:         slot,
		Attendees:    attendees,
		Conferencing: req.ConferencingRequested(),
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrProviderUnavailable, "failed to create calendar event", err)
	}

	interview := &entity.Interview{
		ID:               interviewID,
		JobID:            jobID,
		CandidateID:      candidateID,
		Round:            max(req.Round, 1),
		Summary:          summary,
		ProviderEventID:  event.EventID,
		StartTime:        slot.Start,
		EndTime:          slot.End,
		Attendees:        entity.JoinAttendees(attendees),
		ConferencingLink: event.ConferencingLink,
		Status:           entity.InterviewStatusScheduled,
	}
	if err := s.repo.Create(ctx, interview); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to persist interview", err)
	}

	s.notifyAttendees(ctx, interview)

	logger.Info("InterviewService:ScheduleInterview:Scheduled",
		"interview_id", interview.ID,
		"start", slot.Start,
		"attendees", len(attendees),
	)
	return &dto.ScheduleInterviewResponse{
		Scheduled:      true,
		SlotsEvaluated: len(slots),
		Interview:      interview,
	}, nil
}

// notifyAttendees issues each recipient's token pair and queues their invite.
// Failures here are logged but never unwind an already-booked interview.
func (s *InterviewService) notifyAttendees(ctx context.Context, interview *entity.Interview) {
	for _, recipient := range interview.AttendeeList() {
		acceptToken, declineToken, err := s.tokens.IssueTokens(ctx,
			interview.ID, recipient, interview.StartTime, interview.EndTime, interview.ConferencingLink)
		if err != nil {
			logger.Error("InterviewService:NotifyAttendees:TokenError", "recipient", recipient, "error", err)
			continue
		}

		ok := s.notifier.DispatchInvite(ctx, &notificationDto.InterviewInvitePayload{
			Recipient:        recipient,
			Summary:          interview.Summary,
			StartTime:        interview.StartTime,
			EndTime:          interview.EndTime,
			ConferencingLink: interview.ConferencingLink,
			AcceptToken:      acceptToken,
			DeclineToken:     declineToken,
		})
		if !ok {
			logger.Warn("InterviewService:NotifyAttendees:DispatchFailed", "recipient", recipient)
		}
	}
}

// resolveParticipants validates ids, folds the candidate's email into the
// attendee set and composes a summary when the caller left it blank.
func (s *InterviewService) resolveParticipants(ctx context.Context, req *dto.ScheduleInterviewRequest) (*uuid.UUID, *uuid.UUID, string, []string, *errors.AppError) {
	attendees := make([]string, 0, len(req.Attendees)+1)
	seen := make(map[string]bool)
	for _, email := range req.Attendees {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" || seen[email] {
			continue
		}
		seen[email] = true
		attendees = append(attendees, email)
	}
	if len(attendees) == 0 {
		return nil, nil, "", nil, errors.NewAppError(errors.ErrInvalidInput, "at least one attendee is required", nil)
	}

	var jobID, candidateID *uuid.UUID
	var jobTitle, candidateName string

	if req.JobID != "" {
		id, err := uuid.Parse(req.JobID)
		if err != nil {
			return nil, nil, "", nil, errors.NewAppError(errors.ErrInvalidInput, "invalid job_id", nil)
		}
		job, err := s.jobRepo.GetByID(ctx, id)
		if err != nil {
			return nil, nil, "", nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up job", err)
		}
		if job == nil {
			return nil, nil, "", nil, errors.NewAppError(errors.ErrNotFound, "job not found", nil)
		}
		jobID = &id
		jobTitle = job.Title
	}

	if req.CandidateID != "" {
		id, err := uuid.Parse(req.CandidateID)
		if err != nil {
			return nil, nil, "", nil, errors.NewAppError(errors.ErrInvalidInput, "invalid candidate_id", nil)
		}
		candidate, err := s.candidateRepo.GetByID(ctx, id)
		if err != nil {
			return nil, nil, "", nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up candidate", err)
		}
		if candidate == nil {
			return nil, nil, "", nil, errors.NewAppError(errors.ErrNotFound, "candidate not found", nil)
		}
		candidateID = &id
		candidateName = candidate.Name

		email := strings.ToLower(strings.TrimSpace(candidate.Email))
		if email != "" && !seen[email] {
			seen[email] = true
			attendees = append(attendees, email)
		}
	}

	summary := req.Summary
	if summary == "" {
		round := max(req.Round, 1)
		switch {
		case candidateName != "" && jobTitle != "":
			summary = fmt.Sprintf("Interview Round %d: %s for %s", round, candidateName, jobTitle)
		case candidateName != "":
			summary = fmt.Sprintf("Interview Round %d: %s", round, candidateName)
		default:
			summary = fmt.Sprintf("Interview Round %d", round)
		}
	}

	return jobID, candidateID, summary, attendees, nil
}

func (s *InterviewService) GetInterview(ctx context.Context, id uuid.UUID) (*entity.Interview, *errors.AppError) {
	interview, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to get interview", err)
	}
	if interview == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "interview not found", nil)
	}
	return interview, nil
}

func (s *InterviewService) ListInterviews(ctx context.Context, qp *params.QueryParams, jobID, candidateID string) (*dto.InterviewListResponse, *errors.AppError) {
	var filter repository.ListFilter
	if jobID != "" {
		id, err := uuid.Parse(jobID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid job_id", nil)
		}
		filter.JobID = &id
	}
	if candidateID != "" {
		id, err := uuid.Parse(candidateID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "invalid candidate_id", nil)
		}
		filter.CandidateID = &id
	}

	interviews, total, err := s.repo.List(ctx, qp, filter)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list interviews", err)
	}
	return &dto.InterviewListResponse{
		Interviews: interviews,
		Total:      total,
		Page:       qp.Page,
		Limit:      qp.Limit,
	}, nil
}

func (s *InterviewService) CancelInterview(ctx context.Context, id uuid.UUID) *errors.AppError {
	interview, appErr := s.GetInterview(ctx, id)
	if appErr != nil {
		return appErr
	}
	if interview.Status == entity.InterviewStatusCancelled {
		return errors.NewAppError(errors.ErrInvalidInput, "interview is already cancelled", nil)
	}
	if err := s.repo.UpdateStatus(ctx, id, entity.InterviewStatusCancelled); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "failed to cancel interview", err)
	}
	logger.Info("InterviewService:CancelInterview", "interview_id", id)
	return nil
}
