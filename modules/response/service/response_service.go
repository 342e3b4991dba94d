package service

import (
	"context"
	"time"

	"smarthire-api/core/errors"
	"smarthire-api/core/logger"
	"smarthire-api/core/utils"
	"smarthire-api/modules/response/dto"
	"smarthire-api/modules/response/entity"
	"smarthire-api/modules/response/repository"

	"github.com/google/uuid"
)

type ResponseServiceInterface interface {
	IssueTokens(ctx context.Context, interviewID uuid.UUID, recipient string, start, end time.Time, conferencingLink string) (acceptToken, declineToken string, err error)
	RecordResponse(ctx context.Context, token, action string) (*dto.RespondResult, *errors.AppError)
	GetInterviewResponses(ctx context.Context, interviewID uuid.UUID) (*dto.InterviewResponsesResponse, *errors.AppError)
}

type ResponseService struct {
	repo repository.ResponseRepositoryInterface
}

func NewResponseService(repo repository.ResponseRepositoryInterface) ResponseServiceInterface {
	return &ResponseService{repo: repo}
}

// IssueTokens creates the accept/decline token pair for one recipient. The
// decision is bound at issue time, so resolving a token later needs no
// request body and cannot be replayed onto the other action.
func (s *ResponseService) IssueTokens(ctx context.Context, interviewID uuid.UUID, recipient string, start, end time.Time, conferencingLink string) (string, string, error) {
	now := time.Now()
	pair := [2]entity.ResponseAction{entity.ActionAccept, entity.ActionDecline}
	tokens := [2]string{}

	for i, action := range pair {
		token := utils.GenerateResponseToken()
		rec := &entity.InterviewResponse{
			Token:            token,
			InterviewID:      interviewID,
			Recipient:        recipient,
			Action:           action,
			StartTime:        start,
			EndTime:          end,
			ConferencingLink: conferencingLink,
			Status:           entity.StatusPending,
			SentAt:           now,
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			return "", "", err
		}
		tokens[i] = token
	}

	logger.Info("ResponseService:IssueTokens", "interview_id", interviewID, "recipient", recipient)
	return tokens[0], tokens[1], nil
}

// RecordResponse resolves one token. The first resolving call wins; any later
// call reports the already-recorded outcome without touching the record.
func (s *ResponseService) RecordResponse(ctx context.Context, token, action string) (*dto.RespondResult, *errors.AppError) {
	rec, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up response token", err)
	}
	if rec == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "unknown response token", nil)
	}
	if action != "" && action != string(rec.Action) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "token does not match the requested action", nil)
	}

	target := entity.StatusFor(rec.Action)
	resolved, err := s.repo.ResolveIfPending(ctx, token, target)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to record response", err)
	}

	result := &dto.RespondResult{
		Recipient:        rec.Recipient,
		Action:           rec.Action,
		Status:           target,
		AlreadyResponded: !resolved,
		StartTime:        rec.StartTime,
		EndTime:          rec.EndTime,
		ConferencingLink: rec.ConferencingLink,
	}

	if !resolved {
		current, err := s.repo.GetByToken(ctx, token)
		if err == nil && current != nil {
			result.Status = current.Status
		}
		logger.Info("ResponseService:RecordResponse:AlreadyResolved", "recipient", rec.Recipient, "status", result.Status)
		return result, nil
	}

	logger.Info("ResponseService:RecordResponse:Resolved",
		"interview_id", rec.InterviewID,
		"recipient", rec.Recipient,
		"action", rec.Action,
	)
	return result, nil
}

// GetInterviewResponses aggregates each recipient's token pair into one status.
func (s *ResponseService) GetInterviewResponses(ctx context.Context, interviewID uuid.UUID) (*dto.InterviewResponsesResponse, *errors.AppError) {
	recs, err := s.repo.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to list responses", err)
	}

	byRecipient := make(map[string]*dto.RecipientStatus)
	var order []string
	for i := range recs {
		rec := &recs[i]
		rs, ok := byRecipient[rec.Recipient]
		if !ok {
			rs = &dto.RecipientStatus{Recipient: rec.Recipient, Status: entity.StatusPending}
			byRecipient[rec.Recipient] = rs
			order = append(order, rec.Recipient)
		}
		if rec.Status != entity.StatusPending {
			rs.Status = rec.Status
			rs.RespondedAt = rec.RespondedAt
		}
	}

	resp := &dto.InterviewResponsesResponse{
		InterviewID: interviewID.String(),
		Recipients:  make([]dto.RecipientStatus, 0, len(order)),
	}
	for _, recipient := range order {
		resp.Recipients = append(resp.Recipients, *byRecipient[recipient])
	}
	return resp, nil
}
