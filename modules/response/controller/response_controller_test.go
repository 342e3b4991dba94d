package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	coreController "smarthire-api/core/controller"
	"smarthire-api/core/errors"
	"smarthire-api/modules/response/dto"
	"smarthire-api/modules/response/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResponseService struct {
	results map[string]*dto.RespondResult
}

func (f *fakeResponseService) IssueTokens(ctx context.Context, interviewID uuid.UUID, recipient string, start, end time.Time, link string) (string, string, error) {
	return "", "", nil
}

func (f *fakeResponseService) RecordResponse(ctx context.Context, token, action string) (*dto.RespondResult, *errors.AppError) {
	result, ok := f.results[token]
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "unknown response token", nil)
	}
	if action != "" && action != string(result.Action) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "token does not match the requested action", nil)
	}
	return result, nil
}

func (f *fakeResponseService) GetInterviewResponses(ctx context.Context, interviewID uuid.UUID) (*dto.InterviewResponsesResponse, *errors.AppError) {
	return &dto.InterviewResponsesResponse{InterviewID: interviewID.String()}, nil
}

func respondRequest(t *testing.T, svc *fakeResponseService, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	ctrl := NewResponseController(coreController.NewBaseController(), svc)
	require.NoError(t, ctrl.Respond(ctx))
	return rec
}

func TestRespond_MissingToken(t *testing.T) {
	rec := respondRequest(t, &fakeResponseService{}, "/respond")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRespond_UnknownToken(t *testing.T) {
	rec := respondRequest(t, &fakeResponseService{results: map[string]*dto.RespondResult{}}, "/respond?id=missing&action=accept")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRespond_Accept(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := &fakeResponseService{results: map[string]*dto.RespondResult{
		"tok-accept": {
			Recipient:        "dana@example.com",
			Action:           entity.ActionAccept,
			Status:           entity.StatusAccepted,
			StartTime:        start,
			EndTime:          start.Add(30 * time.Minute),
			ConferencingLink: "https://meet.example.com/abc",
		},
	}}

	rec := respondRequest(t, svc, "/respond?id=tok-accept&action=accept")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Interview accepted")
	assert.Contains(t, rec.Body.String(), "https://meet.example.com/abc")
}

func TestRespond_Decline(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := &fakeResponseService{results: map[string]*dto.RespondResult{
		"tok-decline": {
			Recipient: "dana@example.com",
			Action:    entity.ActionDecline,
			Status:    entity.StatusDeclined,
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
		},
	}}

	rec := respondRequest(t, svc, "/respond?id=tok-decline&action=decline")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Interview declined")
}

func TestRespond_AlreadyResponded(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := &fakeResponseService{results: map[string]*dto.RespondResult{
		"tok": {
			Recipient:        "dana@example.com",
			Action:           entity.ActionAccept,
			Status:           entity.StatusAccepted,
			AlreadyResponded: true,
			StartTime:        start,
			EndTime:          start.Add(30 * time.Minute),
		},
	}}

	rec := respondRequest(t, svc, "/respond?id=tok&action=accept")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "already")
}

func TestRespond_ActionMismatch(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := &fakeResponseService{results: map[string]*dto.RespondResult{
		"tok": {
			Recipient: "dana@example.com",
			Action:    entity.ActionAccept,
			Status:    entity.StatusAccepted,
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
		},
	}}

	rec := respondRequest(t, svc, "/respond?id=tok&action=decline")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
