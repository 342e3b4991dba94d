package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"smarthire-api/core/errors"
	"smarthire-api/modules/response/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryResponseRepo mimics the guarded update the SQL repository performs.
type memoryResponseRepo struct {
	mu      sync.Mutex
	records map[string]*entity.InterviewResponse
}

func newMemoryResponseRepo() *memoryResponseRepo {
	return &memoryResponseRepo{records: map[string]*entity.InterviewResponse{}}
}

func (r *memoryResponseRepo) Create(ctx context.Context, rec *entity.InterviewResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rec
	r.records[rec.Token] = &cp
	return nil
}

func (r *memoryResponseRepo) GetByToken(ctx context.Context, token string) (*entity.InterviewResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[token]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *memoryResponseRepo) ResolveIfPending(ctx context.Context, token string, status entity.ResponseStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[token]
	if !ok || rec.Status != entity.StatusPending {
		return false, nil
	}
	now := time.Now()
	rec.Status = status
	rec.RespondedAt = &now
	return true, nil
}

func (r *memoryResponseRepo) ListByInterview(ctx context.Context, interviewID uuid.UUID) ([]entity.InterviewResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.InterviewResponse
	for _, rec := range r.records {
		if rec.InterviewID == interviewID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func TestIssueTokens_CreatesBoundPair(t *testing.T) {
	repo := newMemoryResponseRepo()
	svc := NewResponseService(repo)

	interviewID := uuid.New()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	acceptToken, declineToken, err := svc.IssueTokens(context.Background(),
		interviewID, "dana@example.com", start, start.Add(30*time.Minute), "https://meet/abc")
	require.NoError(t, err)
	require.NotEmpty(t, acceptToken)
	require.NotEmpty(t, declineToken)
	assert.NotEqual(t, acceptToken, declineToken)

	acceptRec, err := repo.GetByToken(context.Background(), acceptToken)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionAccept, acceptRec.Action)
	assert.Equal(t, entity.StatusPending, acceptRec.Status)

	declineRec, err := repo.GetByToken(context.Background(), declineToken)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionDecline, declineRec.Action)
}

func TestRecordResponse_FirstCallWins(t *testing.T) {
	repo := newMemoryResponseRepo()
	svc := NewResponseService(repo)

	interviewID := uuid.New()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	acceptToken, _, err := svc.IssueTokens(context.Background(),
		interviewID, "dana@example.com", start, start.Add(30*time.Minute), "")
	require.NoError(t, err)

	first, appErr := svc.RecordResponse(context.Background(), acceptToken, "accept")
	require.Nil(t, appErr)
	assert.False(t, first.AlreadyResponded)
	assert.Equal(t, entity.StatusAccepted, first.Status)

	second, appErr := svc.RecordResponse(context.Background(), acceptToken, "accept")
	require.Nil(t, appErr)
	assert.True(t, second.AlreadyResponded)
	assert.Equal(t, entity.StatusAccepted, second.Status)

	rec, err := repo.GetByToken(context.Background(), acceptToken)
	require.NoError(t, err)
	require.NotNil(t, rec.RespondedAt)
	firstRespondedAt := *rec.RespondedAt

	// A second resolving call must leave the record untouched.
	_, appErr = svc.RecordResponse(context.Background(), acceptToken, "accept")
	require.Nil(t, appErr)
	rec, err = repo.GetByToken(context.Background(), acceptToken)
	require.NoError(t, err)
	assert.Equal(t, firstRespondedAt, *rec.RespondedAt)
}

func TestRecordResponse_UnknownToken(t *testing.T) {
	svc := NewResponseService(newMemoryResponseRepo())

	_, appErr := svc.RecordResponse(context.Background(), "nope", "accept")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestRecordResponse_ActionMismatch(t *testing.T) {
	repo := newMemoryResponseRepo()
	svc := NewResponseService(repo)

	acceptToken, _, err := svc.IssueTokens(context.Background(),
		uuid.New(), "dana@example.com", time.Now(), time.Now().Add(30*time.Minute), "")
	require.NoError(t, err)

	_, appErr := svc.RecordResponse(context.Background(), acceptToken, "decline")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestGetInterviewResponses_AggregatesPerRecipient(t *testing.T) {
	repo := newMemoryResponseRepo()
	svc := NewResponseService(repo)

	interviewID := uuid.New()
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	acceptA, _, err := svc.IssueTokens(context.Background(), interviewID, "a@example.com", start, start.Add(30*time.Minute), "")
	require.NoError(t, err)
	_, _, err = svc.IssueTokens(context.Background(), interviewID, "b@example.com", start, start.Add(30*time.Minute), "")
	require.NoError(t, err)

	_, appErr := svc.RecordResponse(context.Background(), acceptA, "")
	require.Nil(t, appErr)

	resp, appErr := svc.GetInterviewResponses(context.Background(), interviewID)
	require.Nil(t, appErr)
	require.Len(t, resp.Recipients, 2)

	statuses := map[string]entity.ResponseStatus{}
	for _, rs := range resp.Recipients {
		statuses[rs.Recipient] = rs.Status
	}
	assert.Equal(t, entity.StatusAccepted, statuses["a@example.com"])
	assert.Equal(t, entity.StatusPending, statuses["b@example.com"])
}
