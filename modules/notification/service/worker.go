package service

import (
	"context"
	"encoding/json"
	"fmt"

	"smarthire-api/core/config"
	"smarthire-api/core/logger"
	"smarthire-api/modules/notification/dto"

	"github.com/hibiken/asynq"
)

// MailWorker consumes queued notification tasks.
type MailWorker struct {
	mailer    Mailer
	publicURL string
}

func NewMailWorker(mailer Mailer) *MailWorker {
	return &MailWorker{
		mailer:    mailer,
		publicURL: config.Get().Server.PublicURL,
	}
}

// HandleInterviewInvite sends one invitation email. Returning an error lets
// asynq retry with its own backoff.
func (w *MailWorker) HandleInterviewInvite(ctx context.Context, t *asynq.Task) error {
	var payload dto.InterviewInvitePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("malformed invite payload: %w: %w", err, asynq.SkipRetry)
	}

	subject := fmt.Sprintf("Interview Invitation: %s", payload.Summary)
	body := ComposeInviteHTML(&payload, w.publicURL)

	if err := w.mailer.Send(ctx, payload.Recipient, subject, body); err != nil {
		logger.Error("MailWorker:HandleInterviewInvite:SendError", "error", err, "recipient", payload.Recipient)
		return err
	}

	logger.Info("MailWorker:HandleInterviewInvite:Sent", "recipient", payload.Recipient)
	return nil
}
