package service

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"smarthire-api/core/config"
	"smarthire-api/core/constants"
	"smarthire-api/core/logger"
	"smarthire-api/modules/notification/dto"

	"github.com/hibiken/asynq"
)

type NotificationServiceInterface interface {
	DispatchInvite(ctx context.Context, payload *dto.InterviewInvitePayload) bool
}

type NotificationService struct {
	client    *asynq.Client
	publicURL string
}

func NewNotificationService(client *asynq.Client) NotificationServiceInterface {
	return &NotificationService{
		client:    client,
		publicURL: config.Get().Server.PublicURL,
	}
}

// DispatchInvite enqueues one invitation email. Dispatch failure is reported
// but never blocks the scheduling flow that triggered it.
func (s *NotificationService) DispatchInvite(ctx context.Context, payload *dto.InterviewInvitePayload) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("NotificationService:DispatchInvite:MarshalError", "error", err)
		return false
	}

	task := asynq.NewTask(constants.TaskTypeInterviewInvite, data)
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.Queue(constants.QueueMail),
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
	)
	if err != nil {
		logger.Error("NotificationService:DispatchInvite:EnqueueError", "error", err, "recipient", payload.Recipient)
		return false
	}

	logger.Info("NotificationService:DispatchInvite:Enqueued", "task_id", info.ID, "recipient", payload.Recipient)
	return true
}

// ComposeInviteHTML renders the invitation body with accept and decline
// buttons. Each button carries its own pre-bound token.
func ComposeInviteHTML(payload *dto.InterviewInvitePayload, publicURL string) string {
	joinSection := "<p><em>A conferencing link will follow separately.</em></p>"
	if payload.ConferencingLink != "" {
		joinSection = fmt.Sprintf(`<p>Join: <a href="%s">%s</a></p>`,
			template.HTMLEscapeString(payload.ConferencingLink),
			template.HTMLEscapeString(payload.ConferencingLink),
		)
	}

	acceptURL := fmt.Sprintf("%s/respond?id=%s&action=accept", publicURL, payload.AcceptToken)
	declineURL := fmt.Sprintf("%s/respond?id=%s&action=decline", publicURL, payload.DeclineToken)

	return fmt.Sprintf(`<html><body style="font-family: sans-serif;">
<h2>%s</h2>
<p>You are invited to an interview.</p>
<p><strong>When:</strong> %s to %s (UTC)</p>
%s
<p>
<a href="%s" style="background:#2e7d32;color:#fff;padding:10px 18px;text-decoration:none;border-radius:4px;">Accept</a>
&nbsp;
<a href="%s" style="background:#c62828;color:#fff;padding:10px 18px;text-decoration:none;border-radius:4px;">Decline</a>
</p>
</body></html>`,
		template.HTMLEscapeString(payload.Summary),
		payload.StartTime.UTC().Format("Mon, 02 Jan 2006 15:04"),
		payload.EndTime.UTC().Format("15:04"),
		joinSection,
		acceptURL,
		declineURL,
	)
}
