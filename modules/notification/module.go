package notification

import (
	"smarthire-api/core/constants"
	"smarthire-api/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Init wires the dispatcher side of the notification module.
func Init(client *asynq.Client) service.NotificationServiceInterface {
	return service.NewNotificationService(client)
}

// RegisterHandlers attaches the worker side to the asynq mux.
func RegisterHandlers(mux *asynq.ServeMux) {
	worker := service.NewMailWorker(service.NewGmailMailer())
	mux.HandleFunc(constants.TaskTypeInterviewInvite, worker.HandleInterviewInvite)
}
