package interview

import (
	"time"

	"smarthire-api/core/config"
	coreController "smarthire-api/core/controller"
	"smarthire-api/core/database"
	"smarthire-api/core/middleware"
	calendarService "smarthire-api/modules/calendar/service"
	candidateRepository "smarthire-api/modules/candidate/repository"
	"smarthire-api/modules/interview/controller"
	"smarthire-api/modules/interview/repository"
	"smarthire-api/modules/interview/router"
	"smarthire-api/modules/interview/service"
	jobRepository "smarthire-api/modules/job/repository"
	notificationService "smarthire-api/modules/notification/service"
	responseService "smarthire-api/modules/response/service"

	"github.com/labstack/echo/v4"
)

// Init wires the scheduling pipeline against the calendar provider, the
// response token issuer and the notification dispatcher.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	provider calendarService.Provider,
	responses responseService.ResponseServiceInterface,
	notifications notificationService.NotificationServiceInterface,
) {
	cfg := config.Get()
	scheduler := service.NewEventScheduler(
		provider,
		cfg.Scheduler.MaxRetries,
		time.Duration(cfg.Scheduler.RetryBackoffMS)*time.Millisecond,
	)

	repo := repository.NewInterviewRepository(db)
	jobRepo := jobRepository.NewJobRepository(db)
	candidateRepo := candidateRepository.NewCandidateRepository(db)

	interviewService := service.NewInterviewService(
		repo,
		provider,
		scheduler,
		responses,
		notifications,
		jobRepo,
		candidateRepo,
	)

	base := coreController.NewBaseController()
	interviewController := controller.NewInterviewController(base, interviewService)

	mw := middleware.NewMiddleware()
	router.NewInterviewRouter(interviewController).Setup(e, mw)
}
