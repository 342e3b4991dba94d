package router

import (
	"smarthire-api/core/middleware"
	"smarthire-api/modules/interview/controller"

	"github.com/labstack/echo/v4"
)

type InterviewRouter struct {
	InterviewController *controller.InterviewController
}

func NewInterviewRouter(interviewController *controller.InterviewController) *InterviewRouter {
	return &InterviewRouter{
		InterviewController: interviewController,
	}
}

// Setup registers interview routes
func (r *InterviewRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	interviewRoutes := privateRoutes.Group("/interviews", mw.AuthMiddleware())
	interviewRoutes.POST("/schedule", r.InterviewController.ScheduleInterview)
	interviewRoutes.GET("", r.InterviewController.ListInterviews)
	interviewRoutes.GET("/:id", r.InterviewController.GetInterview)
	interviewRoutes.POST("/:id/cancel", r.InterviewController.CancelInterview)
}
