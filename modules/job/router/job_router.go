package router

import (
	"smarthire-api/core/middleware"
	"smarthire-api/modules/job/controller"

	"github.com/labstack/echo/v4"
)

type JobRouter struct {
	JobController *controller.JobController
}

func NewJobRouter(jobController *controller.JobController) *JobRouter {
	return &JobRouter{
		JobController: jobController,
	}
}

// Setup registers job routes
func (r *JobRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	jobRoutes := privateRoutes.Group("/jobs", mw.AuthMiddleware())
	jobRoutes.POST("", r.JobController.CreateJob)
	jobRoutes.GET("", r.JobController.ListJobs)
	jobRoutes.GET("/:id", r.JobController.GetJob)
	jobRoutes.PUT("/:id", r.JobController.UpdateJob)
	jobRoutes.DELETE("/:id", r.JobController.DeleteJob)
}
