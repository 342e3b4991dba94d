package router

import (
	"smarthire-api/core/middleware"
	"smarthire-api/modules/candidate/controller"

	"github.com/labstack/echo/v4"
)

type CandidateRouter struct {
	CandidateController *controller.CandidateController
}

func NewCandidateRouter(candidateController *controller.CandidateController) *CandidateRouter {
	return &CandidateRouter{
		CandidateController: candidateController,
	}
}

// Setup registers candidate routes
func (r *CandidateRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	candidateRoutes := privateRoutes.Group("/candidates", mw.AuthMiddleware())
	candidateRoutes.POST("", r.CandidateController.CreateCandidate)
	candidateRoutes.GET("", r.CandidateController.ListCandidates)
	candidateRoutes.GET("/:id", r.CandidateController.GetCandidate)
	candidateRoutes.PUT("/:id", r.CandidateController.UpdateCandidate)
	candidateRoutes.DELETE("/:id", r.CandidateController.DeleteCandidate)
	candidateRoutes.POST("/:id/resume", r.CandidateController.UploadResume)
}
