package router

import (
	"smarthire-api/core/middleware"
	"smarthire-api/modules/response/controller"

	"github.com/labstack/echo/v4"
)

type ResponseRouter struct {
	ResponseController *controller.ResponseController
}

func NewResponseRouter(responseController *controller.ResponseController) *ResponseRouter {
	return &ResponseRouter{
		ResponseController: responseController,
	}
}

// Setup registers response routes. The /respond endpoint is public because
// email clients follow it without any session.
func (r *ResponseRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.GET("/respond", r.ResponseController.Respond)

	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")
	interviewRoutes := privateRoutes.Group("/interviews", mw.AuthMiddleware())
	interviewRoutes.GET("/:id/responses", r.ResponseController.GetInterviewResponses)
}
