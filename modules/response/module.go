package response

import (
	coreController "smarthire-api/core/controller"
	"smarthire-api/core/database"
	"smarthire-api/core/middleware"
	"smarthire-api/modules/response/controller"
	"smarthire-api/modules/response/repository"
	"smarthire-api/modules/response/router"
	"smarthire-api/modules/response/service"

	"github.com/labstack/echo/v4"
)

// Init wires the response module and returns the service so the scheduling
// pipeline can issue token pairs.
func Init(e *echo.Echo, db database.IDatabase) service.ResponseServiceInterface {
	repo := repository.NewResponseRepository(db)
	responseService := service.NewResponseService(repo)

	base := coreController.NewBaseController()
	responseController := controller.NewResponseController(base, responseService)

	mw := middleware.NewMiddleware()
	router.NewResponseRouter(responseController).Setup(e, mw)

	return responseService
}
