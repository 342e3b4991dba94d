package job

import (
	coreController "smarthire-api/core/controller"
	"smarthire-api/core/database"
	"smarthire-api/core/middleware"
	"smarthire-api/modules/job/controller"
	"smarthire-api/modules/job/repository"
	"smarthire-api/modules/job/router"
	"smarthire-api/modules/job/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewJobRepository(db)
	jobService := service.NewJobService(repo)

	base := coreController.NewBaseController()
	jobController := controller.NewJobController(base, jobService)

	mw := middleware.NewMiddleware()
	router.NewJobRouter(jobController).Setup(e, mw)
}
