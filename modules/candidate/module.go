package candidate

import (
	coreController "smarthire-api/core/controller"
	"smarthire-api/core/database"
	"smarthire-api/core/middleware"
	"smarthire-api/core/storage"
	"smarthire-api/modules/candidate/controller"
	"smarthire-api/modules/candidate/repository"
	"smarthire-api/modules/candidate/router"
	"smarthire-api/modules/candidate/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, st storage.Storage) {
	repo := repository.NewCandidateRepository(db)
	candidateService := service.NewCandidateService(repo, st)

	base := coreController.NewBaseController()
	candidateController := controller.NewCandidateController(base, candidateService)

	mw := middleware.NewMiddleware()
	router.NewCandidateRouter(candidateController).Setup(e, mw)
}
