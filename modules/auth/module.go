package auth

import (
	coreController "smarthire-api/core/controller"
	"smarthire-api/core/database"
	"smarthire-api/core/middleware"
	"smarthire-api/modules/auth/controller"
	"smarthire-api/modules/auth/repository"
	"smarthire-api/modules/auth/router"
	"smarthire-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase) {
	repo := repository.NewAuthRepository(db)
	authService := service.NewAuthService(repo)

	base := coreController.NewBaseController()
	authController := controller.NewAuthController(base, authService)

	mw := middleware.NewMiddleware()
	router.NewAuthRouter(authController).Setup(e, mw)
}
