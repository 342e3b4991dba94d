package calendar

import (
	"smarthire-api/core/cache"
	coreController "smarthire-api/core/controller"
	"smarthire-api/core/database"
	"smarthire-api/core/middleware"
	"smarthire-api/modules/calendar/controller"
	"smarthire-api/modules/calendar/repository"
	"smarthire-api/modules/calendar/router"
	"smarthire-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init wires the calendar module and returns the Provider used by the
// interview scheduling pipeline.
func Init(e *echo.Echo, db database.IDatabase, c cache.Cache) service.Provider {
	repo := repository.NewCalendarRepository(db)
	calendarService := service.NewCalendarService(repo)
	provider := service.NewGoogleProvider(repo, c)

	base := coreController.NewBaseController()
	calendarController := controller.NewCalendarController(base, calendarService)

	mw := middleware.NewMiddleware()
	router.NewCalendarRouter(calendarController).Setup(e, mw)

	return provider
}
