package controller

import (
	"smarthire-api/core/constants"
	"smarthire-api/core/controller"
	"smarthire-api/core/errors"
	"smarthire-api/core/utils"
	"smarthire-api/modules/calendar/dto"
	"smarthire-api/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	service service.CalendarServiceInterface
}

func NewCalendarController(base controller.BaseController, svc service.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController: base,
		service:        svc,
	}
}

// GetConnectURL returns the OAuth consent URL for connecting a Google calendar
// GET /api/v1/private/calendar/connect
func (c *CalendarController) GetConnectURL(ctx echo.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, appErr := c.service.GetConnectURL(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "connect URL generated")
}

// HandleCallback completes the OAuth flow using the authorization code
// GET /api/v1/private/calendar/callback?code=...
func (c *CalendarController) HandleCallback(ctx echo.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	code := ctx.QueryParam("code")
	if code == "" {
		return c.BadRequest(errors.ErrInvalidInput, "authorization code is required")
	}

	resp, appErr := c.service.HandleCallback(ctx.Request().Context(), userID, code)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "calendar connected")
}

// GetConnections lists the current user's calendar connections
// GET /api/v1/private/calendar/connections
func (c *CalendarController) GetConnections(ctx echo.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	resp, appErr := c.service.ListConnections(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "connections retrieved")
}

// DisconnectCalendar removes a provider connection
// DELETE /api/v1/private/calendar/connections/:provider
func (c *CalendarController) DisconnectCalendar(ctx echo.Context) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	provider := ctx.Param("provider")
	if provider != dto.ProviderGoogle && provider != dto.ProviderOutlook {
		return c.BadRequest(errors.ErrInvalidInput, "invalid provider")
	}

	if appErr := c.service.Disconnect(ctx.Request().Context(), userID, provider); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "disconnected successfully")
}

func userIDFromContext(ctx echo.Context) (uuid.UUID, *errors.AppError) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "invalid token data", nil)
	}
	return claims.UserID, nil
}
