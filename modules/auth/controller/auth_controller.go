package controller

import (
	"smarthire-api/core/constants"
	"smarthire-api/core/controller"
	"smarthire-api/core/errors"
	"smarthire-api/core/utils"
	"smarthire-api/modules/auth/dto"
	"smarthire-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service service.AuthServiceInterface
}

func NewAuthController(base controller.BaseController, svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: base,
		service:        svc,
	}
}

// Register creates a new account
// POST /api/v1/public/auth/register
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "account created")
}

// Login exchanges credentials for an access token
// POST /api/v1/public/auth/login
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "logged in")
}

// GetProfile returns the current user
// GET /api/v1/private/auth/me
func (c *AuthController) GetProfile(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrUnauthorized, "invalid token data", nil))
	}

	user, appErr := c.service.GetProfile(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, user, "profile retrieved")
}
