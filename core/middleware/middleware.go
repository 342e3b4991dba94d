package middleware

import (
	"strings"

	"smarthire-api/core/constants"
	"smarthire-api/core/errors"
	"smarthire-api/core/logger"
	"smarthire-api/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct{}

func NewMiddleware() *Middleware {
	return &Middleware{}
}

// AuthMiddleware validates the Bearer token and stores its claims on the context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrMissingAuthorizationHeader, "Missing Authorization header", nil))
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrInvalidTokenFormat, "Authorization header must be 'Bearer {token}'", nil))
			}

			claims, err := utils.ValidateAndParseToken(parts[1])
			if err != nil {
				logger.Warn("AuthMiddleware:InvalidToken", "error", err)
				return echo.NewHTTPError(401, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired token", err))
			}

			ctx.Set(constants.ContextTokenData, claims)
			return next(ctx)
		}
	}
}
