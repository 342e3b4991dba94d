package controller

import (
	"fmt"
	"html/template"
	"net/http"

	"smarthire-api/core/controller"
	"smarthire-api/core/errors"
	"smarthire-api/modules/response/entity"
	"smarthire-api/modules/response/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ResponseController struct {
	controller.BaseController
	service service.ResponseServiceInterface
}

func NewResponseController(base controller.BaseController, svc service.ResponseServiceInterface) *ResponseController {
	return &ResponseController{
		BaseController: base,
		service:        svc,
	}
}

const respondPage = `<!DOCTYPE html>
<html>
<head><title>Interview Response</title></head>
<body style="font-family: sans-serif; max-width: 480px; margin: 48px auto;">
<h2>%s</h2>
<p>%s</p>
%s
</body>
</html>`

// Respond resolves a response token from an email link. This route is public:
// the token itself is the credential.
// GET /respond?id=...&action=...
func (c *ResponseController) Respond(ctx echo.Context) error {
	token := ctx.QueryParam("id")
	action := ctx.QueryParam("action")
	if token == "" {
		return ctx.HTML(http.StatusBadRequest, renderPage("Invalid link", "The response link is missing its token.", ""))
	}

	result, appErr := c.service.RecordResponse(ctx.Request().Context(), token, action)
	if appErr != nil {
		switch appErr.Code {
		case errors.ErrNotFound:
			return ctx.HTML(http.StatusNotFound, renderPage("Unknown link", "This response link is not recognized.", ""))
		case errors.ErrInvalidInput:
			return ctx.HTML(http.StatusBadRequest, renderPage("Invalid link", "This response link does not match the requested action.", ""))
		default:
			return ctx.HTML(http.StatusInternalServerError, renderPage("Something went wrong", "Please try the link again in a moment.", ""))
		}
	}

	timeRange := fmt.Sprintf("%s to %s (UTC)",
		result.StartTime.UTC().Format("Mon, 02 Jan 2006 15:04"),
		result.EndTime.UTC().Format("15:04"),
	)

	if result.AlreadyResponded {
		return ctx.HTML(http.StatusOK, renderPage(
			"Response already recorded",
			fmt.Sprintf("A response of %q is already on file for %s.", result.Status, timeRange),
			"",
		))
	}

	var title, detail string
	if result.Action == entity.ActionAccept {
		title = "Interview accepted"
		detail = fmt.Sprintf("You are confirmed for %s.", timeRange)
		if result.ConferencingLink != "" {
			detail += fmt.Sprintf(` <a href="%s">Join link</a>.`, template.HTMLEscapeString(result.ConferencingLink))
		}
	} else {
		title = "Interview declined"
		detail = fmt.Sprintf("You have declined the interview at %s. The recruiting team has been notified.", timeRange)
	}

	return ctx.HTML(http.StatusOK, renderPage(title, detail, ""))
}

// GetInterviewResponses returns per-recipient response status for an interview
// GET /api/v1/private/interviews/:id/responses
func (c *ResponseController) GetInterviewResponses(ctx echo.Context) error {
	interviewID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid interview id")
	}

	resp, appErr := c.service.GetInterviewResponses(ctx.Request().Context(), interviewID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "responses retrieved")
}

func renderPage(title, body, extra string) string {
	return fmt.Sprintf(respondPage,
		template.HTMLEscapeString(title),
		body,
		extra,
	)
}
