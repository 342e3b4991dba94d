package controller

import (
	"smarthire-api/core/controller"
	"smarthire-api/core/errors"
	"smarthire-api/core/params"
	"smarthire-api/modules/interview/dto"
	"smarthire-api/modules/interview/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InterviewController struct {
	controller.BaseController
	service service.InterviewServiceInterface
}

func NewInterviewController(base controller.BaseController, svc service.InterviewServiceInterface) *InterviewController {
	return &InterviewController{
		BaseController: base,
		service:        svc,
	}
}

// ScheduleInterview finds a common slot in the window and books it
// POST /api/v1/private/interviews/schedule
func (c *InterviewController) ScheduleInterview(ctx echo.Context) error {
	var req dto.ScheduleInterviewRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	resp, appErr := c.service.ScheduleInterview(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	message := "interview scheduled"
	if !resp.Scheduled {
		message = "no slot could be scheduled"
	}
	return c.SuccessResponse(ctx, resp, message)
}

// GetInterview returns one interview
// GET /api/v1/private/interviews/:id
func (c *InterviewController) GetInterview(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid interview id")
	}

	interview, appErr := c.service.GetInterview(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, interview, "interview retrieved")
}

// ListInterviews returns interviews with pagination, optionally filtered
// GET /api/v1/private/interviews?page=&limit=&job_id=&candidate_id=
func (c *InterviewController) ListInterviews(ctx echo.Context) error {
	qp := params.NewQueryParams(ctx)
	resp, appErr := c.service.ListInterviews(ctx.Request().Context(), qp,
		ctx.QueryParam("job_id"), ctx.QueryParam("candidate_id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "interviews retrieved")
}

// CancelInterview marks an interview cancelled
// POST /api/v1/private/interviews/:id/cancel
func (c *InterviewController) CancelInterview(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid interview id")
	}

	if appErr := c.service.CancelInterview(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "interview cancelled")
}
