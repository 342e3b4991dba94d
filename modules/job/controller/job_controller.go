package controller

import (
	"smarthire-api/core/constants"
	"smarthire-api/core/controller"
	"smarthire-api/core/errors"
	"smarthire-api/core/params"
	"smarthire-api/core/utils"
	"smarthire-api/modules/job/dto"
	"smarthire-api/modules/job/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type JobController struct {
	controller.BaseController
	service service.JobServiceInterface
}

func NewJobController(base controller.BaseController, svc service.JobServiceInterface) *JobController {
	return &JobController{
		BaseController: base,
		service:        svc,
	}
}

// CreateJob creates a new job posting
// POST /api/v1/private/jobs
func (c *JobController) CreateJob(ctx echo.Context) error {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok || claims == nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrUnauthorized, "invalid token data", nil))
	}

	var req dto.CreateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	job, appErr := c.service.CreateJob(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, job, "job created")
}

// GetJob returns one job
// GET /api/v1/private/jobs/:id
func (c *JobController) GetJob(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid job id")
	}

	job, appErr := c.service.GetJob(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, job, "job retrieved")
}

// ListJobs returns jobs with pagination and search
// GET /api/v1/private/jobs?page=&limit=&search=
func (c *JobController) ListJobs(ctx echo.Context) error {
	qp := params.NewQueryParams(ctx)
	resp, appErr := c.service.ListJobs(ctx.Request().Context(), qp)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "jobs retrieved")
}

// UpdateJob updates job fields
// PUT /api/v1/private/jobs/:id
func (c *JobController) UpdateJob(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid job id")
	}

	var req dto.UpdateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	job, appErr := c.service.UpdateJob(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, job, "job updated")
}

// DeleteJob removes a job
// DELETE /api/v1/private/jobs/:id
func (c *JobController) DeleteJob(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid job id")
	}

	if appErr := c.service.DeleteJob(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "job deleted")
}
