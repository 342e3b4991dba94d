package controller

import (
	"smarthire-api/core/controller"
	"smarthire-api/core/errors"
	"smarthire-api/core/params"
	"smarthire-api/modules/candidate/dto"
	"smarthire-api/modules/candidate/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CandidateController struct {
	controller.BaseController
	service service.CandidateServiceInterface
}

func NewCandidateController(base controller.BaseController, svc service.CandidateServiceInterface) *CandidateController {
	return &CandidateController{
		BaseController: base,
		service:        svc,
	}
}

// CreateCandidate registers a new candidate
// POST /api/v1/private/candidates
func (c *CandidateController) CreateCandidate(ctx echo.Context) error {
	var req dto.CreateCandidateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	candidate, appErr := c.service.CreateCandidate(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, candidate, "candidate created")
}

// GetCandidate returns one candidate
// GET /api/v1/private/candidates/:id
func (c *CandidateController) GetCandidate(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid candidate id")
	}

	candidate, appErr := c.service.GetCandidate(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, candidate, "candidate retrieved")
}

// ListCandidates returns candidates with pagination and search
// GET /api/v1/private/candidates?page=&limit=&search=
func (c *CandidateController) ListCandidates(ctx echo.Context) error {
	qp := params.NewQueryParams(ctx)
	resp, appErr := c.service.ListCandidates(ctx.Request().Context(), qp)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "candidates retrieved")
}

// UpdateCandidate updates candidate fields
// PUT /api/v1/private/candidates/:id
func (c *CandidateController) UpdateCandidate(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid candidate id")
	}

	var req dto.UpdateCandidateRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}

	candidate, appErr := c.service.UpdateCandidate(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, candidate, "candidate updated")
}

// DeleteCandidate removes a candidate
// DELETE /api/v1/private/candidates/:id
func (c *CandidateController) DeleteCandidate(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid candidate id")
	}

	if appErr := c.service.DeleteCandidate(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "candidate deleted")
}

// UploadResume attaches a resume file to a candidate
// POST /api/v1/private/candidates/:id/resume
func (c *CandidateController) UploadResume(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "invalid candidate id")
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "resume file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.ErrorResponse(ctx, errors.NewAppError(errors.ErrInternalServer, "failed to read uploaded file", err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	resp, appErr := c.service.UploadResume(ctx.Request().Context(), id, fileHeader.Filename, contentType, file)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp, "resume uploaded")
}
