package params

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// QueryParams carries the common list-endpoint query parameters.
type QueryParams struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Order  string
}

func NewQueryParams(ctx echo.Context) *QueryParams {
	p := &QueryParams{
		Page:   defaultPage,
		Limit:  defaultLimit,
		Search: ctx.QueryParam("search"),
		SortBy: ctx.QueryParam("sort_by"),
		Order:  ctx.QueryParam("order"),
	}

	if page, err := strconv.Atoi(ctx.QueryParam("page")); err == nil && page > 0 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(ctx.QueryParam("limit")); err == nil && limit > 0 {
		p.Limit = limit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Order != "asc" && p.Order != "desc" {
		p.Order = "desc"
	}
	return p
}

func (p *QueryParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
