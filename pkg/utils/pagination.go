package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PageParams represents cursor-based pagination parameters.
type PageParams struct {
	Limit  int
	Cursor string
}

// GetPageParams extracts pagination parameters from the request.
func GetPageParams(c echo.Context) PageParams {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	if limit <= 0 || limit > 100 {
		limit = 50 // Default page size
	}

	return PageParams{
		Limit:  limit,
		Cursor: c.QueryParam("cursor"),
	}
}
