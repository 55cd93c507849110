package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/service"
	"carvendor/internal/usecase"
	"carvendor/pkg/errors"
	"carvendor/pkg/response"
	"carvendor/pkg/utils"
)

// CatalogHandler serves the public showroom endpoints.
type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) ListCars(c echo.Context) error {
	criteria, err := parseCriteria(c)
	if err != nil {
		return response.Error(c, err)
	}

	page := utils.GetPageParams(c)

	result, err := h.catalogUseCase.Browse(c.Request().Context(), page.Limit, page.Cursor, criteria)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paged(c, result, result.NextCursor)
}

func (h *CatalogHandler) ListFeaturedCars(c echo.Context) error {
	cars, err := h.catalogUseCase.Featured(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cars)
}

func parseCriteria(c echo.Context) (service.CatalogCriteria, error) {
	// The showroom defaults to available cars; "all" lifts the
	// constraint.
	status := c.QueryParam("status")
	if status == "" {
		status = entity.CarStatusAvailable
	} else if status == "all" {
		status = ""
	}

	criteria := service.CatalogCriteria{
		Make:     c.QueryParam("make"),
		FuelType: c.QueryParam("fuel_type"),
		Status:   status,
	}

	if minStr := c.QueryParam("min_price"); minStr != "" {
		min, err := strconv.Atoi(minStr)
		if err != nil {
			return criteria, errors.BadRequest("min_price must be a number", err)
		}
		criteria.MinPrice = &min
	}

	if maxStr := c.QueryParam("max_price"); maxStr != "" {
		max, err := strconv.Atoi(maxStr)
		if err != nil {
			return criteria, errors.BadRequest("max_price must be a number", err)
		}
		criteria.MaxPrice = &max
	}

	return criteria, nil
}
