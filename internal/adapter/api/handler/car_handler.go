package handler

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/usecase"
	"carvendor/pkg/response"
)

// CarHandler covers the back office car management endpoints.
type CarHandler struct {
	carUseCase *usecase.CarUseCase
}

func NewCarHandler(carUseCase *usecase.CarUseCase) *CarHandler {
	return &CarHandler{
		carUseCase: carUseCase,
	}
}

type carRequest struct {
	Make         string   `json:"make" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         int      `json:"year" validate:"required,gte=1990"`
	Price        int      `json:"price" validate:"gte=0"`
	DownPayment  int      `json:"down_payment" validate:"gte=0"`
	Mileage      int      `json:"mileage" validate:"gte=0"`
	FuelType     string   `json:"fuel_type" validate:"required,oneof=petrol diesel electric hybrid"`
	Transmission string   `json:"transmission" validate:"required,oneof=manual automatic"`
	BodyType     string   `json:"body_type" validate:"required,oneof=sedan suv hatchback coupe convertible estate"`
	Color        string   `json:"color"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Images       []string `json:"images" validate:"dive,url"`
	Status       string   `json:"status" validate:"omitempty,oneof=available pending sold"`
	IsFeatured   bool     `json:"is_featured"`
}

func (r carRequest) toInput() usecase.CarInput {
	return usecase.CarInput{
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		Price:        r.Price,
		DownPayment:  r.DownPayment,
		Mileage:      r.Mileage,
		FuelType:     r.FuelType,
		Transmission: r.Transmission,
		BodyType:     r.BodyType,
		Color:        r.Color,
		Description:  r.Description,
		Features:     r.Features,
		Images:       r.Images,
		Status:       r.Status,
		IsFeatured:   r.IsFeatured,
	}
}

func (h *CarHandler) CreateCar(c echo.Context) error {
	var req carRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	car, err := h.carUseCase.CreateCar(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, car)
}

func (h *CarHandler) UpdateCar(c echo.Context) error {
	id := c.Param("id")

	var req carRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	car, err := h.carUseCase.UpdateCar(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, car)
}

func (h *CarHandler) GetCar(c echo.Context) error {
	car, err := h.carUseCase.GetCarByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, car)
}

func (h *CarHandler) DeleteCar(c echo.Context) error {
	if err := h.carUseCase.DeleteCar(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Car deleted"})
}
