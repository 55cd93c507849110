package handler

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/usecase"
	"carvendor/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type reviewRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
	CarID        string `json:"car_id"`
	IsApproved   bool   `json:"is_approved"`
}

func (r reviewRequest) toInput() usecase.ReviewInput {
	return usecase.ReviewInput{
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CarID:        r.CarID,
		IsApproved:   r.IsApproved,
	}
}

// SubmitReview is the public path; the review lands unapproved.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.SubmitReview(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

// ListPublicReviews returns approved reviews only.
func (h *ReviewHandler) ListPublicReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListPublic(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

// ListCarReviews returns approved reviews for one car.
func (h *ReviewHandler) ListCarReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListPublicByCar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

// ListAllReviews is the back office view, unapproved included.
func (h *ReviewHandler) ListAllReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	review, err := h.reviewUseCase.GetReviewByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Review deleted"})
}
