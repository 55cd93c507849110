package handler

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/domain/entity"
	"carvendor/internal/domain/repository"
	"carvendor/internal/usecase"
	"carvendor/pkg/response"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
	}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type carInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`

	// Snapshot of the car as the visitor saw it
	CarDetails struct {
		Make  string `json:"make" validate:"required"`
		Model string `json:"model" validate:"required"`
		Year  int    `json:"year"`
		Price int    `json:"price"`
	} `json:"car_details"`
}

func (h *InquiryHandler) SubmitContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	submission, err := h.inquiryUseCase.SubmitContact(c.Request().Context(), usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, submission)
}

func (h *InquiryHandler) SubmitCarInquiry(c echo.Context) error {
	var req carInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inquiry, err := h.inquiryUseCase.SubmitCarInquiry(c.Request().Context(), usecase.CarInquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		CarID:   c.Param("id"),
		CarDetails: entity.CarDetails{
			Make:  req.CarDetails.Make,
			Model: req.CarDetails.Model,
			Year:  req.CarDetails.Year,
			Price: req.CarDetails.Price,
		},
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, inquiry)
}

func (h *InquiryHandler) ListContacts(c echo.Context) error {
	contacts, err := h.inquiryUseCase.ListContacts(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contacts)
}

func (h *InquiryHandler) ListCarInquiries(c echo.Context) error {
	inquiries, err := h.inquiryUseCase.ListCarInquiries(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiries)
}

func (h *InquiryHandler) GetContact(c echo.Context) error {
	contact, err := h.inquiryUseCase.GetContact(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contact)
}

func (h *InquiryHandler) GetInquiry(c echo.Context) error {
	inquiry, err := h.inquiryUseCase.GetCarInquiry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}

func (h *InquiryHandler) MarkContactRead(c echo.Context) error {
	return h.markRead(c, repository.CollectionContacts)
}

func (h *InquiryHandler) MarkInquiryRead(c echo.Context) error {
	return h.markRead(c, repository.CollectionInquiries)
}

func (h *InquiryHandler) markRead(c echo.Context, collection string) error {
	if err := h.inquiryUseCase.MarkRead(c.Request().Context(), collection, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Marked as read"})
}

func (h *InquiryHandler) DeleteContact(c echo.Context) error {
	return h.deleteMessage(c, repository.CollectionContacts)
}

func (h *InquiryHandler) DeleteInquiry(c echo.Context) error {
	return h.deleteMessage(c, repository.CollectionInquiries)
}

func (h *InquiryHandler) deleteMessage(c echo.Context, collection string) error {
	if err := h.inquiryUseCase.DeleteMessage(c.Request().Context(), collection, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Message deleted"})
}

func (h *InquiryHandler) DeleteReadContacts(c echo.Context) error {
	return h.deleteAllRead(c, repository.CollectionContacts)
}

func (h *InquiryHandler) DeleteReadInquiries(c echo.Context) error {
	return h.deleteAllRead(c, repository.CollectionInquiries)
}

func (h *InquiryHandler) deleteAllRead(c echo.Context, collection string) error {
	deleted, err := h.inquiryUseCase.DeleteAllRead(c.Request().Context(), collection)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"deleted": deleted})
}
