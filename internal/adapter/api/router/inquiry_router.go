package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/handler"
	"carvendor/internal/adapter/api/middleware"
)

func SetupInquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, intakeLimiter *middleware.RateLimiter) {
	inquiryHandler := handler.GetInquiryHandler()

	e.POST("/v1/contact", inquiryHandler.SubmitContact, intakeLimiter.Middleware())
	e.POST("/v1/cars/:id/inquiries", inquiryHandler.SubmitCarInquiry, intakeLimiter.Middleware())

	messages := e.Group("/v1/admin/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.GET("/contacts", inquiryHandler.ListContacts)
	messages.GET("/contacts/:id", inquiryHandler.GetContact)
	messages.POST("/contacts/:id/read", inquiryHandler.MarkContactRead)
	messages.DELETE("/contacts/read", inquiryHandler.DeleteReadContacts)
	messages.DELETE("/contacts/:id", inquiryHandler.DeleteContact)

	messages.GET("/inquiries", inquiryHandler.ListCarInquiries)
	messages.GET("/inquiries/:id", inquiryHandler.GetInquiry)
	messages.POST("/inquiries/:id/read", inquiryHandler.MarkInquiryRead)
	messages.DELETE("/inquiries/read", inquiryHandler.DeleteReadInquiries)
	messages.DELETE("/inquiries/:id", inquiryHandler.DeleteInquiry)
}
