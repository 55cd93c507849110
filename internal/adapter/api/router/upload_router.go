package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/handler"
	"carvendor/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	uploads := e.Group("/v1/admin/uploads")
	uploads.Use(authMiddleware.Authenticate)
	uploads.POST("", uploadHandler.Upload)
}
