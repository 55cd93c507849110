package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/handler"
	"carvendor/internal/adapter/api/middleware"
)

func SetupCarRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	carHandler := handler.GetCarHandler()

	admin := e.Group("/v1/admin/cars")
	admin.Use(authMiddleware.Authenticate)
	admin.POST("", carHandler.CreateCar)
	admin.PUT("/:id", carHandler.UpdateCar)
	admin.DELETE("/:id", carHandler.DeleteCar)
}
