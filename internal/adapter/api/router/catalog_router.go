package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/handler"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()
	carHandler := handler.GetCarHandler()

	cars := e.Group("/v1/cars")
	cars.GET("", catalogHandler.ListCars)
	cars.GET("/featured", catalogHandler.ListFeaturedCars)
	cars.GET("/:id", carHandler.GetCar)
}
