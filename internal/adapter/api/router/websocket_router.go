package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo) {
	wsHandler := handler.GetWebSocketHandler()

	e.GET("/v1/ws/catalog", wsHandler.Catalog)
	e.GET("/v1/ws/admin", wsHandler.Operator)
}
