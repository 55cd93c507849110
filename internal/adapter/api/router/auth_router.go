package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/handler"
	"carvendor/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, loginLimiter *middleware.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.POST("/login", authHandler.Login, loginLimiter.Middleware())
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)
}
