package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/handler"
	"carvendor/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, intakeLimiter *middleware.RateLimiter) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/reviews", reviewHandler.ListPublicReviews)
	e.POST("/v1/reviews", reviewHandler.SubmitReview, intakeLimiter.Middleware())
	e.GET("/v1/cars/:id/reviews", reviewHandler.ListCarReviews)

	admin := e.Group("/v1/admin/reviews")
	admin.Use(authMiddleware.Authenticate)
	admin.GET("", reviewHandler.ListAllReviews)
	admin.GET("/:id", reviewHandler.GetReview)
	admin.POST("", reviewHandler.CreateReview)
	admin.PUT("/:id", reviewHandler.UpdateReview)
	admin.DELETE("/:id", reviewHandler.DeleteReview)
}
