package router

import (
	"github.com/labstack/echo/v4"

	"carvendor/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, intakeLimiter *middleware.RateLimiter) {
	SetupAuthRouter(e, intakeLimiter)
	SetupCatalogRouter(e)
	SetupCarRouter(e, authMiddleware)
	SetupReviewRouter(e, authMiddleware, intakeLimiter)
	SetupInquiryRouter(e, authMiddleware, intakeLimiter)
	SetupUploadRouter(e, authMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
