package handler

import (
	"carvendor/internal/infrastructure/media"
	"carvendor/internal/infrastructure/websocket"
	"carvendor/internal/usecase"
)

var (
	authHandler      *AuthHandler
	carHandler       *CarHandler
	catalogHandler   *CatalogHandler
	reviewHandler    *ReviewHandler
	inquiryHandler   *InquiryHandler
	uploadHandler    *UploadHandler
	webSocketHandler *WebSocketHandler
	healthHandler    *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	carUseCase *usecase.CarUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	inquiryUseCase *usecase.InquiryUseCase,
	mediaClient *media.Client,
	hub *websocket.Hub,
	maxUploadSizeMB int64,
) {
	authHandler = NewAuthHandler(authUseCase)
	carHandler = NewCarHandler(carUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	inquiryHandler = NewInquiryHandler(inquiryUseCase)
	uploadHandler = NewUploadHandler(mediaClient, maxUploadSizeMB)
	webSocketHandler = NewWebSocketHandler(hub, authUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetCarHandler() *CarHandler {
	return carHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
