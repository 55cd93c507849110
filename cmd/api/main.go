package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"carvendor/internal/adapter/api"
	"carvendor/internal/adapter/api/handler"
	apimiddleware "carvendor/internal/adapter/api/middleware"
	"carvendor/internal/adapter/api/router"
	"carvendor/internal/adapter/repository"
	"carvendor/internal/infrastructure/firebase"
	"carvendor/internal/infrastructure/media"
	"carvendor/internal/infrastructure/websocket"
	"carvendor/internal/usecase"
	"carvendor/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from env var in production, file path locally
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuthClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	carRepo := repository.NewFirestoreCarRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	inquiryRepo := repository.NewFirestoreInquiryRepository(firestoreClient)

	identityClient := firebase.NewAuthClient(fbAuthClient, cfg.FirebaseApiKey)
	mediaClient := media.NewClient(cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset)

	hub := websocket.NewHub()
	hub.Start(ctx)

	authUseCase := usecase.NewAuthUseCase(identityClient)
	carUseCase := usecase.NewCarUseCase(carRepo)
	catalogUseCase := usecase.NewCatalogUseCase(carRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, hub)

	catalogSync := usecase.NewCatalogSyncUseCase(carRepo, hub)
	if err := catalogSync.Start(ctx); err != nil {
		log.Fatalf("Failed to start catalog sync: %v", err)
	}

	handler.Setup(
		authUseCase,
		carUseCase,
		catalogUseCase,
		reviewUseCase,
		inquiryUseCase,
		mediaClient,
		hub,
		cfg.MaxUploadSizeMB,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	intakeLimiter := apimiddleware.NewRateLimiter(10, time.Minute)

	router.Setup(e, authMiddleware, intakeLimiter)

	log.Fatal(e.Start(":" + cfg.ServerPort))
}
