package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"imagevault/internal/adapter/api/handler"
	"imagevault/internal/adapter/api/router"
	"imagevault/internal/adapter/repository"
	"imagevault/internal/infrastructure/processing"
	"imagevault/internal/infrastructure/storage"
	"imagevault/internal/usecase"
	"imagevault/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	storageClient, err := storage.NewLocalStorageClient(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload directory: %v", err)
	}

	imageRepo := repository.NewMongoImageRepository(client.Database(cfg.MongoDatabase))
	compressor := processing.NewJPEGCompressor()
	imageUseCase := usecase.NewImageUseCase(imageRepo, storageClient, compressor, cfg.MaxUploadSize)

	imageHandler := handler.NewImageHandler(imageUseCase, cfg.PublicPrefix)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// The upload directory is served statically under the same prefix the
	// image URLs are built with.
	e.Static(cfg.PublicPrefix, cfg.UploadDir)

	router.Setup(e, imageHandler, healthHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
