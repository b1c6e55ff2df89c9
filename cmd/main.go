package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"signage-service/internal/config"
	"signage-service/internal/handlers"
	"signage-service/internal/metrics"
	"signage-service/internal/middleware"
	"signage-service/internal/repository"
	"signage-service/internal/services"
	"signage-service/internal/storage"
	"signage-service/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}
	dev := cfg.App.Env == "development"

	logger, err := utils.NewLogger(dev, cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	// Mongo
	db, mc, err := repository.Connect(cfg.Mongo.URI, cfg.Mongo.Database, logger)
	if err != nil {
		logger.Fatalf("mongo connect: %v", err)
	}
	mediaRepo := repository.NewMediaRepo(db)
	playlistRepo := repository.NewPlaylistRepo(db)
	monitorRepo := repository.NewMonitorRepo(db)
	menuRepo := repository.NewMenuRepo(db)

	// asset store
	var store storage.BlobStore
	switch cfg.Storage.Driver {
	case "s3":
		store, err = storage.NewS3Store(context.Background(), cfg.AWS.Region, cfg.AWS.Bucket)
		if err != nil {
			logger.Fatalf("s3 init: %v", err)
		}
	default:
		store, err = storage.NewLocalStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
		if err != nil {
			logger.Fatalf("local store init: %v", err)
		}
	}

	// services
	mediaSvc := services.NewMediaService(mediaRepo, store, cfg.Storage.KeyPrefix)
	playlistSvc := services.NewPlaylistService(playlistRepo, mediaRepo)
	monitorSvc := services.NewMonitorService(monitorRepo, playlistRepo)
	querySvc := services.NewQueryService(monitorRepo, playlistRepo)
	menuSvc := services.NewMenuService(menuRepo)

	// fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    50 * 1024 * 1024,
	})
	app.Use(middleware.Recovery(logger))
	app.Use(middleware.RequestLogger(logger))
	app.Use(metrics.Collect())
	app.Use(cors.New())

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := middleware.NewRateLimiter(rdb, "signage:rl", cfg.Redis.RateLimit, cfg.RateWindow)
		app.Use(limiter.ByIP())
	}

	app.Get("/metrics", metrics.Handler())
	if cfg.Storage.Driver != "s3" {
		app.Static(cfg.Storage.BaseURL, cfg.Storage.Dir)
	}

	mediaH := handlers.NewMediaHandler(mediaSvc, logger)
	playlistH := handlers.NewPlaylistHandler(playlistSvc, mediaSvc, logger)
	monitorH := handlers.NewMonitorHandler(monitorSvc, querySvc, logger)
	menuH := handlers.NewMenuHandler(menuSvc, logger)
	handlers.Register(app, mediaH, playlistH, monitorH, menuH)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("starting signage service on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("shutdown requested")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	_ = app.Shutdown()
	_ = mc.Disconnect(timeoutCtx)
	logger.Info("shutdown completed")
}
