package main

// @title Transit Gateway API
// @version 1.0.0
// @description API proxy for transit and places lookups: stop and address
// @description autocomplete, place geometry, journey computation and arrivals
// @description snapshots. Upstream responses are validated against declared
// @description schemas before being returned.

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/Les-Cavistes/transit-gateway/docs"
	"github.com/Les-Cavistes/transit-gateway/internal/config"
	httpDelivery "github.com/Les-Cavistes/transit-gateway/internal/delivery/http"
	"github.com/Les-Cavistes/transit-gateway/internal/delivery/http/handler"
	"github.com/Les-Cavistes/transit-gateway/internal/infrastructure/backend"
	"github.com/Les-Cavistes/transit-gateway/internal/infrastructure/google"
	"github.com/Les-Cavistes/transit-gateway/internal/infrastructure/ratp"
	"github.com/Les-Cavistes/transit-gateway/internal/pkg/logger"
	"github.com/Les-Cavistes/transit-gateway/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transit Gateway")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Construct upstream clients. A missing credential fails here, before
	// any request can be served.
	ratpClient, err := ratp.NewClient(&cfg.Ratp, log)
	if err != nil {
		log.Fatal("Failed to create PRIM client", zap.Error(err))
	}

	googleClient, err := google.NewClient(&cfg.Google, log)
	if err != nil {
		log.Fatal("Failed to create Google Places client", zap.Error(err))
	}

	backendClient := backend.NewClient(&cfg.Backend, log)

	log.Info("Upstream clients initialized")

	// 4. Initialize use cases
	placesUC := usecase.NewPlacesUseCase(ratpClient, log)
	geocodeUC := usecase.NewGeocodeUseCase(googleClient, log)
	journeyUC := usecase.NewJourneyUseCase(backendClient, log)

	// 5. Initialize HTTP handlers
	placesHandler := handler.NewPlacesHandler(placesUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	journeyHandler := handler.NewJourneyHandler(journeyUC, log)

	// 6. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		placesHandler,
		geocodeHandler,
		journeyHandler,
	)

	// 7. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
