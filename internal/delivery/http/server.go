package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/Les-Cavistes/transit-gateway/internal/config"
	"github.com/Les-Cavistes/transit-gateway/internal/delivery/http/handler"
	"github.com/Les-Cavistes/transit-gateway/internal/delivery/http/middleware"
)

// Server - fiber-based HTTP front for the gateway.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	placesHandler  *handler.PlacesHandler
	geocodeHandler *handler.GeocodeHandler
	journeyHandler *handler.JourneyHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	placesHandler *handler.PlacesHandler,
	geocodeHandler *handler.GeocodeHandler,
	journeyHandler *handler.JourneyHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Transit Gateway",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		placesHandler:  placesHandler,
		geocodeHandler: geocodeHandler,
		journeyHandler: journeyHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Transit provider
	api.Get("/places", s.placesHandler.Autocomplete)
	api.Get("/arrivals", s.placesHandler.Arrivals)

	// Mapping provider
	api.Get("/address", s.geocodeHandler.Autocomplete)
	api.Get("/address/details", s.geocodeHandler.Details)

	// Journey backend
	api.Get("/journey", s.journeyHandler.Journey)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler keeps even fiber-level failures (unknown routes, body
// limits) inside the JSON error envelope.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"message": message,
		})
	}
}
