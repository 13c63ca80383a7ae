package main

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/EricsonWillians/itafest-backend/internal/handler"
	"github.com/EricsonWillians/itafest-backend/internal/middleware"
	"github.com/EricsonWillians/itafest-backend/pkg/config"
	"github.com/EricsonWillians/itafest-backend/pkg/database"
	"github.com/EricsonWillians/itafest-backend/pkg/logger"
	"github.com/EricsonWillians/itafest-backend/pkg/push"
	"github.com/EricsonWillians/itafest-backend/prometheus"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(cfg); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting directory service...", zap.String("environment", cfg.Server.Env))

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer database.Close(db)
	log.Info("Database connection established")

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed")

	// Push gateway client for notification delivery
	pusher := push.NewClient(cfg.Push.GatewayURL, cfg.Push.ServerKey, cfg.Push.Timeout)

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)

	// Public routes - no authentication required
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	// API routes
	api := e.Group("/api")

	handler.NewBusinessHandler(db).Register(api.Group("/businesses"))
	handler.NewCategoryHandler(db).Register(api.Group("/categories"))
	handler.NewEventHandler(db).Register(api.Group("/events"))
	handler.NewPromotionHandler(db).Register(api.Group("/promotions"))
	handler.NewTicketHandler(db).Register(api.Group("/tickets"))
	handler.NewReviewHandler(db).Register(api.Group("/reviews"))
	handler.NewMessageHandler(db).Register(api.Group("/messages"))
	handler.NewNotificationHandler(db, pusher).Register(api.Group("/notifications"))
	handler.NewUserHandler(db).Register(api.Group("/users"))
	handler.NewUserProfileHandler(db).Register(api.Group("/user-profiles"))

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
