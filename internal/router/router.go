package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pressline/pressline-backend/internal/handlers"
	"github.com/pressline/pressline-backend/internal/middleware"
	"github.com/pressline/pressline-backend/internal/repositories"
	"github.com/pressline/pressline-backend/internal/services"
	"github.com/pressline/pressline-backend/pkg/config"
	"go.uber.org/zap"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
}

// SetupRoutes wires services and handlers onto the Echo instance
func SetupRoutes(e *echo.Echo, store repositories.Store, cfg *config.Config, logger *zap.Logger) {
	// --- Services ---
	notificationService := services.NewNotificationService(store, logger)
	storyService := services.NewStoryService(store, notificationService, logger)
	commentService := services.NewCommentService(store, notificationService, logger)
	interactionService := services.NewInteractionService(store, notificationService, logger)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(store, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(store)
	userHandler.RegisterUserRoutes(api)

	categoryHandler := handlers.NewCategoryHandler(store)
	categoryHandler.RegisterCategoryRoutes(api)

	storyHandler := handlers.NewStoryHandler(storyService)
	storyHandler.RegisterStoryRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterCommentRoutes(api)

	likeHandler := handlers.NewLikeHandler(interactionService)
	likeHandler.RegisterLikeRoutes(api)

	followHandler := handlers.NewFollowHandler(interactionService)
	followHandler.RegisterFollowRoutes(api)

	savedStoryHandler := handlers.NewSavedStoryHandler(interactionService)
	savedStoryHandler.RegisterSavedStoryRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	logger.Info("routes configured")
}
