package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
	"github.com/pressline/pressline-backend/internal/repositories/memory"
	"github.com/pressline/pressline-backend/internal/router"
	"github.com/pressline/pressline-backend/pkg/config"
	"github.com/pressline/pressline-backend/pkg/logger"
	"github.com/pressline/pressline-backend/validators"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	store, cleanup, err := openStore(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	e := echo.New()
	e.Validator = validators.NewValidator()
	router.SetupMiddleware(e)
	router.SetupRoutes(e, store, cfg, zlog)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// openStore picks the storage backend from configuration. The memory driver
// needs no credentials and exists for local runs.
func openStore(cfg *config.Config) (repositories.Store, func(), error) {
	if cfg.StorageDriver == "memory" {
		return memory.New(), func() {}, nil
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Story{},
		&models.Comment{},
		&models.Like{},
		&models.CommentLike{},
		&models.Follow{},
		&models.SavedStory{},
		&models.Notification{},
	); err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := config.CloseDB(db); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v", err)
		}
	}
	return repositories.NewPostgresStore(db), cleanup, nil
}
