package app

import (
	"taskboard/internal/app/board"
	"taskboard/internal/app/health"
	"taskboard/internal/app/task"
	"taskboard/internal/app/user"
	"taskboard/internal/config"
	"taskboard/internal/db"
	"taskboard/internal/db/seeder"
	"taskboard/internal/providers/redis"
	"taskboard/internal/router"
	"taskboard/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router *router.Router
	DB     *gorm.DB
}

func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	seed := seeder.NewSeeder(dbConn, logger)
	if err := seed.Seed(); err != nil {
		logger.Warn("Failed to run seeders", zap.Error(err))
	}

	redisProvider := redis.NewRedisProvider(cfg.RedisURL, logger, cfg.RedisTTL)

	userRepo := user.NewRepository(dbConn)
	boardRepo := board.NewRepository(dbConn)
	taskRepo := task.NewRepository(dbConn)

	userService := user.NewService(userRepo)
	boardService := board.NewService(boardRepo, redisProvider, logger)
	taskService := task.NewService(taskRepo, boardRepo, redisProvider, logger)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:    dbConn,
		Redis: redisProvider.Client,
	})
	userHandler := user.NewHandler(userService)
	boardHandler := board.NewHandler(boardService)
	taskHandler := task.NewHandler(taskService)

	r := router.NewRouter(logger)

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterUserRoutes(userHandler)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterTaskRoutes(taskHandler)

	return &Application{
		Router: r,
		DB:     dbConn,
	}, nil
}
