package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"smarthire-api/core/cache"
	"smarthire-api/core/config"
	"smarthire-api/core/constants"
	"smarthire-api/core/database"
	"smarthire-api/core/logger"
	"smarthire-api/core/storage"
	"smarthire-api/modules/auth"
	"smarthire-api/modules/calendar"
	"smarthire-api/modules/candidate"
	"smarthire-api/modules/interview"
	"smarthire-api/modules/job"
	"smarthire-api/modules/notification"
	"smarthire-api/modules/response"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run boots configuration, storage, the task queue and all modules, then
// serves until interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Server.LogLevel, cfg.Server.DevMode); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	redisCache, err := cache.NewRedisCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	s3 := storage.NewS3Storage(cfg.AWS)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()

	asynqServer := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			constants.QueueMail: 10,
		},
	})
	mux := asynq.NewServeMux()
	notification.RegisterHandlers(mux)
	go func() {
		if err := asynqServer.Run(mux); err != nil {
			logger.Error("asynq server stopped", "error", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth.Init(e, db)
	job.Init(e, db)
	candidate.Init(e, db, s3)
	provider := calendar.Init(e, db, redisCache)
	responseService := response.Init(e, db)
	notificationService := notification.Init(asynqClient)
	interview.Init(e, db, provider, responseService, notificationService)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
		}
	}()
	logger.Info("server started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	asynqServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server stopped cleanly")
	return nil
}
