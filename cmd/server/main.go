package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/aadarsh726/smart-life/api/handler"
	"github.com/aadarsh726/smart-life/internal/config"
	"github.com/aadarsh726/smart-life/internal/infrastructure/buffer"
	"github.com/aadarsh726/smart-life/internal/infrastructure/mlservice"
	"github.com/aadarsh726/smart-life/internal/infrastructure/monitor"
	pgInfra "github.com/aadarsh726/smart-life/internal/infrastructure/postgres"
	redisInfra "github.com/aadarsh726/smart-life/internal/infrastructure/redis"
	"github.com/aadarsh726/smart-life/internal/middleware"
	"github.com/aadarsh726/smart-life/internal/router"
	"github.com/aadarsh726/smart-life/internal/services"
	"github.com/aadarsh726/smart-life/internal/services/lifecycle"
	"github.com/aadarsh726/smart-life/pkg/httpcontext"
	"github.com/aadarsh726/smart-life/pkg/logger"
	"github.com/aadarsh726/smart-life/repository/postgres"
	redisRepo "github.com/aadarsh726/smart-life/repository/redis"
	activityUC "github.com/aadarsh726/smart-life/usecase/activity"
	authUC "github.com/aadarsh726/smart-life/usecase/auth"
	chatUC "github.com/aadarsh726/smart-life/usecase/chat"
	dashboardUC "github.com/aadarsh726/smart-life/usecase/dashboard"
	habitUC "github.com/aadarsh726/smart-life/usecase/habit"
	journalUC "github.com/aadarsh726/smart-life/usecase/journal"
	taskUC "github.com/aadarsh726/smart-life/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pgInfra.Close(pool, zapLogger)
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mlClient := mlservice.NewClient(cfg.ML.URL, cfg.ML.Timeout, zapLogger)

	mon := monitor.New(pool, redisClient, bufferStore, mlClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	habitRepo := postgres.NewHabitRepository(pool)
	journalRepo := postgres.NewJournalRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.JWT.SessionTTL)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		taskRepo,
		activityRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:       cfg.Buffer.SyncInterval,
			BatchSize:      50,
			MaxRetries:     cfg.Buffer.MaxRetry,
			RetentionHours: cfg.Buffer.RetentionHours,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	authUseCase := authUC.New(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.SessionTTL, zapLogger)
	taskUseCase := taskUC.New(taskRepo, userRepo, bufferBridge, zapLogger)
	habitUseCase := habitUC.New(habitRepo, zapLogger)
	journalUseCase := journalUC.New(journalRepo, mlClient, zapLogger)
	activityUseCase := activityUC.New(activityRepo, bufferBridge, zapLogger)
	chatUseCase := chatUC.New(taskUseCase, rand.New(rand.NewSource(time.Now().UnixNano())), zapLogger)
	dashboardUseCase := dashboardUC.New(userRepo, taskRepo, habitRepo, journalRepo, activityRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:      apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Task:      apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Habit:     apiHandler.NewHabitHandler(habitUseCase, ctxAdapter, zapLogger),
		Journal:   apiHandler.NewJournalHandler(journalUseCase, ctxAdapter, zapLogger),
		Activity:  apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		ML:        apiHandler.NewMLHandler(mlClient, ctxAdapter, zapLogger),
		Chat:      apiHandler.NewChatHandler(chatUseCase, ctxAdapter, zapLogger),
		Dashboard: apiHandler.NewDashboardHandler(dashboardUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
