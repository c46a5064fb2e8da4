package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/api"
	"github.com/cimco/maintenance-system/internal/api/metrics"
	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/service"
	"github.com/cimco/maintenance-system/internal/core/session"
	"github.com/cimco/maintenance-system/internal/infrastructure/ai"
	"github.com/cimco/maintenance-system/internal/infrastructure/config"
	mongodb "github.com/cimco/maintenance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/cimco/maintenance-system/internal/infrastructure/db/redis"
	"github.com/cimco/maintenance-system/internal/infrastructure/queue"
	"github.com/cimco/maintenance-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	equipmentRepo := mongodb.NewEquipmentRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	partRepo := mongodb.NewPartRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	logRepo := mongodb.NewLogRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := logRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create log indexes")
	}

	// --- Services ---
	sessions := session.NewStore(session.DefaultTTL)
	authService := service.NewAuthService(userRepo, sessions, log)
	equipmentService := service.NewEquipmentService(equipmentRepo, log)
	taskService := service.NewTaskService(taskRepo, log)
	partService := service.NewPartService(partRepo, orderRepo, log)
	logService := service.NewLogService(logRepo, redisdb.NewLogDedupChecker(rdb), log)
	analysisService := service.NewAnalysisService(
		ai.NewClient(cfg.AI.APIKey, cfg.AI.Timeout, log),
		redisdb.NewAnalysisCache(rdb),
		log,
	)

	seedAdmin(ctx, authService, userRepo.Count, cfg.AdminPassword, log)

	// --- Log-sync workers ---
	dispatcher := queue.NewDispatcher(cfg.LogWorkers, logService, log)
	dispatcher.Start(ctx)

	// --- Session sweeper ---
	go sweepSessions(ctx, sessions, cfg.SessionSweepInterval, log)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Logger:           log,
		Sessions:         sessions,
		DB:               db,
		Redis:            rdb,
		AuthService:      authService,
		EquipmentService: equipmentService,
		TaskService:      taskService,
		PartService:      partService,
		LogService:       logService,
		AnalysisService:  analysisService,
		LogDispatcher:    dispatcher,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// seedAdmin creates the first admin account when the directory is empty.
// Without it a fresh deployment has no account able to register others.
func seedAdmin(ctx context.Context, auth *service.AuthService, count func(context.Context) (int64, error), password string, log zerolog.Logger) {
	n, err := count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to inspect user directory")
	}
	if n > 0 {
		return
	}
	if password == "" {
		log.Warn().Msg("user directory is empty and ADMIN_PASSWORD is unset, no admin seeded")
		return
	}

	if _, err := auth.Register(ctx, "admin", password, domain.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}
	log.Info().Msg("seeded initial admin account")
}

// sweepSessions evicts expired sessions on a fixed cadence. Validation
// enforces expiry on its own; the sweep only reclaims memory.
func sweepSessions(ctx context.Context, sessions *session.Store, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.CleanupExpired(); removed > 0 {
				metrics.SessionsExpiredTotal.Add(float64(removed))
				log.Debug().Int("removed", removed).Msg("swept expired sessions")
			}
		}
	}
}
