package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-sip-scheduler/internal/app"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/config"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/handler"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/notification"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/repository"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/infra/timer"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/observability/middleware"
	"github.com/KasumiMercury/primind-sip-scheduler/internal/scheduler"
)

// Version is set at build time with -ldflags.
var Version = "dev"

const tracerName = "github.com/KasumiMercury/primind-sip-scheduler/cmd"

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := validatePlatform(cfg); err != nil {
		slog.Error("configuration not valid for this platform", "error", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("failed to shutdown observability", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database, cfg.Log)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("failed to close database connection", "error", err)
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize publisher", "error", err)
		return 1
	}
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	clock := domain.NewSystemClock(cfg.Clock.Location)

	intakeRepo := repository.NewIntakeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	timerService := timer.NewLocalService(timer.Config{
		ExactAllowed:  cfg.Timer.ExactAllowed,
		InexactWindow: cfg.Timer.InexactWindow,
	})
	defer timerService.Stop()

	sched := scheduler.New(scheduler.Dependencies{
		Settings: settingsRepo,
		Progress: app.NewTodayProgress(intakeRepo, clock),
		Timer:    timerService,
		Sink:     newNotificationSink(publisher),
		Clock:    clock,
		Recorder: obs.ReminderMetrics,
	}, scheduler.Config{
		FireBudget: cfg.Reminder.FireBudget,
		Debounce:   cfg.Reminder.Debounce,
	})
	timerService.SetReceiver(sched)

	horizon := app.NewHorizonLock()

	intakeUseCase := app.NewIntakeUseCase(intakeRepo, settingsRepo, publisher, sched, clock)
	statsUseCase := app.NewStatsUseCase(intakeRepo, settingsRepo, horizon, clock, cfg.Stats.StreakLookbackDays)
	settingsUseCase := app.NewSettingsUseCase(settingsRepo, sched)

	if err := sched.OnBoot(ctx); err != nil {
		slog.Error("failed to restore reminder schedule", "error", err)
	}

	sweeper := app.NewRetentionSweeper(intakeRepo, horizon, clock, cfg.Retention.Days, cfg.Retention.SweepInterval)
	sweeper.Start(ctx)

	router := setupRouter(cfg, obs,
		handler.NewIntakeHandler(intakeUseCase),
		handler.NewStatsHandler(statsUseCase),
		handler.NewSettingsHandler(settingsUseCase),
	)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address(), "version", Version)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", "error", err)
			return 1
		}

		cancel()

		if err := sched.Close(shutdownCtx); err != nil {
			slog.Warn("failed to close scheduler", "error", err)
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		_ = sched.Close(context.Background())

		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", "error", err)
		return 1
	}
}

func initDatabase(cfg config.DatabaseConfig, logCfg config.LogConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.NewGormLogger(cfg.SlowThreshold, logging.GormLevel(logCfg.Level)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	slog.Info("database connected", "driver", cfg.Driver)

	return db, nil
}

func newNotificationSink(publisher pubsub.Publisher) scheduler.NotificationSink {
	if publisher == nil {
		return notification.NewLogSink(slog.Default())
	}

	return notification.NewPublisherSink(publisher)
}

type routeRegistrar interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func setupRouter(cfg *config.Config, obs *observability.Resources, handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(middleware.PanicRecoveryGin())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/ping"},
		Module:      logging.Module("sip"),
		TracerName:  tracerName,
		HTTPMetrics: obs.HTTPMetrics,
	}))
	router.Use(cors.New(corsConfig(cfg.CORS)))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")
	for _, h := range handlers {
		h.RegisterRoutes(v1)
	}

	return router
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "x-request-id", "traceparent"},
		ExposeHeaders: []string{"Content-Length", "x-request-id"},
		MaxAge:        12 * time.Hour,
	}

	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}

	return c
}
