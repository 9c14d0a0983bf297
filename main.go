package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/internhub/config"
	_ "github.com/DhavalSuthar-24/internhub/docs"
	"github.com/DhavalSuthar-24/internhub/pkg/logger"
	"github.com/DhavalSuthar-24/internhub/routes"
)

// @title InternHub API
// @version 1.0
// @description Internship program tracker: sprints, check-ins, kanban, high-fives, one-on-ones and coffee chats.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.App.Env, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := config.ConnectDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("database handle unavailable", zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()

	if cfg.DB.MigrateOnStart {
		migrateCtx, cancel := context.WithTimeout(ctx, time.Minute)
		err := config.Migrate(migrateCtx, db, zlog)
		cancel()
		if err != nil {
			zlog.Fatal("migration failed", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.SetupRoutes(cfg, db, zlog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("server shutdown timeout", zap.Duration("timeout", cfg.App.ShutdownTimeout), zap.Error(err))
	}
	zlog.Info("server stopped")
}
