package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	adapterrepo "github.com/Yago-Rueda-24/Datos-Dados-backend/internal/adapter/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/config"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db"
	httpServer "github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/http"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/srd"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize database and Redis connections, run migrations
	infra, err := db.NewInfrastructure(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize infrastructure", zap.Error(err))
	}
	defer func() {
		if err := infra.Close(); err != nil {
			zapLogger.Error("Failed to close infrastructure", zap.Error(err))
		}
	}()

	// Initialize repositories and usecases
	repos := adapterrepo.InitRepositories(infra.DB, infra.RedisClient)

	useCases := usecase.NewUseCases(repos, usecase.TokenConfig{
		SessionTTL:       cfg.Session.TTLDuration(),
		MaxSessionAge:    cfg.Session.MaxAgeDuration(),
		MaxTokensPerUser: cfg.Session.MaxTokensPerUser,
	}, zapLogger)

	// Context for the background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Official spell import runs once at startup; a failure is logged but
	// never blocks serving.
	if cfg.Importer.Enabled {
		go func() {
			timeout := time.Duration(cfg.Importer.Timeout) * time.Second
			client := srd.NewClient(cfg.Importer.BaseURL, timeout)
			importer := usecase.NewOfficialSpellImporter(zapLogger, client, repos.User, repos.Spell)
			if err := importer.Run(ctx); err != nil {
				zapLogger.Error("Official spell import failed", zap.Error(err))
			}
		}()
	}

	// Periodic purge of dead tokens
	go useCases.TokenUseCase.RunPurgeLoop(ctx, cfg.Session.PurgeIntervalDuration())

	// Start HTTP server
	srv := httpServer.NewServer(cfg, zapLogger, useCases)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	zapLogger.Info("Server shut down successfully")
}
