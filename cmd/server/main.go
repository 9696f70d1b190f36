package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arriddle/backend/internal/config"
	"arriddle/backend/internal/database"
	"arriddle/backend/internal/handler"
	"arriddle/backend/internal/logger"
	"arriddle/backend/internal/repository"

	"go.uber.org/zap"
)

func init() {
	config.LoadConfig()
}

// @title           ARriddle API
// @version         1.0
// @description     Backend for the ARriddle location-based scavenger-hunt game.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	cfg := config.AppConfig

	log := logger.Init(cfg.LogLevel, cfg.LogFile)
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	log.Info("database connection established",
		zap.String("driver", cfg.DatabaseDriver))

	if cfg.SeedDatabase {
		if err := database.Seed(db); err != nil {
			log.Fatal("database seeding failed", zap.Error(err))
		}
	}

	policy := repository.ParseReplayPolicy(cfg.SolveReplayPolicy)
	router := handler.NewRouter(db, log, policy)
	registerSwaggerRoutes(router)

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.ServerAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
