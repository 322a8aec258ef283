// Command api is the sports analytics API server.
//
// Usage:
//
//	sports-api
//	API_PORT=8000 sports-api

// @title Sports Analytics API
// @version 1.0.0
// @description Backend for a sports analytics dashboard: team, player, match, and statistic records plus aggregated comparisons, standings, ratings, and trends.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/Nad1ah/sports-dashboard/internal/analytics"
	"github.com/Nad1ah/sports-dashboard/internal/api"
	"github.com/Nad1ah/sports-dashboard/internal/cache"
	"github.com/Nad1ah/sports-dashboard/internal/config"
	"github.com/Nad1ah/sports-dashboard/internal/db"
	"github.com/Nad1ah/sports-dashboard/internal/store"

	_ "github.com/Nad1ah/sports-dashboard/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	st := store.New(pool.Pool)
	svc := analytics.NewService(st.Teams, st.Players, st.Matches, st.Statistics, cfg.AttackingRoles, cfg.FinishingWeaknessRoles)

	router := api.NewRouter(pool, st, svc, appCache, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Sports Analytics API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
