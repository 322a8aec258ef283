// Command sportsctl is the operational CLI for the sports analytics
// backend.
//
// Usage:
//
//	sportsctl migrate
//	sportsctl seed
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Nad1ah/sports-dashboard/internal/config"
	"github.com/Nad1ah/sports-dashboard/internal/db"
	"github.com/Nad1ah/sports-dashboard/internal/seed"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "sportsctl",
		Short: "Sports analytics backend CLI",
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			// A plain connection, not the pool: the pool prepares
			// statements against tables that may not exist yet.
			conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer conn.Close(ctx)

			start := time.Now()
			if err := db.Migrate(ctx, conn); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Migration complete", "duration", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a demo league into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			pool, err := db.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer pool.Close()

			start := time.Now()
			result := seed.Run(ctx, store.New(pool.Pool), logger)
			logger.Info("Seed finished",
				"duration", time.Since(start).Round(time.Second),
				"summary", result.Summary())
			for _, e := range result.Errors {
				logger.Error("seed error", "error", e)
			}
			return nil
		},
	}
}
