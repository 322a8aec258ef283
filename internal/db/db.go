// Package db provides a pgxpool-based connection pool with prepared statement
// registration, schema migration, and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nad1ah/sports-dashboard/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers the statements behind the hottest
// read paths (dashboard, standings inputs). Prepared statements eliminate
// parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Dashboard
		"count_teams":   "SELECT COUNT(*) FROM teams",
		"count_players": "SELECT COUNT(*) FROM players",
		"count_matches": "SELECT COUNT(*) FROM matches",
		"recent_matches": `SELECT id, date, home_team_id, away_team_id, home_score, away_score,
			season, competition, venue, status, created_at
			FROM matches ORDER BY date DESC LIMIT $1`,
		"top_scorers": `SELECT player_id, COALESCE(SUM(goals), 0) AS total_goals
			FROM statistics GROUP BY player_id ORDER BY total_goals DESC LIMIT $1`,
		"position_counts": `SELECT position, COUNT(*) FROM players
			GROUP BY position ORDER BY COUNT(*) DESC, position`,

		// Standings input: completed matches for a season
		"season_completed_matches": `SELECT id, date, home_team_id, away_team_id, home_score, away_score,
			season, competition, venue, status, created_at
			FROM matches WHERE season = $1 AND status = 'completed' ORDER BY date`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
