package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Migrate creates the schema if it does not exist. Statements are
// idempotent so the command can run on every deploy. It takes a raw
// connection because the pool's prepared statements reference tables
// that do not exist before the first run.
func Migrate(ctx context.Context, conn *pgx.Conn) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(80) UNIQUE NOT NULL,
			email VARCHAR(120) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS teams (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			country VARCHAR(50) NOT NULL,
			league VARCHAR(100) NOT NULL,
			founded_year INTEGER,
			logo_url VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teams_league ON teams(league)`,

		`CREATE TABLE IF NOT EXISTS players (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			position VARCHAR(50) NOT NULL,
			nationality VARCHAR(50) NOT NULL,
			birth_date DATE,
			height DOUBLE PRECISION,
			weight DOUBLE PRECISION,
			jersey_number INTEGER,
			team_id INTEGER NOT NULL REFERENCES teams(id),
			photo_url VARCHAR(255),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_players_team_id ON players(team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_players_position ON players(position)`,

		`CREATE TABLE IF NOT EXISTS matches (
			id SERIAL PRIMARY KEY,
			date TIMESTAMPTZ NOT NULL,
			home_team_id INTEGER NOT NULL REFERENCES teams(id),
			away_team_id INTEGER NOT NULL REFERENCES teams(id),
			home_score INTEGER NOT NULL DEFAULT 0,
			away_score INTEGER NOT NULL DEFAULT 0,
			season VARCHAR(20) NOT NULL,
			competition VARCHAR(100) NOT NULL,
			venue VARCHAR(100),
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_home_team ON matches(home_team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_away_team ON matches(away_team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_season_status ON matches(season, status)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date)`,

		`CREATE TABLE IF NOT EXISTS statistics (
			id SERIAL PRIMARY KEY,
			match_id INTEGER NOT NULL REFERENCES matches(id),
			player_id INTEGER NOT NULL REFERENCES players(id),
			minutes_played INTEGER NOT NULL DEFAULT 0,
			goals INTEGER NOT NULL DEFAULT 0,
			assists INTEGER NOT NULL DEFAULT 0,
			shots INTEGER NOT NULL DEFAULT 0,
			shots_on_target INTEGER NOT NULL DEFAULT 0,
			key_passes INTEGER NOT NULL DEFAULT 0,
			dribbles_completed INTEGER NOT NULL DEFAULT 0,
			tackles INTEGER NOT NULL DEFAULT 0,
			interceptions INTEGER NOT NULL DEFAULT 0,
			clearances INTEGER NOT NULL DEFAULT 0,
			blocks INTEGER NOT NULL DEFAULT 0,
			passes INTEGER NOT NULL DEFAULT 0,
			passes_completed INTEGER NOT NULL DEFAULT 0,
			pass_accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
			yellow_cards INTEGER NOT NULL DEFAULT 0,
			red_cards INTEGER NOT NULL DEFAULT 0,
			fouls_committed INTEGER NOT NULL DEFAULT 0,
			fouls_suffered INTEGER NOT NULL DEFAULT 0,
			saves INTEGER NOT NULL DEFAULT 0,
			goals_conceded INTEGER NOT NULL DEFAULT 0,
			clean_sheet BOOLEAN NOT NULL DEFAULT FALSE,
			expected_goals DOUBLE PRECISION NOT NULL DEFAULT 0,
			conversion_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_statistics_match_id ON statistics(match_id)`,
		`CREATE INDEX IF NOT EXISTS idx_statistics_player_id ON statistics(player_id)`,
	}

	for i, stmt := range migrations {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
