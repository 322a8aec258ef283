package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

const playerColumns = "id, name, position, nationality, birth_date, height, weight, jersey_number, team_id, photo_url, created_at"

// PlayerStore provides CRUD and filtered lookup for players.
type PlayerStore struct {
	pool *pgxpool.Pool
}

// PlayerFilter narrows List results; zero values mean no filter.
type PlayerFilter struct {
	TeamID      int
	Position    string
	Nationality string
}

// PlayerPatch carries a partial update; nil fields are left unchanged.
type PlayerPatch struct {
	Name         *string
	Position     *string
	Nationality  *string
	BirthDate    *string // ISO date
	Height       *float64
	Weight       *float64
	JerseyNumber *int
	TeamID       *int
	PhotoURL     *string
}

// PositionCount is one bucket of the position distribution.
type PositionCount struct {
	Position string `json:"position"`
	Count    int    `json:"count"`
}

// ScorerTotal is a player's summed goals across all statistic rows.
type ScorerTotal struct {
	PlayerID int
	Goals    int
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var p model.Player
	err := row.Scan(&p.ID, &p.Name, &p.Position, &p.Nationality, &p.BirthDate,
		&p.Height, &p.Weight, &p.JerseyNumber, &p.TeamID, &p.PhotoURL, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan player: %w", err)
	}
	return &p, nil
}

// Create inserts a player and fills in its id and creation time.
func (s *PlayerStore) Create(ctx context.Context, p *model.Player) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO players (name, position, nationality, birth_date, height, weight, jersey_number, team_id, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		p.Name, p.Position, p.Nationality, p.BirthDate, p.Height, p.Weight,
		p.JerseyNumber, p.TeamID, p.PhotoURL,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

// Get returns a player by id.
func (s *PlayerStore) Get(ctx context.Context, id int) (*model.Player, error) {
	return scanPlayer(s.pool.QueryRow(ctx,
		"SELECT "+playerColumns+" FROM players WHERE id = $1", id))
}

// List returns players matching the filter, ordered by id.
func (s *PlayerStore) List(ctx context.Context, f PlayerFilter) ([]model.Player, error) {
	var (
		conds []string
		args  []any
	)
	if f.TeamID != 0 {
		args = append(args, f.TeamID)
		conds = append(conds, fmt.Sprintf("team_id = $%d", len(args)))
	}
	if f.Position != "" {
		args = append(args, f.Position)
		conds = append(conds, fmt.Sprintf("position = $%d", len(args)))
	}
	if f.Nationality != "" {
		args = append(args, f.Nationality)
		conds = append(conds, fmt.Sprintf("nationality = $%d", len(args)))
	}

	sql := "SELECT " + playerColumns + " FROM players"
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY id"

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []model.Player
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Position, &p.Nationality, &p.BirthDate,
			&p.Height, &p.Weight, &p.JerseyNumber, &p.TeamID, &p.PhotoURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ListByTeam returns a team's roster.
func (s *PlayerStore) ListByTeam(ctx context.Context, teamID int) ([]model.Player, error) {
	return s.List(ctx, PlayerFilter{TeamID: teamID})
}

// Update applies a partial update and returns the updated player.
func (s *PlayerStore) Update(ctx context.Context, id int, p PlayerPatch) (*model.Player, error) {
	return scanPlayer(s.pool.QueryRow(ctx, `
		UPDATE players SET
			name          = COALESCE($2, name),
			position      = COALESCE($3, position),
			nationality   = COALESCE($4, nationality),
			birth_date    = COALESCE($5::date, birth_date),
			height        = COALESCE($6, height),
			weight        = COALESCE($7, weight),
			jersey_number = COALESCE($8, jersey_number),
			team_id       = COALESCE($9, team_id),
			photo_url     = COALESCE($10, photo_url)
		WHERE id = $1
		RETURNING `+playerColumns,
		id, p.Name, p.Position, p.Nationality, p.BirthDate, p.Height, p.Weight,
		p.JerseyNumber, p.TeamID, p.PhotoURL))
}

// Delete removes a player and its statistic rows in one transaction.
func (s *PlayerStore) Delete(ctx context.Context, id int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete player: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM statistics WHERE player_id = $1", id); err != nil {
		return fmt.Errorf("delete player statistics: %w", err)
	}
	tag, err := tx.Exec(ctx, "DELETE FROM players WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete player %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

// Count returns the total number of players.
func (s *PlayerStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "count_players").Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}

// PositionCounts returns how many players hold each position label.
func (s *PlayerStore) PositionCounts(ctx context.Context) ([]PositionCount, error) {
	rows, err := s.pool.Query(ctx, "position_counts")
	if err != nil {
		return nil, fmt.Errorf("position counts: %w", err)
	}
	defer rows.Close()

	var counts []PositionCount
	for rows.Next() {
		var c PositionCount
		if err := rows.Scan(&c.Position, &c.Count); err != nil {
			return nil, fmt.Errorf("scan position count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
