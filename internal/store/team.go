package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

const teamColumns = "id, name, country, league, founded_year, logo_url, created_at"

// TeamStore provides CRUD for teams.
type TeamStore struct {
	pool *pgxpool.Pool
}

// TeamPatch carries a partial update; nil fields are left unchanged.
type TeamPatch struct {
	Name        *string
	Country     *string
	League      *string
	FoundedYear *int
	LogoURL     *string
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var t model.Team
	err := row.Scan(&t.ID, &t.Name, &t.Country, &t.League, &t.FoundedYear, &t.LogoURL, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan team: %w", err)
	}
	return &t, nil
}

// Create inserts a team and fills in its id and creation time.
func (s *TeamStore) Create(ctx context.Context, t *model.Team) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO teams (name, country, league, founded_year, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		t.Name, t.Country, t.League, t.FoundedYear, t.LogoURL,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	return nil
}

// Get returns a team by id.
func (s *TeamStore) Get(ctx context.Context, id int) (*model.Team, error) {
	return scanTeam(s.pool.QueryRow(ctx,
		"SELECT "+teamColumns+" FROM teams WHERE id = $1", id))
}

// List returns all teams ordered by id.
func (s *TeamStore) List(ctx context.Context) ([]model.Team, error) {
	return s.listWhere(ctx, "SELECT "+teamColumns+" FROM teams ORDER BY id")
}

// ListByLeague returns the teams of one league ordered by id. Id order
// keeps standings ties deterministic across runs.
func (s *TeamStore) ListByLeague(ctx context.Context, league string) ([]model.Team, error) {
	return s.listWhere(ctx,
		"SELECT "+teamColumns+" FROM teams WHERE league = $1 ORDER BY id", league)
}

func (s *TeamStore) listWhere(ctx context.Context, sql string, args ...any) ([]model.Team, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []model.Team
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Country, &t.League, &t.FoundedYear, &t.LogoURL, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// Update applies a partial update and returns the updated team.
func (s *TeamStore) Update(ctx context.Context, id int, p TeamPatch) (*model.Team, error) {
	return scanTeam(s.pool.QueryRow(ctx, `
		UPDATE teams SET
			name         = COALESCE($2, name),
			country      = COALESCE($3, country),
			league       = COALESCE($4, league),
			founded_year = COALESCE($5, founded_year),
			logo_url     = COALESCE($6, logo_url)
		WHERE id = $1
		RETURNING `+teamColumns,
		id, p.Name, p.Country, p.League, p.FoundedYear, p.LogoURL))
}

// Delete removes a team. It fails with ErrConflict while players or
// matches still reference the team; whole seasons of results are too
// much to drop implicitly.
func (s *TeamStore) Delete(ctx context.Context, id int) error {
	var referenced bool
	err := s.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM players WHERE team_id = $1)
			OR EXISTS(SELECT 1 FROM matches WHERE home_team_id = $1 OR away_team_id = $1)`,
		id,
	).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("check team references: %w", err)
	}
	if referenced {
		return fmt.Errorf("delete team %d: %w", id, ErrConflict)
	}

	tag, err := s.pool.Exec(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete team %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of teams.
func (s *TeamStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "count_teams").Scan(&n); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return n, nil
}
