package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

const matchColumns = "id, date, home_team_id, away_team_id, home_score, away_score, season, competition, venue, status, created_at"

// MatchStore provides CRUD and filtered lookup for matches.
type MatchStore struct {
	pool *pgxpool.Pool
}

// MatchFilter narrows List results; zero values mean no filter.
// TeamID matches either side of the fixture.
type MatchFilter struct {
	TeamID      int
	Status      string
	Competition string
	Season      string
	Limit       int
}

// MatchPatch carries a partial update; nil fields are left unchanged.
type MatchPatch struct {
	Date        *time.Time
	HomeTeamID  *int
	AwayTeamID  *int
	HomeScore   *int
	AwayScore   *int
	Season      *string
	Competition *string
	Venue       *string
	Status      *string
}

func scanMatchRow(row pgx.Row) (*model.Match, error) {
	var m model.Match
	err := row.Scan(&m.ID, &m.Date, &m.HomeTeamID, &m.AwayTeamID, &m.HomeScore,
		&m.AwayScore, &m.Season, &m.Competition, &m.Venue, &m.Status, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan match: %w", err)
	}
	return &m, nil
}

func collectMatches(rows pgx.Rows) ([]model.Match, error) {
	defer rows.Close()
	var matches []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.Date, &m.HomeTeamID, &m.AwayTeamID, &m.HomeScore,
			&m.AwayScore, &m.Season, &m.Competition, &m.Venue, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Create inserts a match and fills in its id and creation time.
func (s *MatchStore) Create(ctx context.Context, m *model.Match) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO matches (date, home_team_id, away_team_id, home_score, away_score, season, competition, venue, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		m.Date, m.HomeTeamID, m.AwayTeamID, m.HomeScore, m.AwayScore,
		m.Season, m.Competition, m.Venue, m.Status,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

// Get returns a match by id.
func (s *MatchStore) Get(ctx context.Context, id int) (*model.Match, error) {
	return scanMatchRow(s.pool.QueryRow(ctx,
		"SELECT "+matchColumns+" FROM matches WHERE id = $1", id))
}

// List returns matches matching the filter, newest first.
func (s *MatchStore) List(ctx context.Context, f MatchFilter) ([]model.Match, error) {
	var (
		conds []string
		args  []any
	)
	if f.TeamID != 0 {
		args = append(args, f.TeamID)
		conds = append(conds, fmt.Sprintf("(home_team_id = $%d OR away_team_id = $%d)", len(args), len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Competition != "" {
		args = append(args, f.Competition)
		conds = append(conds, fmt.Sprintf("competition = $%d", len(args)))
	}
	if f.Season != "" {
		args = append(args, f.Season)
		conds = append(conds, fmt.Sprintf("season = $%d", len(args)))
	}

	sql := "SELECT " + matchColumns + " FROM matches"
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY date DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return collectMatches(rows)
}

// ListBySeasonCompleted returns a season's completed matches in date
// order. This is the standings input.
func (s *MatchStore) ListBySeasonCompleted(ctx context.Context, season string) ([]model.Match, error) {
	rows, err := s.pool.Query(ctx, "season_completed_matches", season)
	if err != nil {
		return nil, fmt.Errorf("season matches: %w", err)
	}
	return collectMatches(rows)
}

// ListHeadToHead returns all fixtures between two teams, newest first.
func (s *MatchStore) ListHeadToHead(ctx context.Context, teamA, teamB int) ([]model.Match, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+matchColumns+` FROM matches
		WHERE (home_team_id = $1 AND away_team_id = $2)
			OR (home_team_id = $2 AND away_team_id = $1)
		ORDER BY date DESC`, teamA, teamB)
	if err != nil {
		return nil, fmt.Errorf("head to head: %w", err)
	}
	return collectMatches(rows)
}

// ListRecent returns the most recently played or scheduled matches.
func (s *MatchStore) ListRecent(ctx context.Context, limit int) ([]model.Match, error) {
	rows, err := s.pool.Query(ctx, "recent_matches", limit)
	if err != nil {
		return nil, fmt.Errorf("recent matches: %w", err)
	}
	return collectMatches(rows)
}

// Update applies a partial update and returns the updated match.
func (s *MatchStore) Update(ctx context.Context, id int, p MatchPatch) (*model.Match, error) {
	return scanMatchRow(s.pool.QueryRow(ctx, `
		UPDATE matches SET
			date         = COALESCE($2, date),
			home_team_id = COALESCE($3, home_team_id),
			away_team_id = COALESCE($4, away_team_id),
			home_score   = COALESCE($5, home_score),
			away_score   = COALESCE($6, away_score),
			season       = COALESCE($7, season),
			competition  = COALESCE($8, competition),
			venue        = COALESCE($9, venue),
			status       = COALESCE($10, status)
		WHERE id = $1
		RETURNING `+matchColumns,
		id, p.Date, p.HomeTeamID, p.AwayTeamID, p.HomeScore, p.AwayScore,
		p.Season, p.Competition, p.Venue, p.Status))
}

// Delete removes a match and its statistic rows in one transaction.
func (s *MatchStore) Delete(ctx context.Context, id int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete match: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM statistics WHERE match_id = $1", id); err != nil {
		return fmt.Errorf("delete match statistics: %w", err)
	}
	tag, err := tx.Exec(ctx, "DELETE FROM matches WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete match %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

// Count returns the total number of matches.
func (s *MatchStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "count_matches").Scan(&n); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}
