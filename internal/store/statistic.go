package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

const statColumns = `id, match_id, player_id, minutes_played, goals, assists, shots,
	shots_on_target, key_passes, dribbles_completed, tackles, interceptions,
	clearances, blocks, passes, passes_completed, pass_accuracy, yellow_cards,
	red_cards, fouls_committed, fouls_suffered, saves, goals_conceded,
	clean_sheet, expected_goals, conversion_rate, created_at`

// StatisticStore provides CRUD for per-player-per-match statistic rows.
type StatisticStore struct {
	pool *pgxpool.Pool
}

// StatisticPatch carries a partial update; nil fields are left unchanged.
type StatisticPatch struct {
	MinutesPlayed     *int
	Goals             *int
	Assists           *int
	Shots             *int
	ShotsOnTarget     *int
	KeyPasses         *int
	DribblesCompleted *int
	Tackles           *int
	Interceptions     *int
	Clearances        *int
	Blocks            *int
	Passes            *int
	PassesCompleted   *int
	PassAccuracy      *float64
	YellowCards       *int
	RedCards          *int
	FoulsCommitted    *int
	FoulsSuffered     *int
	Saves             *int
	GoalsConceded     *int
	CleanSheet        *bool
	ExpectedGoals     *float64
	ConversionRate    *float64
}

func scanStat(row pgx.Row) (*model.Statistic, error) {
	var st model.Statistic
	err := row.Scan(&st.ID, &st.MatchID, &st.PlayerID, &st.MinutesPlayed, &st.Goals,
		&st.Assists, &st.Shots, &st.ShotsOnTarget, &st.KeyPasses, &st.DribblesCompleted,
		&st.Tackles, &st.Interceptions, &st.Clearances, &st.Blocks, &st.Passes,
		&st.PassesCompleted, &st.PassAccuracy, &st.YellowCards, &st.RedCards,
		&st.FoulsCommitted, &st.FoulsSuffered, &st.Saves, &st.GoalsConceded,
		&st.CleanSheet, &st.ExpectedGoals, &st.ConversionRate, &st.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan statistic: %w", err)
	}
	return &st, nil
}

func collectStats(rows pgx.Rows) ([]model.Statistic, error) {
	defer rows.Close()
	var stats []model.Statistic
	for rows.Next() {
		var st model.Statistic
		if err := rows.Scan(&st.ID, &st.MatchID, &st.PlayerID, &st.MinutesPlayed, &st.Goals,
			&st.Assists, &st.Shots, &st.ShotsOnTarget, &st.KeyPasses, &st.DribblesCompleted,
			&st.Tackles, &st.Interceptions, &st.Clearances, &st.Blocks, &st.Passes,
			&st.PassesCompleted, &st.PassAccuracy, &st.YellowCards, &st.RedCards,
			&st.FoulsCommitted, &st.FoulsSuffered, &st.Saves, &st.GoalsConceded,
			&st.CleanSheet, &st.ExpectedGoals, &st.ConversionRate, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan statistic: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// Create inserts a statistic row and fills in its id and creation time.
func (s *StatisticStore) Create(ctx context.Context, st *model.Statistic) error {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO statistics (match_id, player_id, minutes_played, goals, assists,
			shots, shots_on_target, key_passes, dribbles_completed, tackles,
			interceptions, clearances, blocks, passes, passes_completed, pass_accuracy,
			yellow_cards, red_cards, fouls_committed, fouls_suffered, saves,
			goals_conceded, clean_sheet, expected_goals, conversion_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING id, created_at`,
		st.MatchID, st.PlayerID, st.MinutesPlayed, st.Goals, st.Assists,
		st.Shots, st.ShotsOnTarget, st.KeyPasses, st.DribblesCompleted, st.Tackles,
		st.Interceptions, st.Clearances, st.Blocks, st.Passes, st.PassesCompleted,
		st.PassAccuracy, st.YellowCards, st.RedCards, st.FoulsCommitted,
		st.FoulsSuffered, st.Saves, st.GoalsConceded, st.CleanSheet,
		st.ExpectedGoals, st.ConversionRate,
	).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		return fmt.Errorf("create statistic: %w", err)
	}
	return nil
}

// Get returns a statistic row by id.
func (s *StatisticStore) Get(ctx context.Context, id int) (*model.Statistic, error) {
	return scanStat(s.pool.QueryRow(ctx,
		"SELECT "+statColumns+" FROM statistics WHERE id = $1", id))
}

// ListByMatch returns all statistic rows recorded for one match.
func (s *StatisticStore) ListByMatch(ctx context.Context, matchID int) ([]model.Statistic, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+statColumns+" FROM statistics WHERE match_id = $1 ORDER BY id", matchID)
	if err != nil {
		return nil, fmt.Errorf("list match statistics: %w", err)
	}
	return collectStats(rows)
}

// ListByPlayer returns a player's statistic rows in match date order
// (oldest first), so callers see them chronologically.
func (s *StatisticStore) ListByPlayer(ctx context.Context, playerID int) ([]model.Statistic, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT s.id, s.match_id, s.player_id, s.minutes_played, s.goals, s.assists,
			s.shots, s.shots_on_target, s.key_passes, s.dribbles_completed, s.tackles,
			s.interceptions, s.clearances, s.blocks, s.passes, s.passes_completed,
			s.pass_accuracy, s.yellow_cards, s.red_cards, s.fouls_committed,
			s.fouls_suffered, s.saves, s.goals_conceded, s.clean_sheet,
			s.expected_goals, s.conversion_rate, s.created_at
		FROM statistics s
		JOIN matches m ON m.id = s.match_id
		WHERE s.player_id = $1
		ORDER BY m.date`, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player statistics: %w", err)
	}
	return collectStats(rows)
}

// Update applies a partial update and returns the updated row. Match
// and player references are immutable after creation.
func (s *StatisticStore) Update(ctx context.Context, id int, p StatisticPatch) (*model.Statistic, error) {
	return scanStat(s.pool.QueryRow(ctx, `
		UPDATE statistics SET
			minutes_played     = COALESCE($2, minutes_played),
			goals              = COALESCE($3, goals),
			assists            = COALESCE($4, assists),
			shots              = COALESCE($5, shots),
			shots_on_target    = COALESCE($6, shots_on_target),
			key_passes         = COALESCE($7, key_passes),
			dribbles_completed = COALESCE($8, dribbles_completed),
			tackles            = COALESCE($9, tackles),
			interceptions      = COALESCE($10, interceptions),
			clearances         = COALESCE($11, clearances),
			blocks             = COALESCE($12, blocks),
			passes             = COALESCE($13, passes),
			passes_completed   = COALESCE($14, passes_completed),
			pass_accuracy      = COALESCE($15, pass_accuracy),
			yellow_cards       = COALESCE($16, yellow_cards),
			red_cards          = COALESCE($17, red_cards),
			fouls_committed    = COALESCE($18, fouls_committed),
			fouls_suffered     = COALESCE($19, fouls_suffered),
			saves              = COALESCE($20, saves),
			goals_conceded     = COALESCE($21, goals_conceded),
			clean_sheet        = COALESCE($22, clean_sheet),
			expected_goals     = COALESCE($23, expected_goals),
			conversion_rate    = COALESCE($24, conversion_rate)
		WHERE id = $1
		RETURNING `+statColumns,
		id, p.MinutesPlayed, p.Goals, p.Assists, p.Shots, p.ShotsOnTarget,
		p.KeyPasses, p.DribblesCompleted, p.Tackles, p.Interceptions, p.Clearances,
		p.Blocks, p.Passes, p.PassesCompleted, p.PassAccuracy, p.YellowCards,
		p.RedCards, p.FoulsCommitted, p.FoulsSuffered, p.Saves, p.GoalsConceded,
		p.CleanSheet, p.ExpectedGoals, p.ConversionRate))
}

// Delete removes a statistic row.
func (s *StatisticStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM statistics WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete statistic %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TopScorers returns the players with the highest summed goals.
func (s *StatisticStore) TopScorers(ctx context.Context, limit int) ([]ScorerTotal, error) {
	rows, err := s.pool.Query(ctx, "top_scorers", limit)
	if err != nil {
		return nil, fmt.Errorf("top scorers: %w", err)
	}
	defer rows.Close()

	var scorers []ScorerTotal
	for rows.Next() {
		var sc ScorerTotal
		if err := rows.Scan(&sc.PlayerID, &sc.Goals); err != nil {
			return nil, fmt.Errorf("scan scorer: %w", err)
		}
		scorers = append(scorers, sc)
	}
	return scorers, rows.Err()
}
