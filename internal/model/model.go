// Package model defines the record types shared by the store, the
// analytics engine, and the API layer.
package model

import "time"

// Match lifecycle states. Only completed matches contribute to
// win/draw/loss tallies and standings.
const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusCompleted = "completed"
	StatusPostponed = "postponed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a known match status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusLive, StatusCompleted, StatusPostponed, StatusCancelled:
		return true
	}
	return false
}

// Team is a club competing in a league.
type Team struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	League      string    `json:"league"`
	FoundedYear *int      `json:"founded_year"`
	LogoURL     *string   `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Player belongs to exactly one team. Position is a free-form role
// label (Forward, Defender, Goalkeeper, ...), not a closed set.
type Player struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Position     string     `json:"position"`
	Nationality  string     `json:"nationality"`
	BirthDate    *time.Time `json:"birth_date"`
	Height       *float64   `json:"height"`
	Weight       *float64   `json:"weight"`
	JerseyNumber *int       `json:"jersey_number"`
	TeamID       int        `json:"team_id"`
	PhotoURL     *string    `json:"photo_url"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Match is a fixture between two teams. HomeScore/AwayScore are the
// authoritative scoreline; summed Statistic goals may diverge and are
// never used to report a score.
type Match struct {
	ID          int       `json:"id"`
	Date        time.Time `json:"date"`
	HomeTeamID  int       `json:"home_team_id"`
	AwayTeamID  int       `json:"away_team_id"`
	HomeScore   int       `json:"home_score"`
	AwayScore   int       `json:"away_score"`
	Season      string    `json:"season"`
	Competition string    `json:"competition"`
	Venue       *string   `json:"venue"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Involves reports whether the team played in this match on either side.
func (m Match) Involves(teamID int) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Completed reports whether the match counts toward records and standings.
func (m Match) Completed() bool {
	return m.Status == StatusCompleted
}

// Statistic holds one player's counters for one match. One row per
// player per match is assumed by the aggregation engine but not
// enforced by the schema.
type Statistic struct {
	ID       int `json:"id"`
	MatchID  int `json:"match_id"`
	PlayerID int `json:"player_id"`

	MinutesPlayed int `json:"minutes_played"`

	// Offense
	Goals             int `json:"goals"`
	Assists           int `json:"assists"`
	Shots             int `json:"shots"`
	ShotsOnTarget     int `json:"shots_on_target"`
	KeyPasses         int `json:"key_passes"`
	DribblesCompleted int `json:"dribbles_completed"`

	// Defense
	Tackles       int `json:"tackles"`
	Interceptions int `json:"interceptions"`
	Clearances    int `json:"clearances"`
	Blocks        int `json:"blocks"`

	// Possession. PassAccuracy is stored as reported, not derived from
	// Passes/PassesCompleted on write; aggregate views recompute it.
	Passes          int     `json:"passes"`
	PassesCompleted int     `json:"passes_completed"`
	PassAccuracy    float64 `json:"pass_accuracy"`

	// Discipline
	YellowCards    int `json:"yellow_cards"`
	RedCards       int `json:"red_cards"`
	FoulsCommitted int `json:"fouls_committed"`
	FoulsSuffered  int `json:"fouls_suffered"`

	// Goalkeeping
	Saves         int  `json:"saves"`
	GoalsConceded int  `json:"goals_conceded"`
	CleanSheet    bool `json:"clean_sheet"`

	// Attacking models
	ExpectedGoals  float64 `json:"expected_goals"`
	ConversionRate float64 `json:"conversion_rate"`

	CreatedAt time.Time `json:"created_at"`
}

// User is an API account. PasswordHash never serializes.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
