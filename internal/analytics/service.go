package analytics

import (
	"context"
	"fmt"

	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

// Reader interfaces describe exactly what the service needs from the
// record store. The pgx stores satisfy them; tests use in-memory fakes.

type TeamReader interface {
	Get(ctx context.Context, id int) (*model.Team, error)
	ListByLeague(ctx context.Context, league string) ([]model.Team, error)
	Count(ctx context.Context) (int, error)
}

type PlayerReader interface {
	Get(ctx context.Context, id int) (*model.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]model.Player, error)
	Count(ctx context.Context) (int, error)
	PositionCounts(ctx context.Context) ([]store.PositionCount, error)
}

type MatchReader interface {
	Get(ctx context.Context, id int) (*model.Match, error)
	List(ctx context.Context, f store.MatchFilter) ([]model.Match, error)
	ListBySeasonCompleted(ctx context.Context, season string) ([]model.Match, error)
	ListHeadToHead(ctx context.Context, teamA, teamB int) ([]model.Match, error)
	ListRecent(ctx context.Context, limit int) ([]model.Match, error)
	Count(ctx context.Context) (int, error)
}

type StatisticReader interface {
	ListByMatch(ctx context.Context, matchID int) ([]model.Statistic, error)
	ListByPlayer(ctx context.Context, playerID int) ([]model.Statistic, error)
	TopScorers(ctx context.Context, limit int) ([]store.ScorerTotal, error)
}

// Service is the comparison and ranking layer: it loads record
// snapshots through the injected readers and folds them with the pure
// engine functions. It holds no mutable state.
type Service struct {
	teams          TeamReader
	players        PlayerReader
	matches        MatchReader
	stats          StatisticReader
	attackingRoles []string
	weaknessRoles  []string
}

// NewService creates a Service over the given readers. attackingRoles
// configures the position labels eligible for the finishing strength;
// weaknessRoles the labels penalized when goal-shy.
func NewService(teams TeamReader, players PlayerReader, matches MatchReader, stats StatisticReader, attackingRoles, weaknessRoles []string) *Service {
	return &Service{
		teams:          teams,
		players:        players,
		matches:        matches,
		stats:          stats,
		attackingRoles: attackingRoles,
		weaknessRoles:  weaknessRoles,
	}
}

// --------------------------------------------------------------------------
// Team summary & comparison
// --------------------------------------------------------------------------

// TeamStats is a team's aggregate over all completed matches.
// AvgPossession and AvgPassAccuracy are fixed neutral placeholders
// (50 / 80) because they are not derivable from Match rows alone;
// Approximated marks them so callers do not present them as measured.
type TeamStats struct {
	TotalMatches    int     `json:"total_matches"`
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	GoalsScored     int     `json:"goals_scored"`
	GoalsConceded   int     `json:"goals_conceded"`
	WinPercentage   float64 `json:"win_percentage"`
	AvgPossession   float64 `json:"avg_possession"`
	AvgPassAccuracy float64 `json:"avg_pass_accuracy"`
	Approximated    bool    `json:"approximated"`
}

const (
	placeholderPossession   = 50.0
	placeholderPassAccuracy = 80.0
)

func teamStatsFromRecord(rec TeamRecord) TeamStats {
	s := TeamStats{
		TotalMatches:  rec.Played,
		Wins:          rec.Wins,
		Draws:         rec.Draws,
		Losses:        rec.Losses,
		GoalsScored:   rec.GoalsFor,
		GoalsConceded: rec.GoalsAgainst,
		WinPercentage: rec.WinPct,
	}
	if rec.Played > 0 {
		s.AvgPossession = placeholderPossession
		s.AvgPassAccuracy = placeholderPassAccuracy
		s.Approximated = true
	}
	return s
}

// TeamSummary is the team statistics report with recent form.
type TeamSummary struct {
	TeamID   int       `json:"team_id"`
	TeamName string    `json:"team_name"`
	Stats    TeamStats `json:"stats"`
	Form     []string  `json:"form"`
}

// TeamSummary aggregates a team's completed matches and last-5 form.
func (s *Service) TeamSummary(ctx context.Context, teamID int) (*TeamSummary, error) {
	team, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.List(ctx, store.MatchFilter{TeamID: teamID, Status: model.StatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("load team matches: %w", err)
	}
	return &TeamSummary{
		TeamID:   team.ID,
		TeamName: team.Name,
		Stats:    teamStatsFromRecord(ComputeTeamRecord(matches, teamID)),
		Form:     FormString(matches, teamID, 5),
	}, nil
}

// ComparedTeam is one side of a team comparison.
type ComparedTeam struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Stats TeamStats `json:"stats"`
}

// TeamComparison pairs two teams' aggregates. Comparison maps metric
// name to per-team-name values, the shape the dashboard charts expect.
type TeamComparison struct {
	Team1      ComparedTeam                  `json:"team1"`
	Team2      ComparedTeam                  `json:"team2"`
	Comparison map[string]map[string]float64 `json:"comparison"`
	HeadToHead []model.Match                 `json:"head_to_head"`
}

// CompareTeams builds a paired metric comparison keyed by team name,
// plus the head-to-head fixture list. Returns store.ErrNotFound when
// either id does not resolve.
func (s *Service) CompareTeams(ctx context.Context, team1ID, team2ID int) (*TeamComparison, error) {
	team1, err := s.teams.Get(ctx, team1ID)
	if err != nil {
		return nil, err
	}
	team2, err := s.teams.Get(ctx, team2ID)
	if err != nil {
		return nil, err
	}

	summary := func(teamID int) (TeamStats, error) {
		matches, err := s.matches.List(ctx, store.MatchFilter{TeamID: teamID, Status: model.StatusCompleted})
		if err != nil {
			return TeamStats{}, fmt.Errorf("load team matches: %w", err)
		}
		return teamStatsFromRecord(ComputeTeamRecord(matches, teamID)), nil
	}
	stats1, err := summary(team1ID)
	if err != nil {
		return nil, err
	}
	stats2, err := summary(team2ID)
	if err != nil {
		return nil, err
	}

	headToHead, err := s.matches.ListHeadToHead(ctx, team1ID, team2ID)
	if err != nil {
		return nil, fmt.Errorf("load head to head: %w", err)
	}
	if headToHead == nil {
		headToHead = []model.Match{}
	}

	pair := func(a, b float64) map[string]float64 {
		return map[string]float64{team1.Name: a, team2.Name: b}
	}
	return &TeamComparison{
		Team1: ComparedTeam{ID: team1.ID, Name: team1.Name, Stats: stats1},
		Team2: ComparedTeam{ID: team2.ID, Name: team2.Name, Stats: stats2},
		Comparison: map[string]map[string]float64{
			"goals_scored":   pair(float64(stats1.GoalsScored), float64(stats2.GoalsScored)),
			"goals_conceded": pair(float64(stats1.GoalsConceded), float64(stats2.GoalsConceded)),
			"win_percentage": pair(stats1.WinPercentage, stats2.WinPercentage),
			"possession":     pair(stats1.AvgPossession, stats2.AvgPossession),
			"pass_accuracy":  pair(stats1.AvgPassAccuracy, stats2.AvgPassAccuracy),
		},
		HeadToHead: headToHead,
	}, nil
}

// --------------------------------------------------------------------------
// Player summary, performance & comparison
// --------------------------------------------------------------------------

// PlayerSummary is a player's career aggregate with identity fields.
type PlayerSummary struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	PlayerAggregate
}

// PlayerSummary aggregates all of a player's statistic rows.
func (s *Service) PlayerSummary(ctx context.Context, playerID int) (*PlayerSummary, error) {
	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load player statistics: %w", err)
	}
	return &PlayerSummary{
		PlayerID:        player.ID,
		PlayerName:      player.Name,
		PlayerAggregate: AggregatePlayer(stats),
	}, nil
}

// PlayerPerformance is the rating report for one player.
type PlayerPerformance struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	Performance
}

// PlayerPerformance rates a player over all their statistic rows.
func (s *Service) PlayerPerformance(ctx context.Context, playerID int) (*PlayerPerformance, error) {
	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load player statistics: %w", err)
	}
	return &PlayerPerformance{
		PlayerID:    player.ID,
		PlayerName:  player.Name,
		Performance: RatePerformance(player.Position, stats, s.attackingRoles, s.weaknessRoles),
	}, nil
}

// ComparedPlayer is one side of a player comparison.
type ComparedPlayer struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Team     string          `json:"team"`
	Position string          `json:"position"`
	Stats    PlayerAggregate `json:"stats"`
}

// PlayerComparison pairs two players' aggregates keyed by player name.
type PlayerComparison struct {
	Player1    ComparedPlayer                `json:"player1"`
	Player2    ComparedPlayer                `json:"player2"`
	Comparison map[string]map[string]float64 `json:"comparison"`
}

// ComparePlayers builds a paired metric comparison keyed by player
// name. Returns store.ErrNotFound when either id does not resolve.
func (s *Service) ComparePlayers(ctx context.Context, player1ID, player2ID int) (*PlayerComparison, error) {
	load := func(id int) (*model.Player, PlayerAggregate, string, error) {
		p, err := s.players.Get(ctx, id)
		if err != nil {
			return nil, PlayerAggregate{}, "", err
		}
		stats, err := s.stats.ListByPlayer(ctx, id)
		if err != nil {
			return nil, PlayerAggregate{}, "", fmt.Errorf("load player statistics: %w", err)
		}
		teamName := "Unknown"
		if t, err := s.teams.Get(ctx, p.TeamID); err == nil {
			teamName = t.Name
		}
		return p, AggregatePlayer(stats), teamName, nil
	}

	p1, agg1, team1, err := load(player1ID)
	if err != nil {
		return nil, err
	}
	p2, agg2, team2, err := load(player2ID)
	if err != nil {
		return nil, err
	}

	pair := func(a, b float64) map[string]float64 {
		return map[string]float64{p1.Name: a, p2.Name: b}
	}
	return &PlayerComparison{
		Player1: ComparedPlayer{ID: p1.ID, Name: p1.Name, Team: team1, Position: p1.Position, Stats: agg1},
		Player2: ComparedPlayer{ID: p2.ID, Name: p2.Name, Team: team2, Position: p2.Position, Stats: agg2},
		Comparison: map[string]map[string]float64{
			"goals":           pair(float64(agg1.Goals), float64(agg2.Goals)),
			"assists":         pair(float64(agg1.Assists), float64(agg2.Assists)),
			"shots_on_target": pair(float64(agg1.ShotsOnTarget), float64(agg2.ShotsOnTarget)),
			"pass_accuracy":   pair(agg1.PassAccuracy, agg2.PassAccuracy),
			"tackles":         pair(float64(agg1.Tackles), float64(agg2.Tackles)),
		},
	}, nil
}

// --------------------------------------------------------------------------
// League table
// --------------------------------------------------------------------------

// LeagueStandings is a season's ranked table for one league.
type LeagueStandings struct {
	League string     `json:"league"`
	Season string     `json:"season"`
	Table  []TableRow `json:"table"`
}

// LeagueTable ranks a league's teams over one season's completed
// matches. Returns store.ErrNotFound when the league has no teams.
func (s *Service) LeagueTable(ctx context.Context, league, season string) (*LeagueStandings, error) {
	teams, err := s.teams.ListByLeague(ctx, league)
	if err != nil {
		return nil, fmt.Errorf("load league teams: %w", err)
	}
	if len(teams) == 0 {
		return nil, fmt.Errorf("league %q: %w", league, store.ErrNotFound)
	}
	matches, err := s.matches.ListBySeasonCompleted(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("load season matches: %w", err)
	}
	return &LeagueStandings{
		League: league,
		Season: season,
		Table:  BuildLeagueTable(teams, matches),
	}, nil
}

// --------------------------------------------------------------------------
// Performance trends
// --------------------------------------------------------------------------

// DefaultTrendLimit bounds trends when the caller does not specify one.
const DefaultTrendLimit = 10

// TeamTrendReport is a team's recent-match performance series, newest
// first.
type TeamTrendReport struct {
	TeamID   int              `json:"team_id"`
	TeamName string           `json:"team_name"`
	Points   []TeamTrendPoint `json:"performance_data"`
}

// TeamTrend recomputes per-match metrics for the team's most recent
// completed matches, newest first, capped to limit.
func (s *Service) TeamTrend(ctx context.Context, teamID, limit int) (*TeamTrendReport, error) {
	if limit <= 0 {
		limit = DefaultTrendLimit
	}
	team, err := s.teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.List(ctx, store.MatchFilter{
		TeamID: teamID,
		Status: model.StatusCompleted,
		Limit:  limit,
	})
	if err != nil {
		return nil, fmt.Errorf("load team matches: %w", err)
	}
	roster, err := s.players.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	points := make([]TeamTrendPoint, 0, len(matches))
	for _, m := range matches {
		stats, err := s.stats.ListByMatch(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("load match statistics: %w", err)
		}
		points = append(points, ComputeTeamTrendPoint(m, teamID, roster, stats, s.opponentName(ctx, m, teamID)))
	}
	return &TeamTrendReport{TeamID: team.ID, TeamName: team.Name, Points: points}, nil
}

// PlayerTrendReport is a player's recent-match performance series,
// newest first.
type PlayerTrendReport struct {
	PlayerID   int                `json:"player_id"`
	PlayerName string             `json:"player_name"`
	TeamName   string             `json:"team_name"`
	Points     []PlayerTrendPoint `json:"performance_data"`
}

// PlayerTrend walks the player's statistic rows newest-match first,
// skipping rows whose match is missing or not completed, capped to
// limit.
func (s *Service) PlayerTrend(ctx context.Context, playerID, limit int) (*PlayerTrendReport, error) {
	if limit <= 0 {
		limit = DefaultTrendLimit
	}
	player, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load player statistics: %w", err)
	}

	teamName := "Unknown"
	if t, err := s.teams.Get(ctx, player.TeamID); err == nil {
		teamName = t.Name
	}

	points := make([]PlayerTrendPoint, 0, limit)
	// Rows arrive oldest first; walk backwards for the recent ones.
	for i := len(stats) - 1; i >= 0 && len(points) < limit; i-- {
		st := stats[i]
		m, err := s.matches.Get(ctx, st.MatchID)
		if err != nil || !m.Completed() {
			continue
		}
		points = append(points, ComputePlayerTrendPoint(st, *m, player.TeamID, s.opponentName(ctx, *m, player.TeamID)))
	}
	return &PlayerTrendReport{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		TeamName:   teamName,
		Points:     points,
	}, nil
}

// opponentName resolves the other side's team name, or "Unknown" when
// the reference is dangling.
func (s *Service) opponentName(ctx context.Context, m model.Match, teamID int) string {
	opponentID := m.AwayTeamID
	if m.AwayTeamID == teamID {
		opponentID = m.HomeTeamID
	}
	if t, err := s.teams.Get(ctx, opponentID); err == nil {
		return t.Name
	}
	return "Unknown"
}

// --------------------------------------------------------------------------
// Match breakdown & timeline
// --------------------------------------------------------------------------

// MatchBreakdown loads a match's rows and rosters and folds them into
// a per-team, per-player summary.
func (s *Service) MatchBreakdown(ctx context.Context, matchID int) (*MatchBreakdown, error) {
	m, err := s.matches.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	home, err := s.teams.Get(ctx, m.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := s.teams.Get(ctx, m.AwayTeamID)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match statistics: %w", err)
	}
	homeRoster, err := s.players.ListByTeam(ctx, m.HomeTeamID)
	if err != nil {
		return nil, fmt.Errorf("load home roster: %w", err)
	}
	awayRoster, err := s.players.ListByTeam(ctx, m.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("load away roster: %w", err)
	}

	b := BreakdownMatch(*m, stats, *home, *away, homeRoster, awayRoster)
	return &b, nil
}

// MatchTimelineReport is the synthetic event timeline for one match.
// Simulated is always true: the events are fabricated from aggregate
// counters, not recorded.
type MatchTimelineReport struct {
	MatchID   int             `json:"match_id"`
	Simulated bool            `json:"simulated"`
	Home      MatchTeamSide   `json:"home_team"`
	Away      MatchTeamSide   `json:"away_team"`
	Timeline  []TimelineEvent `json:"timeline"`
}

// MatchTimeline synthesizes the event timeline for one match.
func (s *Service) MatchTimeline(ctx context.Context, matchID int) (*MatchTimelineReport, error) {
	m, err := s.matches.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	home, err := s.teams.Get(ctx, m.HomeTeamID)
	if err != nil {
		return nil, err
	}
	away, err := s.teams.Get(ctx, m.AwayTeamID)
	if err != nil {
		return nil, err
	}
	stats, err := s.stats.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match statistics: %w", err)
	}

	players := make(map[int]model.Player)
	teams := map[int]model.Team{home.ID: *home, away.ID: *away}
	for _, teamID := range []int{m.HomeTeamID, m.AwayTeamID} {
		roster, err := s.players.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("load roster: %w", err)
		}
		for _, p := range roster {
			players[p.ID] = p
		}
	}

	events := BuildTimeline(stats, players, teams)
	if events == nil {
		events = []TimelineEvent{}
	}
	return &MatchTimelineReport{
		MatchID:   m.ID,
		Simulated: true,
		Home:      MatchTeamSide{TeamID: home.ID, TeamName: home.Name, Score: m.HomeScore},
		Away:      MatchTeamSide{TeamID: away.ID, TeamName: away.Name, Score: m.AwayScore},
		Timeline:  events,
	}, nil
}

// --------------------------------------------------------------------------
// Dashboard
// --------------------------------------------------------------------------

// DashboardSummary holds the headline totals.
type DashboardSummary struct {
	TotalTeams   int `json:"total_teams"`
	TotalPlayers int `json:"total_players"`
	TotalMatches int `json:"total_matches"`
}

// TopScorer is one entry of the dashboard's scorer leaderboard.
type TopScorer struct {
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     int    `json:"team_id"`
	TeamName   string `json:"team_name"`
	Goals      int    `json:"goals"`
}

// DashboardReport is the landing-page overview.
type DashboardReport struct {
	Summary              DashboardSummary      `json:"summary"`
	RecentMatches        []model.Match         `json:"recent_matches"`
	TopScorers           []TopScorer           `json:"top_scorers"`
	PositionDistribution []store.PositionCount `json:"position_distribution"`
}

// Dashboard assembles entity totals, the five most recent matches, the
// top five scorers, and the player position distribution.
func (s *Service) Dashboard(ctx context.Context) (*DashboardReport, error) {
	report := &DashboardReport{
		RecentMatches:        []model.Match{},
		TopScorers:           []TopScorer{},
		PositionDistribution: []store.PositionCount{},
	}

	var err error
	if report.Summary.TotalTeams, err = s.teams.Count(ctx); err != nil {
		return nil, fmt.Errorf("count teams: %w", err)
	}
	if report.Summary.TotalPlayers, err = s.players.Count(ctx); err != nil {
		return nil, fmt.Errorf("count players: %w", err)
	}
	if report.Summary.TotalMatches, err = s.matches.Count(ctx); err != nil {
		return nil, fmt.Errorf("count matches: %w", err)
	}

	recent, err := s.matches.ListRecent(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("recent matches: %w", err)
	}
	if recent != nil {
		report.RecentMatches = recent
	}

	scorers, err := s.stats.TopScorers(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("top scorers: %w", err)
	}
	for _, sc := range scorers {
		p, err := s.players.Get(ctx, sc.PlayerID)
		if err != nil {
			continue // player deleted since the stats were written
		}
		teamName := "Unknown"
		if t, err := s.teams.Get(ctx, p.TeamID); err == nil {
			teamName = t.Name
		}
		report.TopScorers = append(report.TopScorers, TopScorer{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			TeamID:     p.TeamID,
			TeamName:   teamName,
			Goals:      sc.Goals,
		})
	}

	positions, err := s.players.PositionCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("position counts: %w", err)
	}
	if positions != nil {
		report.PositionDistribution = positions
	}
	return report, nil
}
