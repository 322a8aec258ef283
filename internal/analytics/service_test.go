package analytics

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

// In-memory fakes backing the Service readers.

type fakeTeams struct {
	teams map[int]model.Team
}

func (f *fakeTeams) Get(_ context.Context, id int) (*model.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTeams) ListByLeague(_ context.Context, league string) ([]model.Team, error) {
	var out []model.Team
	for _, t := range f.teams {
		if t.League == league {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTeams) Count(context.Context) (int, error) { return len(f.teams), nil }

type fakePlayers struct {
	players map[int]model.Player
}

func (f *fakePlayers) Get(_ context.Context, id int) (*model.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakePlayers) ListByTeam(_ context.Context, teamID int) ([]model.Player, error) {
	var out []model.Player
	for _, p := range f.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlayers) Count(context.Context) (int, error) { return len(f.players), nil }

func (f *fakePlayers) PositionCounts(context.Context) ([]store.PositionCount, error) {
	byPos := map[string]int{}
	for _, p := range f.players {
		byPos[p.Position]++
	}
	var out []store.PositionCount
	for pos, n := range byPos {
		out = append(out, store.PositionCount{Position: pos, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type fakeMatches struct {
	matches []model.Match
}

func (f *fakeMatches) Get(_ context.Context, id int) (*model.Match, error) {
	for _, m := range f.matches {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeMatches) List(_ context.Context, filter store.MatchFilter) ([]model.Match, error) {
	var out []model.Match
	for _, m := range f.matches {
		if filter.TeamID != 0 && !m.Involves(filter.TeamID) {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if filter.Season != "" && m.Season != filter.Season {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeMatches) ListBySeasonCompleted(ctx context.Context, season string) ([]model.Match, error) {
	return f.List(ctx, store.MatchFilter{Season: season, Status: model.StatusCompleted})
}

func (f *fakeMatches) ListHeadToHead(_ context.Context, a, b int) ([]model.Match, error) {
	var out []model.Match
	for _, m := range f.matches {
		if m.Involves(a) && m.Involves(b) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatches) ListRecent(ctx context.Context, limit int) ([]model.Match, error) {
	return f.List(ctx, store.MatchFilter{Limit: limit})
}

func (f *fakeMatches) Count(context.Context) (int, error) { return len(f.matches), nil }

type fakeStats struct {
	stats []model.Statistic
}

func (f *fakeStats) ListByMatch(_ context.Context, matchID int) ([]model.Statistic, error) {
	var out []model.Statistic
	for _, st := range f.stats {
		if st.MatchID == matchID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStats) ListByPlayer(_ context.Context, playerID int) ([]model.Statistic, error) {
	var out []model.Statistic
	for _, st := range f.stats {
		if st.PlayerID == playerID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStats) TopScorers(_ context.Context, limit int) ([]store.ScorerTotal, error) {
	goals := map[int]int{}
	for _, st := range f.stats {
		goals[st.PlayerID] += st.Goals
	}
	var out []store.ScorerTotal
	for id, g := range goals {
		if g > 0 {
			out = append(out, store.ScorerTotal{PlayerID: id, Goals: g})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Goals > out[j].Goals })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func day(n int) time.Time {
	return time.Date(2025, time.September, n, 15, 0, 0, 0, time.UTC)
}

func newTestService() *Service {
	teams := &fakeTeams{teams: map[int]model.Team{
		1: {ID: 1, Name: "Reds", League: "Premier"},
		2: {ID: 2, Name: "Blues", League: "Premier"},
		3: {ID: 3, Name: "Greens", League: "Premier"},
	}}
	players := &fakePlayers{players: map[int]model.Player{
		11: {ID: 11, Name: "Red Striker", Position: "Striker", TeamID: 1},
		12: {ID: 12, Name: "Red Keeper", Position: "Goalkeeper", TeamID: 1},
		21: {ID: 21, Name: "Blue Mid", Position: "Midfielder", TeamID: 2},
	}}
	matches := &fakeMatches{matches: []model.Match{
		{ID: 1, Date: day(1), HomeTeamID: 1, AwayTeamID: 2, HomeScore: 2, AwayScore: 0, Season: "2025-26", Status: model.StatusCompleted},
		{ID: 2, Date: day(8), HomeTeamID: 2, AwayTeamID: 1, HomeScore: 1, AwayScore: 1, Season: "2025-26", Status: model.StatusCompleted},
		{ID: 3, Date: day(15), HomeTeamID: 1, AwayTeamID: 3, HomeScore: 0, AwayScore: 1, Season: "2025-26", Status: model.StatusCompleted},
		{ID: 4, Date: day(22), HomeTeamID: 3, AwayTeamID: 1, Season: "2025-26", Status: model.StatusScheduled},
	}}
	stats := &fakeStats{stats: []model.Statistic{
		{ID: 1, MatchID: 1, PlayerID: 11, MinutesPlayed: 90, Goals: 2, Shots: 5, ShotsOnTarget: 3, Passes: 20, PassesCompleted: 16, PassAccuracy: 80},
		{ID: 2, MatchID: 2, PlayerID: 11, MinutesPlayed: 90, Goals: 1, Shots: 2, ShotsOnTarget: 1, Passes: 25, PassesCompleted: 20, PassAccuracy: 80},
		{ID: 3, MatchID: 4, PlayerID: 11, MinutesPlayed: 90, Goals: 1}, // scheduled match
		{ID: 4, MatchID: 1, PlayerID: 21, MinutesPlayed: 90, Assists: 1, Passes: 40, PassesCompleted: 36, PassAccuracy: 90},
	}}
	return NewService(teams, players, matches, stats, []string{"Forward", "Striker", "Winger"}, []string{"Forward", "Striker"})
}

func TestTeamSummary(t *testing.T) {
	svc := newTestService()
	got, err := svc.TeamSummary(context.Background(), 1)
	if err != nil {
		t.Fatalf("TeamSummary: %v", err)
	}
	if got.TeamName != "Reds" {
		t.Errorf("TeamName = %q, want Reds", got.TeamName)
	}
	if got.Stats.TotalMatches != 3 || got.Stats.Wins != 1 || got.Stats.Draws != 1 || got.Stats.Losses != 1 {
		t.Errorf("record = %+v, want 3 played, 1/1/1", got.Stats)
	}
	if !got.Stats.Approximated || got.Stats.AvgPossession != 50.0 || got.Stats.AvgPassAccuracy != 80.0 {
		t.Errorf("placeholders = %+v, want approximated 50/80", got.Stats)
	}
	// Newest first: loss (day 15), draw (day 8), win (day 1).
	if !reflect.DeepEqual(got.Form, []string{"L", "D", "W"}) {
		t.Errorf("Form = %v, want [L D W]", got.Form)
	}
}

func TestTeamSummaryNotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.TeamSummary(context.Background(), 99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCompareTeams(t *testing.T) {
	svc := newTestService()
	got, err := svc.CompareTeams(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("CompareTeams: %v", err)
	}
	if got.Team1.Name != "Reds" || got.Team2.Name != "Blues" {
		t.Errorf("teams = %q vs %q", got.Team1.Name, got.Team2.Name)
	}
	if len(got.HeadToHead) != 2 {
		t.Errorf("head to head = %d fixtures, want 2", len(got.HeadToHead))
	}
	goals := got.Comparison["goals_scored"]
	if goals["Reds"] != 3 || goals["Blues"] != 1 {
		t.Errorf("goals_scored = %v", goals)
	}
	if _, ok := got.Comparison["win_percentage"]; !ok {
		t.Errorf("comparison missing win_percentage: %v", got.Comparison)
	}
}

func TestCompareTeamsNotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.CompareTeams(context.Background(), 1, 99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPlayerSummary(t *testing.T) {
	svc := newTestService()
	got, err := svc.PlayerSummary(context.Background(), 11)
	if err != nil {
		t.Fatalf("PlayerSummary: %v", err)
	}
	if got.PlayerName != "Red Striker" || got.MatchesPlayed != 3 || got.Goals != 4 {
		t.Errorf("summary = %+v", got)
	}
}

func TestComparePlayersNotFound(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ComparePlayers(context.Background(), 11, 99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestComparePlayers(t *testing.T) {
	svc := newTestService()
	got, err := svc.ComparePlayers(context.Background(), 11, 21)
	if err != nil {
		t.Fatalf("ComparePlayers: %v", err)
	}
	if got.Player1.Team != "Reds" || got.Player2.Team != "Blues" {
		t.Errorf("teams = %q / %q", got.Player1.Team, got.Player2.Team)
	}
	goals := got.Comparison["goals"]
	if goals["Red Striker"] != 4 || goals["Blue Mid"] != 0 {
		t.Errorf("goals = %v", goals)
	}
}

func TestLeagueTable(t *testing.T) {
	svc := newTestService()
	got, err := svc.LeagueTable(context.Background(), "Premier", "2025-26")
	if err != nil {
		t.Fatalf("LeagueTable: %v", err)
	}
	if len(got.Table) != 3 {
		t.Fatalf("table size = %d, want 3", len(got.Table))
	}
	for i, row := range got.Table {
		if row.Position != i+1 {
			t.Errorf("row %d position = %d", i, row.Position)
		}
	}
}

func TestLeagueTableUnknownLeague(t *testing.T) {
	svc := newTestService()
	if _, err := svc.LeagueTable(context.Background(), "Nonexistent", "2025-26"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPlayerTrendSkipsNonCompleted(t *testing.T) {
	svc := newTestService()
	got, err := svc.PlayerTrend(context.Background(), 11, 10)
	if err != nil {
		t.Fatalf("PlayerTrend: %v", err)
	}
	// Row 3 references a scheduled match and must be skipped.
	if len(got.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(got.Points))
	}
	for _, p := range got.Points {
		if p.MatchID == 4 {
			t.Errorf("trend includes scheduled match: %+v", p)
		}
	}
}

func TestPlayerTrendLimitCountsCompletedOnly(t *testing.T) {
	svc := newTestService()
	// Player 11's newest row sits on a scheduled match. Skipping it must
	// not consume the cap: with limit 2 both completed rows come back.
	got, err := svc.PlayerTrend(context.Background(), 11, 2)
	if err != nil {
		t.Fatalf("PlayerTrend: %v", err)
	}
	if len(got.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(got.Points))
	}
	if got.Points[0].MatchID != 2 || got.Points[1].MatchID != 1 {
		t.Errorf("points = [%d %d], want newest-first [2 1]", got.Points[0].MatchID, got.Points[1].MatchID)
	}
}

func TestTeamTrendLimit(t *testing.T) {
	svc := newTestService()
	got, err := svc.TeamTrend(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("TeamTrend: %v", err)
	}
	if len(got.Points) != 2 {
		t.Fatalf("points = %d, want limit of 2", len(got.Points))
	}
	// Newest first.
	if got.Points[0].MatchID != 3 {
		t.Errorf("first point match = %d, want 3", got.Points[0].MatchID)
	}
	if got.Points[0].Result != "L" || got.Points[0].Opponent != "Greens" {
		t.Errorf("point = %+v, want loss to Greens", got.Points[0])
	}
}

func TestMatchTimelineSimulated(t *testing.T) {
	svc := newTestService()
	got, err := svc.MatchTimeline(context.Background(), 1)
	if err != nil {
		t.Fatalf("MatchTimeline: %v", err)
	}
	if !got.Simulated {
		t.Error("Simulated = false, want true")
	}
	if got.Home.TeamName != "Reds" || got.Home.Score != 2 {
		t.Errorf("home side = %+v", got.Home)
	}
	if len(got.Timeline) == 0 {
		t.Error("timeline empty, want fabricated goal events")
	}
}

func TestDashboard(t *testing.T) {
	svc := newTestService()
	got, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if got.Summary.TotalTeams != 3 || got.Summary.TotalPlayers != 3 || got.Summary.TotalMatches != 4 {
		t.Errorf("summary = %+v", got.Summary)
	}
	if len(got.TopScorers) == 0 || got.TopScorers[0].PlayerName != "Red Striker" {
		t.Errorf("top scorers = %+v", got.TopScorers)
	}
	if got.TopScorers[0].Goals != 4 || got.TopScorers[0].TeamName != "Reds" {
		t.Errorf("leader = %+v", got.TopScorers[0])
	}
	if len(got.PositionDistribution) != 3 {
		t.Errorf("position distribution = %+v", got.PositionDistribution)
	}
}
