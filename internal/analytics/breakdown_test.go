package analytics

import (
	"testing"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

func TestBreakdownMatch(t *testing.T) {
	m := completedMatch(7, 1, 2, 2, 1)
	home := model.Team{ID: 1, Name: "Home FC"}
	away := model.Team{ID: 2, Name: "Away FC"}
	homeRoster := []model.Player{{ID: 11, Name: "H One", TeamID: 1}, {ID: 12, Name: "H Two", TeamID: 1}}
	awayRoster := []model.Player{{ID: 21, Name: "A One", TeamID: 2}}

	stats := []model.Statistic{
		{PlayerID: 11, Goals: 1, Shots: 4, ShotsOnTarget: 2, Passes: 30, PassesCompleted: 24, Tackles: 1, YellowCards: 1},
		{PlayerID: 12, Goals: 0, Shots: 2, ShotsOnTarget: 1, Passes: 30, PassesCompleted: 27},
		{PlayerID: 21, Goals: 1, Shots: 3, ShotsOnTarget: 2, Passes: 40, PassesCompleted: 28, FoulsCommitted: 2},
	}

	b := BreakdownMatch(m, stats, home, away, homeRoster, awayRoster)

	if b.MatchID != 7 {
		t.Errorf("MatchID = %d, want 7", b.MatchID)
	}
	// Scoreline comes from the Match, even though summed player goals
	// happen to agree here.
	if b.Home.Statistics.Goals != 2 || b.Away.Statistics.Goals != 1 {
		t.Errorf("goals = %d/%d, want 2/1", b.Home.Statistics.Goals, b.Away.Statistics.Goals)
	}
	if b.Home.Statistics.Shots != 6 || b.Home.Statistics.ShotsOnTarget != 3 {
		t.Errorf("home shots = %d/%d, want 6/3", b.Home.Statistics.Shots, b.Home.Statistics.ShotsOnTarget)
	}
	// 60 of 100 passes: possession 60.0 / 40.0.
	if b.Home.Statistics.Possession != 60.0 || b.Away.Statistics.Possession != 40.0 {
		t.Errorf("possession = %v/%v, want 60/40", b.Home.Statistics.Possession, b.Away.Statistics.Possession)
	}
	if got := b.Home.Statistics.Possession + b.Away.Statistics.Possession; got != 100.0 {
		t.Errorf("possession sum = %v, want exactly 100", got)
	}
	// Home: 51/60 = 85.0. Away: 28/40 = 70.0.
	if b.Home.Statistics.PassAccuracy != 85.0 || b.Away.Statistics.PassAccuracy != 70.0 {
		t.Errorf("pass accuracy = %v/%v, want 85/70", b.Home.Statistics.PassAccuracy, b.Away.Statistics.PassAccuracy)
	}
	if b.Home.Statistics.YellowCards != 1 || b.Away.Statistics.Fouls != 2 {
		t.Errorf("discipline totals wrong: home %+v away %+v", b.Home.Statistics, b.Away.Statistics)
	}
	if len(b.Players) != 3 {
		t.Errorf("player lines = %d, want 3", len(b.Players))
	}
	if b.Players[0].TeamName != "Home FC" || b.Players[2].TeamName != "Away FC" {
		t.Errorf("team names wrong: %+v", b.Players)
	}
}

func TestBreakdownMatchScoreAuthoritative(t *testing.T) {
	m := completedMatch(1, 1, 2, 3, 0)
	home := model.Team{ID: 1, Name: "Home"}
	away := model.Team{ID: 2, Name: "Away"}
	roster := []model.Player{{ID: 11, TeamID: 1}}

	// Player rows only account for one of the three goals.
	stats := []model.Statistic{{PlayerID: 11, Goals: 1}}
	b := BreakdownMatch(m, stats, home, away, roster, nil)
	if b.Home.Statistics.Goals != 3 {
		t.Errorf("home goals = %d, want the match score 3", b.Home.Statistics.Goals)
	}
}

func TestBreakdownMatchNoPasses(t *testing.T) {
	m := completedMatch(1, 1, 2, 0, 0)
	b := BreakdownMatch(m, nil, model.Team{ID: 1}, model.Team{ID: 2}, nil, nil)
	if b.Home.Statistics.Possession != 0 || b.Away.Statistics.Possession != 0 {
		t.Errorf("possession = %v/%v, want 0/0 with no passes", b.Home.Statistics.Possession, b.Away.Statistics.Possession)
	}
	if b.Home.Statistics.PassAccuracy != 0 {
		t.Errorf("pass accuracy = %v, want 0", b.Home.Statistics.PassAccuracy)
	}
}

func TestBreakdownMatchSkipsUnknownPlayers(t *testing.T) {
	m := completedMatch(1, 1, 2, 0, 0)
	stats := []model.Statistic{{PlayerID: 99, Passes: 50}}
	b := BreakdownMatch(m, stats, model.Team{ID: 1}, model.Team{ID: 2}, nil, nil)
	if len(b.Players) != 0 {
		t.Errorf("player lines = %d, want 0 for off-roster row", len(b.Players))
	}
	if b.Home.Statistics.Passes != 0 && b.Away.Statistics.Passes != 0 {
		t.Errorf("off-roster row counted into totals: %+v", b)
	}
}

func TestBreakdownMatchPossessionRounding(t *testing.T) {
	m := completedMatch(1, 1, 2, 0, 0)
	home := model.Team{ID: 1}
	away := model.Team{ID: 2}
	homeRoster := []model.Player{{ID: 11, TeamID: 1}}
	awayRoster := []model.Player{{ID: 21, TeamID: 2}}
	// 1 of 3 passes: raw share 33.333..., rounded to 33.3 and 66.7.
	stats := []model.Statistic{
		{PlayerID: 11, Passes: 1},
		{PlayerID: 21, Passes: 2},
	}
	b := BreakdownMatch(m, stats, home, away, homeRoster, awayRoster)
	if b.Home.Statistics.Possession != 33.3 {
		t.Errorf("home possession = %v, want 33.3", b.Home.Statistics.Possession)
	}
	if b.Away.Statistics.Possession != 66.7 {
		t.Errorf("away possession = %v, want 66.7", b.Away.Statistics.Possession)
	}
}
