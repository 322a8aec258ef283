package analytics

import (
	"testing"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

func TestBuildLeagueTable(t *testing.T) {
	teams := []model.Team{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
		{ID: 3, Name: "Gamma"},
	}
	matches := []model.Match{
		completedMatch(1, 1, 2, 3, 0), // Alpha beats Beta
		completedMatch(2, 2, 3, 1, 1), // Beta draws Gamma
		completedMatch(3, 3, 1, 0, 2), // Alpha beats Gamma
	}

	table := BuildLeagueTable(teams, matches)
	if len(table) != 3 {
		t.Fatalf("table size = %d, want 3", len(table))
	}

	// Alpha: 2W, 6 pts, GD +5. Gamma: 1D 1L, 1 pt, GD -2. Beta: 1D 1L,
	// 1 pt, GD -3.
	if table[0].TeamName != "Alpha" || table[0].Points != 6 || table[0].Position != 1 {
		t.Errorf("row 0 = %+v, want Alpha on 6 points at position 1", table[0])
	}
	if table[1].TeamName != "Gamma" || table[1].Points != 1 || table[1].GoalDifference != -2 || table[1].Position != 2 {
		t.Errorf("row 1 = %+v, want Gamma on 1 point, GD -2, at position 2", table[1])
	}
	if table[2].TeamName != "Beta" || table[2].GoalDifference != -3 || table[2].Position != 3 {
		t.Errorf("row 2 = %+v, want Beta last on goal difference", table[2])
	}
}

func TestBuildLeagueTableTiesKeepInputOrder(t *testing.T) {
	teams := []model.Team{
		{ID: 1, Name: "First"},
		{ID: 2, Name: "Second"},
		{ID: 3, Name: "Third"},
	}
	// All three fully level: no completed matches at all.
	table := BuildLeagueTable(teams, nil)

	for i, want := range []string{"First", "Second", "Third"} {
		if table[i].TeamName != want {
			t.Errorf("row %d = %q, want %q (tied teams keep input order)", i, table[i].TeamName, want)
		}
		if table[i].Position != i+1 {
			t.Errorf("row %d position = %d, want %d", i, table[i].Position, i+1)
		}
	}
}

func TestBuildLeagueTableGoalDifferenceTieBreak(t *testing.T) {
	teams := []model.Team{
		{ID: 1, Name: "Narrow"},
		{ID: 2, Name: "Wide"},
	}
	matches := []model.Match{
		completedMatch(1, 1, 3, 1, 0), // Narrow wins 1-0
		completedMatch(2, 2, 3, 4, 0), // Wide wins 4-0
	}

	table := BuildLeagueTable(teams, matches)
	if table[0].TeamName != "Wide" {
		t.Errorf("leader = %q, want Wide on goal difference", table[0].TeamName)
	}
}

func TestBuildLeagueTableExcludesNonCompleted(t *testing.T) {
	teams := []model.Team{{ID: 1, Name: "Only"}}
	matches := []model.Match{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 9, AwayScore: 0, Status: model.StatusLive},
	}
	table := BuildLeagueTable(teams, matches)
	if table[0].Played != 0 || table[0].Points != 0 {
		t.Errorf("row = %+v, want zero record from a live match", table[0])
	}
}
