package analytics

import (
	"reflect"
	"testing"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

func completedMatch(id, homeID, awayID, homeScore, awayScore int) model.Match {
	return model.Match{
		ID:         id,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Status:     model.StatusCompleted,
	}
}

func TestComputeTeamRecord(t *testing.T) {
	matches := []model.Match{
		completedMatch(1, 10, 20, 2, 0), // win at home
		completedMatch(2, 30, 10, 1, 1), // draw away
		completedMatch(3, 10, 40, 0, 3), // loss at home
	}

	got := ComputeTeamRecord(matches, 10)
	want := TeamRecord{
		Played:         3,
		Wins:           1,
		Draws:          1,
		Losses:         1,
		GoalsFor:       3,
		GoalsAgainst:   4,
		GoalDifference: -1,
		WinPct:         float64(1) / 3 * 100,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ComputeTeamRecord = %+v, want %+v", got, want)
	}
	if got.Wins+got.Draws+got.Losses != got.Played {
		t.Errorf("W+D+L = %d, want %d", got.Wins+got.Draws+got.Losses, got.Played)
	}
}

func TestComputeTeamRecordIgnoresNonCompleted(t *testing.T) {
	matches := []model.Match{
		{ID: 1, HomeTeamID: 10, AwayTeamID: 20, HomeScore: 5, AwayScore: 0, Status: model.StatusScheduled},
		{ID: 2, HomeTeamID: 10, AwayTeamID: 20, HomeScore: 5, AwayScore: 0, Status: model.StatusLive},
		{ID: 3, HomeTeamID: 10, AwayTeamID: 20, HomeScore: 5, AwayScore: 0, Status: model.StatusPostponed},
	}
	got := ComputeTeamRecord(matches, 10)
	if got.Played != 0 {
		t.Errorf("Played = %d, want 0", got.Played)
	}
	if got.WinPct != 0 {
		t.Errorf("WinPct = %v, want 0 when no matches played", got.WinPct)
	}
}

func TestComputeTeamRecordIgnoresOtherTeams(t *testing.T) {
	matches := []model.Match{
		completedMatch(1, 20, 30, 4, 4),
	}
	got := ComputeTeamRecord(matches, 10)
	if got.Played != 0 {
		t.Errorf("Played = %d, want 0 for uninvolved team", got.Played)
	}
}

func TestMatchOutcome(t *testing.T) {
	m := completedMatch(1, 10, 20, 2, 1)
	tests := []struct {
		name   string
		teamID int
		want   string
	}{
		{"home winner", 10, "W"},
		{"away loser", 20, "L"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchOutcome(m, tt.teamID); got != tt.want {
				t.Errorf("MatchOutcome = %q, want %q", got, tt.want)
			}
		})
	}

	draw := completedMatch(2, 10, 20, 1, 1)
	if got := MatchOutcome(draw, 10); got != "D" {
		t.Errorf("MatchOutcome(draw) = %q, want D", got)
	}
}

func TestFormString(t *testing.T) {
	matches := []model.Match{
		completedMatch(1, 10, 20, 2, 0),
		completedMatch(2, 20, 10, 3, 0),
		{ID: 3, HomeTeamID: 10, AwayTeamID: 20, Status: model.StatusScheduled},
		completedMatch(4, 10, 20, 1, 1),
		completedMatch(5, 10, 20, 4, 0),
		completedMatch(6, 10, 20, 0, 1),
		completedMatch(7, 10, 20, 2, 2),
	}

	got := FormString(matches, 10, 5)
	want := []string{"W", "L", "D", "W", "L"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormString = %v, want %v", got, want)
	}
}

func TestFormStringShorterThanLimit(t *testing.T) {
	matches := []model.Match{completedMatch(1, 10, 20, 1, 0)}
	got := FormString(matches, 10, 5)
	if !reflect.DeepEqual(got, []string{"W"}) {
		t.Errorf("FormString = %v, want [W]", got)
	}
}
