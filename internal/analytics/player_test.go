package analytics

import (
	"reflect"
	"testing"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

func TestAggregatePlayerEmpty(t *testing.T) {
	got := AggregatePlayer(nil)
	if got.MatchesPlayed != 0 || got.Goals != 0 || got.ShotAccuracy != 0 || got.PassAccuracy != 0 {
		t.Errorf("empty aggregate has non-zero fields: %+v", got)
	}
	if got.PerMatch == nil || len(got.PerMatch) != 0 {
		t.Errorf("PerMatch = %v, want empty non-nil slice", got.PerMatch)
	}
}

func TestAggregatePlayerSums(t *testing.T) {
	stats := []model.Statistic{
		{MatchID: 1, MinutesPlayed: 90, Goals: 2, Assists: 1, Shots: 5, ShotsOnTarget: 3, Passes: 40, PassesCompleted: 30, Tackles: 2, Interceptions: 1, PassAccuracy: 75},
		{MatchID: 2, MinutesPlayed: 45, Goals: 0, Assists: 0, Shots: 1, ShotsOnTarget: 0, Passes: 20, PassesCompleted: 18, Tackles: 0, Interceptions: 2, PassAccuracy: 90},
	}

	got := AggregatePlayer(stats)
	if got.MatchesPlayed != 2 || got.MinutesPlayed != 135 || got.Goals != 2 || got.Assists != 1 {
		t.Errorf("totals wrong: %+v", got)
	}
	if got.Shots != 6 || got.ShotsOnTarget != 3 {
		t.Errorf("shots = %d/%d, want 6/3", got.Shots, got.ShotsOnTarget)
	}
	if got.ShotAccuracy != 50 {
		t.Errorf("ShotAccuracy = %v, want 50", got.ShotAccuracy)
	}
	// Recomputed from raw counts, not averaged from the stored values:
	// 48/60 = 80%.
	if got.PassAccuracy != 80 {
		t.Errorf("PassAccuracy = %v, want 80", got.PassAccuracy)
	}
	if len(got.PerMatch) != 2 || got.PerMatch[0].MatchID != 1 || got.PerMatch[1].MatchID != 2 {
		t.Errorf("PerMatch = %+v", got.PerMatch)
	}
	// Per-match lines carry the stored accuracy as recorded.
	if got.PerMatch[0].PassAccuracy != 75 {
		t.Errorf("PerMatch[0].PassAccuracy = %v, want 75", got.PerMatch[0].PassAccuracy)
	}
}

func TestAggregatePlayerZeroDenominators(t *testing.T) {
	stats := []model.Statistic{
		{MatchID: 1, MinutesPlayed: 90},
	}
	got := AggregatePlayer(stats)
	if got.ShotAccuracy != 0 {
		t.Errorf("ShotAccuracy = %v, want 0 with no shots", got.ShotAccuracy)
	}
	if got.PassAccuracy != 0 {
		t.Errorf("PassAccuracy = %v, want 0 with no passes", got.PassAccuracy)
	}
}

func TestAggregatePlayerUnclampedRatio(t *testing.T) {
	// Stored data can claim more completions than attempts; the ratio is
	// reported as-is rather than capped.
	stats := []model.Statistic{
		{MatchID: 1, Passes: 10, PassesCompleted: 12},
	}
	got := AggregatePlayer(stats)
	if got.PassAccuracy != 120 {
		t.Errorf("PassAccuracy = %v, want 120", got.PassAccuracy)
	}
}

func TestPct(t *testing.T) {
	tests := []struct {
		name        string
		part, total int
		want        float64
	}{
		{"zero denominator", 5, 0, 0},
		{"half", 1, 2, 50},
		{"over 100", 3, 2, 150},
		{"zero part", 0, 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pct(tt.part, tt.total); got != tt.want {
				t.Errorf("pct(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	if got := round1(33.333333); got != 33.3 {
		t.Errorf("round1 = %v, want 33.3", got)
	}
	if got := round2(33.333333); got != 33.33 {
		t.Errorf("round2 = %v, want 33.33", got)
	}
	if got := round1(66.666666); got != 66.7 {
		t.Errorf("round1 = %v, want 66.7", got)
	}
}

func TestAggregatePlayerPerMatchOrder(t *testing.T) {
	stats := []model.Statistic{
		{MatchID: 3}, {MatchID: 1}, {MatchID: 2},
	}
	got := AggregatePlayer(stats)
	ids := []int{got.PerMatch[0].MatchID, got.PerMatch[1].MatchID, got.PerMatch[2].MatchID}
	if !reflect.DeepEqual(ids, []int{3, 1, 2}) {
		t.Errorf("per-match order = %v, want input order preserved", ids)
	}
}
