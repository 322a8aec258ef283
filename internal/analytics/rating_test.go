package analytics

import (
	"reflect"
	"testing"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

var (
	testAttackingRoles = []string{"Forward", "Striker", "Winger"}
	testWeaknessRoles  = []string{"Forward", "Striker"}
)

func TestRatePerformanceEmpty(t *testing.T) {
	got := RatePerformance("Striker", nil, testAttackingRoles, testWeaknessRoles)
	if got.Rating != 0 {
		t.Errorf("Rating = %v, want 0", got.Rating)
	}
	if got.Strengths == nil || got.Weaknesses == nil || got.Form == nil {
		t.Errorf("empty performance has nil slices: %+v", got)
	}
	if len(got.Strengths) != 0 || len(got.Weaknesses) != 0 || len(got.Form) != 0 {
		t.Errorf("empty performance has entries: %+v", got)
	}
}

func TestRatePerformanceSingleMatch(t *testing.T) {
	// 1 goal (3) + 1 assist (2) + 2 on target (1) + 2 tackles (1) +
	// 80% passing (4) = 11 over a full 90.
	stats := []model.Statistic{{
		MinutesPlayed: 90,
		Goals:         1,
		Assists:       1,
		ShotsOnTarget: 2,
		Tackles:       2,
		PassAccuracy:  80,
	}}
	got := RatePerformance("Striker", stats, testAttackingRoles, testWeaknessRoles)
	if got.Rating != 11 {
		t.Errorf("Rating = %v, want 11", got.Rating)
	}
	if len(got.Form) != 1 || got.Form[0] != 11 {
		t.Errorf("Form = %v, want [11]", got.Form)
	}
}

func TestRatePerformanceMinutesNormalization(t *testing.T) {
	// Same counters in half the minutes scores double.
	full := []model.Statistic{{MinutesPlayed: 90, Goals: 1}}
	half := []model.Statistic{{MinutesPlayed: 45, Goals: 1}}

	fullPerf := RatePerformance("Striker", full, testAttackingRoles, testWeaknessRoles)
	halfPerf := RatePerformance("Striker", half, testAttackingRoles, testWeaknessRoles)
	if halfPerf.Rating != fullPerf.Rating*2 {
		t.Errorf("half-minutes rating = %v, want %v", halfPerf.Rating, fullPerf.Rating*2)
	}
}

func TestRatePerformanceZeroMinutes(t *testing.T) {
	// A zero-minute row keeps its raw score instead of dividing by zero.
	stats := []model.Statistic{{MinutesPlayed: 0, Goals: 1}}
	got := RatePerformance("Striker", stats, testAttackingRoles, testWeaknessRoles)
	if got.Rating != 3 {
		t.Errorf("Rating = %v, want 3", got.Rating)
	}
}

func TestRatePerformanceFormCap(t *testing.T) {
	stats := make([]model.Statistic, 8)
	for i := range stats {
		stats[i] = model.Statistic{MinutesPlayed: 90, Goals: i % 2}
	}
	got := RatePerformance("Striker", stats, testAttackingRoles, testWeaknessRoles)
	if len(got.Form) != 5 {
		t.Errorf("Form length = %d, want 5", len(got.Form))
	}
	// The last five scores: rows 3..7 score 3,0,3,0,3.
	want := []float64{3, 0, 3, 0, 3}
	if !reflect.DeepEqual(got.Form, want) {
		t.Errorf("Form = %v, want %v", got.Form, want)
	}
}

func TestRatePerformanceTags(t *testing.T) {
	tests := []struct {
		name           string
		position       string
		stats          []model.Statistic
		wantStrengths  []string
		wantWeaknesses []string
	}{
		{
			name:     "prolific attacker",
			position: "Striker",
			stats: []model.Statistic{
				{MinutesPlayed: 90, Goals: 1, PassAccuracy: 90},
				{MinutesPlayed: 90, Goals: 1, PassAccuracy: 90},
			},
			wantStrengths:  []string{TagFinishing, TagPassAccuracy},
			wantWeaknesses: []string{},
		},
		{
			name:     "goal-shy attacker",
			position: "Forward",
			stats: []model.Statistic{
				{MinutesPlayed: 90, PassAccuracy: 60},
			},
			wantStrengths:  []string{},
			wantWeaknesses: []string{TagFinishing, TagPassAccuracy},
		},
		{
			name:     "goal-shy defender is not tagged on finishing",
			position: "Defender",
			stats: []model.Statistic{
				{MinutesPlayed: 90, PassAccuracy: 75},
			},
			wantStrengths:  []string{},
			wantWeaknesses: []string{},
		},
		{
			name:     "playmaker",
			position: "Midfielder",
			stats: []model.Statistic{
				{MinutesPlayed: 90, Assists: 1, PassAccuracy: 75},
				{MinutesPlayed: 90, Assists: 0, PassAccuracy: 75},
			},
			wantStrengths:  []string{TagPlaymaking},
			wantWeaknesses: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RatePerformance(tt.position, tt.stats, testAttackingRoles, testWeaknessRoles)
			if !reflect.DeepEqual(got.Strengths, tt.wantStrengths) {
				t.Errorf("Strengths = %v, want %v", got.Strengths, tt.wantStrengths)
			}
			if !reflect.DeepEqual(got.Weaknesses, tt.wantWeaknesses) {
				t.Errorf("Weaknesses = %v, want %v", got.Weaknesses, tt.wantWeaknesses)
			}
		})
	}
}

func TestRatePerformanceConfigurableRoles(t *testing.T) {
	stats := []model.Statistic{
		{MinutesPlayed: 90, Goals: 1, PassAccuracy: 75},
	}
	// "Attacking Midfielder" counts as attacking only when configured.
	defaultRoles := RatePerformance("Attacking Midfielder", stats, testAttackingRoles, testWeaknessRoles)
	if len(defaultRoles.Strengths) != 0 {
		t.Errorf("Strengths = %v, want none outside configured roles", defaultRoles.Strengths)
	}
	extended := RatePerformance("Attacking Midfielder", stats, []string{"Attacking Midfielder"}, testWeaknessRoles)
	if !reflect.DeepEqual(extended.Strengths, []string{TagFinishing}) {
		t.Errorf("Strengths = %v, want [%s]", extended.Strengths, TagFinishing)
	}
}

func TestRatePerformanceFinishingWeaknessRoles(t *testing.T) {
	// A goalless full match: finishing weakness applies only to the
	// narrower weakness set, so wingers stay untagged.
	stats := []model.Statistic{{MinutesPlayed: 90, PassAccuracy: 75}}

	winger := RatePerformance("Winger", stats, testAttackingRoles, testWeaknessRoles)
	if len(winger.Weaknesses) != 0 {
		t.Errorf("Winger weaknesses = %v, want none", winger.Weaknesses)
	}
	for _, position := range testWeaknessRoles {
		got := RatePerformance(position, stats, testAttackingRoles, testWeaknessRoles)
		if !reflect.DeepEqual(got.Weaknesses, []string{TagFinishing}) {
			t.Errorf("%s weaknesses = %v, want [%s]", position, got.Weaknesses, TagFinishing)
		}
	}
}
