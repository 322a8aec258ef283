package analytics

import (
	"slices"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

// Strength/weakness tags produced by the threshold rules.
const (
	TagFinishing    = "finishing"
	TagPlaymaking   = "playmaking"
	TagPassAccuracy = "passing accuracy"
)

// Threshold cutoffs for the strength/weakness rules.
const (
	finishingStrengthGoalsPerMatch = 0.5
	finishingWeaknessGoalsPerMatch = 0.1
	playmakingAssistsPerMatch      = 0.3
	passingStrengthAccuracy        = 85.0
	passingWeaknessAccuracy        = 70.0
)

// Performance is a player's overall rating with detected strengths,
// weaknesses, and recent form.
type Performance struct {
	Rating     float64   `json:"performance_rating"`
	Strengths  []string  `json:"strengths"`
	Weaknesses []string  `json:"weaknesses"`
	Form       []float64 `json:"form"`
}

// matchScore weights a single match's counters into one number. The
// pass term uses the stored per-row pass_accuracy, as recorded.
// Scores are normalized to a 90-minute equivalent; a row with zero
// minutes keeps its raw score rather than dividing by zero.
func matchScore(st model.Statistic) float64 {
	score := float64(st.Goals)*3 +
		float64(st.Assists)*2 +
		float64(st.ShotsOnTarget)*0.5 +
		float64(st.Tackles)*0.5 +
		float64(st.Interceptions)*0.5
	if st.PassAccuracy > 0 {
		score += st.PassAccuracy / 100 * 5
	}
	if st.MinutesPlayed > 0 {
		score /= float64(st.MinutesPlayed) / 90
	}
	return score
}

// RatePerformance scores a player's statistic rows (supplied in
// chronological order) into an overall rating, threshold-based
// strength/weakness tags, and the most recent five per-match scores.
// attackingRoles is the configured set of position labels eligible for
// the finishing strength; weaknessRoles is the narrower set penalized
// when goal-shy. Position matching is exact.
func RatePerformance(position string, stats []model.Statistic, attackingRoles, weaknessRoles []string) Performance {
	perf := Performance{
		Strengths:  []string{},
		Weaknesses: []string{},
		Form:       []float64{},
	}
	if len(stats) == 0 {
		return perf
	}

	scores := make([]float64, len(stats))
	var total float64
	for i, st := range stats {
		scores[i] = matchScore(st)
		total += scores[i]
	}
	perf.Rating = round2(total / float64(len(scores)))

	if len(scores) > 5 {
		scores = scores[len(scores)-5:]
	}
	perf.Form = scores

	n := float64(len(stats))
	var goals, assists int
	var storedAccuracy float64
	for _, st := range stats {
		goals += st.Goals
		assists += st.Assists
		storedAccuracy += st.PassAccuracy
	}
	goalsPerMatch := float64(goals) / n
	assistsPerMatch := float64(assists) / n
	avgPassAccuracy := storedAccuracy / n

	if goalsPerMatch > finishingStrengthGoalsPerMatch && slices.Contains(attackingRoles, position) {
		perf.Strengths = append(perf.Strengths, TagFinishing)
	} else if goalsPerMatch < finishingWeaknessGoalsPerMatch && slices.Contains(weaknessRoles, position) {
		perf.Weaknesses = append(perf.Weaknesses, TagFinishing)
	}
	if assistsPerMatch > playmakingAssistsPerMatch {
		perf.Strengths = append(perf.Strengths, TagPlaymaking)
	}
	if avgPassAccuracy > passingStrengthAccuracy {
		perf.Strengths = append(perf.Strengths, TagPassAccuracy)
	} else if avgPassAccuracy < passingWeaknessAccuracy {
		perf.Weaknesses = append(perf.Weaknesses, TagPassAccuracy)
	}

	return perf
}
