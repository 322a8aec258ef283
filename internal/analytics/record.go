// Package analytics is the aggregation engine: pure functions folding
// record collections into derived metrics, plus a Service composing
// them with injected stores for comparisons and ranking.
//
// All computations are deterministic over their inputs and never touch
// I/O. Ratio computations define x/0 as 0 instead of erroring.
package analytics

import "github.com/Nad1ah/sports-dashboard/internal/model"

// TeamRecord is a team's win/loss ledger over a set of matches.
type TeamRecord struct {
	Played         int     `json:"played"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goals_for"`
	GoalsAgainst   int     `json:"goals_against"`
	GoalDifference int     `json:"goal_difference"`
	WinPct         float64 `json:"win_percentage"`
}

// ComputeTeamRecord folds completed matches involving teamID into a
// record. Scorelines come from the Match rows, which are authoritative
// over summed player goals. Matches in any other status are ignored.
func ComputeTeamRecord(matches []model.Match, teamID int) TeamRecord {
	var r TeamRecord
	for _, m := range matches {
		if !m.Completed() || !m.Involves(teamID) {
			continue
		}
		own, opp := m.HomeScore, m.AwayScore
		if m.AwayTeamID == teamID {
			own, opp = m.AwayScore, m.HomeScore
		}

		r.Played++
		r.GoalsFor += own
		r.GoalsAgainst += opp
		switch {
		case own > opp:
			r.Wins++
		case own == opp:
			r.Draws++
		default:
			r.Losses++
		}
	}
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
	if r.Played > 0 {
		r.WinPct = float64(r.Wins) / float64(r.Played) * 100
	}
	return r
}

// MatchOutcome returns "W", "D", or "L" for the given team in a match,
// judged on the authoritative Match score.
func MatchOutcome(m model.Match, teamID int) string {
	own, opp := m.HomeScore, m.AwayScore
	if m.AwayTeamID == teamID {
		own, opp = m.AwayScore, m.HomeScore
	}
	switch {
	case own > opp:
		return "W"
	case own == opp:
		return "D"
	default:
		return "L"
	}
}

// FormString returns the W/D/L sequence for the team over the given
// matches, capped to limit entries. Matches are consumed in the order
// supplied (callers pass newest first for "recent form"); non-completed
// matches are skipped.
func FormString(matches []model.Match, teamID int, limit int) []string {
	form := make([]string, 0, limit)
	for _, m := range matches {
		if len(form) == limit {
			break
		}
		if !m.Completed() || !m.Involves(teamID) {
			continue
		}
		form = append(form, MatchOutcome(m, teamID))
	}
	return form
}
