package analytics

import (
	"sort"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

// TableRow is one team's standing in a league table.
type TableRow struct {
	Position       int    `json:"position"`
	TeamID         int    `json:"team_id"`
	TeamName       string `json:"team_name"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

// BuildLeagueTable ranks teams over the supplied matches (callers pass
// one season's matches; non-completed ones are excluded by the record
// fold). Points are 3 per win and 1 per draw. The sort is stable on
// (points, goal difference) descending with no tertiary tie-break:
// fully tied teams keep their input order, so ranking is deterministic
// for a given team order.
func BuildLeagueTable(teams []model.Team, matches []model.Match) []TableRow {
	table := make([]TableRow, 0, len(teams))
	for _, t := range teams {
		rec := ComputeTeamRecord(matches, t.ID)
		table = append(table, TableRow{
			TeamID:         t.ID,
			TeamName:       t.Name,
			Played:         rec.Played,
			Wins:           rec.Wins,
			Draws:          rec.Draws,
			Losses:         rec.Losses,
			GoalsFor:       rec.GoalsFor,
			GoalsAgainst:   rec.GoalsAgainst,
			GoalDifference: rec.GoalDifference,
			Points:         rec.Wins*3 + rec.Draws,
		})
	}

	sort.SliceStable(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		return table[i].GoalDifference > table[j].GoalDifference
	})

	for i := range table {
		table[i].Position = i + 1
	}
	return table
}
