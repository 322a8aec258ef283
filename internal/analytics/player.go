package analytics

import "github.com/Nad1ah/sports-dashboard/internal/model"

// PlayerMatchLine is one match's slice of a player aggregate.
type PlayerMatchLine struct {
	MatchID       int     `json:"match_id"`
	MinutesPlayed int     `json:"minutes_played"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	Passes        int     `json:"passes"`
	PassAccuracy  float64 `json:"pass_accuracy"`
	Tackles       int     `json:"tackles"`
	Interceptions int     `json:"interceptions"`
}

// PlayerAggregate is a player's career totals over the supplied rows,
// with accuracy ratios recomputed from the raw counts. The per-row
// stored pass_accuracy is ignored here so the aggregate stays
// internally consistent.
type PlayerAggregate struct {
	MatchesPlayed   int               `json:"matches_played"`
	MinutesPlayed   int               `json:"minutes_played"`
	Goals           int               `json:"goals"`
	Assists         int               `json:"assists"`
	Shots           int               `json:"shots"`
	ShotsOnTarget   int               `json:"shots_on_target"`
	ShotAccuracy    float64           `json:"shot_accuracy"`
	Passes          int               `json:"passes"`
	PassesCompleted int               `json:"passes_completed"`
	PassAccuracy    float64           `json:"pass_accuracy"`
	Tackles         int               `json:"tackles"`
	Interceptions   int               `json:"interceptions"`
	PerMatch        []PlayerMatchLine `json:"match_statistics"`
}

// AggregatePlayer sums statistic rows (one per match played) into a
// career aggregate. Empty input yields a zero-valued aggregate with an
// empty per-match list, never an error.
func AggregatePlayer(stats []model.Statistic) PlayerAggregate {
	agg := PlayerAggregate{PerMatch: make([]PlayerMatchLine, 0, len(stats))}

	for _, st := range stats {
		agg.MatchesPlayed++
		agg.MinutesPlayed += st.MinutesPlayed
		agg.Goals += st.Goals
		agg.Assists += st.Assists
		agg.Shots += st.Shots
		agg.ShotsOnTarget += st.ShotsOnTarget
		agg.Passes += st.Passes
		agg.PassesCompleted += st.PassesCompleted
		agg.Tackles += st.Tackles
		agg.Interceptions += st.Interceptions

		agg.PerMatch = append(agg.PerMatch, PlayerMatchLine{
			MatchID:       st.MatchID,
			MinutesPlayed: st.MinutesPlayed,
			Goals:         st.Goals,
			Assists:       st.Assists,
			Shots:         st.Shots,
			ShotsOnTarget: st.ShotsOnTarget,
			Passes:        st.Passes,
			PassAccuracy:  st.PassAccuracy,
			Tackles:       st.Tackles,
			Interceptions: st.Interceptions,
		})
	}

	agg.ShotAccuracy = pct(agg.ShotsOnTarget, agg.Shots)
	agg.PassAccuracy = pct(agg.PassesCompleted, agg.Passes)
	return agg
}
