package analytics

import (
	"time"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

// TeamTrendPoint is one match in a team's performance trend. Shot and
// pass accuracy are recomputed from the roster's statistic rows for
// that match; the result and scoreline come from the Match itself.
type TeamTrendPoint struct {
	MatchID       int       `json:"match_id"`
	Date          time.Time `json:"date"`
	Opponent      string    `json:"opponent"`
	IsHome        bool      `json:"is_home"`
	Result        string    `json:"result"`
	GoalsScored   int       `json:"goals_scored"`
	GoalsConceded int       `json:"goals_conceded"`
	Shots         int       `json:"shots"`
	ShotsOnTarget int       `json:"shots_on_target"`
	ShotAccuracy  float64   `json:"shot_accuracy"`
	PassAccuracy  float64   `json:"pass_accuracy"`
}

// PlayerTrendPoint is one match in a player's performance trend.
type PlayerTrendPoint struct {
	MatchID       int       `json:"match_id"`
	Date          time.Time `json:"date"`
	Opponent      string    `json:"opponent"`
	IsHome        bool      `json:"is_home"`
	MinutesPlayed int       `json:"minutes_played"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	Shots         int       `json:"shots"`
	ShotsOnTarget int       `json:"shots_on_target"`
	ShotAccuracy  float64   `json:"shot_accuracy"`
	PassAccuracy  float64   `json:"pass_accuracy"`
}

// ComputeTeamTrendPoint folds one match's statistic rows, filtered to
// the team's roster, into a trend point. opponentName is resolved by
// the caller.
func ComputeTeamTrendPoint(m model.Match, teamID int, roster []model.Player, stats []model.Statistic, opponentName string) TeamTrendPoint {
	onTeam := make(map[int]bool, len(roster))
	for _, p := range roster {
		onTeam[p.ID] = true
	}

	var shots, shotsOnTarget, passes, passesCompleted int
	for _, st := range stats {
		if !onTeam[st.PlayerID] {
			continue
		}
		shots += st.Shots
		shotsOnTarget += st.ShotsOnTarget
		passes += st.Passes
		passesCompleted += st.PassesCompleted
	}

	isHome := m.HomeTeamID == teamID
	scored, conceded := m.HomeScore, m.AwayScore
	if !isHome {
		scored, conceded = m.AwayScore, m.HomeScore
	}

	return TeamTrendPoint{
		MatchID:       m.ID,
		Date:          m.Date,
		Opponent:      opponentName,
		IsHome:        isHome,
		Result:        MatchOutcome(m, teamID),
		GoalsScored:   scored,
		GoalsConceded: conceded,
		Shots:         shots,
		ShotsOnTarget: shotsOnTarget,
		ShotAccuracy:  pct(shotsOnTarget, shots),
		PassAccuracy:  pct(passesCompleted, passes),
	}
}

// ComputePlayerTrendPoint turns one statistic row and its match into a
// trend point. Shot accuracy is recomputed from the row's counts; the
// pass accuracy is the stored per-row value, as recorded.
func ComputePlayerTrendPoint(st model.Statistic, m model.Match, playerTeamID int, opponentName string) PlayerTrendPoint {
	return PlayerTrendPoint{
		MatchID:       m.ID,
		Date:          m.Date,
		Opponent:      opponentName,
		IsHome:        m.HomeTeamID == playerTeamID,
		MinutesPlayed: st.MinutesPlayed,
		Goals:         st.Goals,
		Assists:       st.Assists,
		Shots:         st.Shots,
		ShotsOnTarget: st.ShotsOnTarget,
		ShotAccuracy:  pct(st.ShotsOnTarget, st.Shots),
		PassAccuracy:  st.PassAccuracy,
	}
}
