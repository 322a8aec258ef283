package analytics

import "github.com/Nad1ah/sports-dashboard/internal/model"

// TeamMatchTotals are one side's summed counters for one match.
// Goals come from the Match score, not from summed player goals; the
// two can legitimately diverge.
type TeamMatchTotals struct {
	Goals         int     `json:"goals"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	Possession    float64 `json:"possession"`
	Passes        int     `json:"passes"`
	PassAccuracy  float64 `json:"pass_accuracy"`
	Tackles       int     `json:"tackles"`
	Interceptions int     `json:"interceptions"`
	Fouls         int     `json:"fouls"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
}

// PlayerMatchStat is one player's line in a match breakdown.
type PlayerMatchStat struct {
	PlayerID      int     `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	TeamID        int     `json:"team_id"`
	TeamName      string  `json:"team_name"`
	MinutesPlayed int     `json:"minutes_played"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	Passes        int     `json:"passes"`
	PassAccuracy  float64 `json:"pass_accuracy"`
	Tackles       int     `json:"tackles"`
	Interceptions int     `json:"interceptions"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
}

// MatchTeamSide is one team's view of a match breakdown.
type MatchTeamSide struct {
	TeamID     int             `json:"id"`
	TeamName   string          `json:"name"`
	Score      int             `json:"score"`
	Statistics TeamMatchTotals `json:"statistics"`
}

// MatchBreakdown is the full per-team and per-player summary of one match.
type MatchBreakdown struct {
	MatchID int               `json:"match_id"`
	Home    MatchTeamSide     `json:"home_team"`
	Away    MatchTeamSide     `json:"away_team"`
	Players []PlayerMatchStat `json:"player_statistics"`
}

// BreakdownMatch partitions a match's statistic rows by roster and sums
// them per side. Possession is the share of total passes, rounded to
// one decimal, with the away share defined as 100 minus the home share
// so the pair sums to exactly 100.0; both sides are 0 when no passes
// were recorded. Statistic rows whose player is on neither roster are
// ignored.
func BreakdownMatch(m model.Match, stats []model.Statistic, home, away model.Team, homeRoster, awayRoster []model.Player) MatchBreakdown {
	players := make(map[int]model.Player, len(homeRoster)+len(awayRoster))
	side := make(map[int]int, len(homeRoster)+len(awayRoster))
	for _, p := range homeRoster {
		players[p.ID] = p
		side[p.ID] = m.HomeTeamID
	}
	for _, p := range awayRoster {
		players[p.ID] = p
		side[p.ID] = m.AwayTeamID
	}

	var homeTotals, awayTotals TeamMatchTotals
	var homeCompleted, awayCompleted int
	lines := make([]PlayerMatchStat, 0, len(stats))

	for _, st := range stats {
		p, ok := players[st.PlayerID]
		if !ok {
			continue
		}

		totals := &awayTotals
		completed := &awayCompleted
		teamName := away.Name
		if side[st.PlayerID] == m.HomeTeamID {
			totals = &homeTotals
			completed = &homeCompleted
			teamName = home.Name
		}

		totals.Shots += st.Shots
		totals.ShotsOnTarget += st.ShotsOnTarget
		totals.Passes += st.Passes
		totals.Tackles += st.Tackles
		totals.Interceptions += st.Interceptions
		totals.Fouls += st.FoulsCommitted
		totals.YellowCards += st.YellowCards
		totals.RedCards += st.RedCards
		*completed += st.PassesCompleted

		lines = append(lines, PlayerMatchStat{
			PlayerID:      st.PlayerID,
			PlayerName:    p.Name,
			TeamID:        p.TeamID,
			TeamName:      teamName,
			MinutesPlayed: st.MinutesPlayed,
			Goals:         st.Goals,
			Assists:       st.Assists,
			Shots:         st.Shots,
			ShotsOnTarget: st.ShotsOnTarget,
			Passes:        st.Passes,
			PassAccuracy:  st.PassAccuracy,
			Tackles:       st.Tackles,
			Interceptions: st.Interceptions,
			YellowCards:   st.YellowCards,
			RedCards:      st.RedCards,
		})
	}

	// The authoritative scoreline.
	homeTotals.Goals = m.HomeScore
	awayTotals.Goals = m.AwayScore

	if total := homeTotals.Passes + awayTotals.Passes; total > 0 {
		homeTotals.Possession = round1(float64(homeTotals.Passes) / float64(total) * 100)
		awayTotals.Possession = round1(100 - homeTotals.Possession)
	}
	homeTotals.PassAccuracy = round1(pct(homeCompleted, homeTotals.Passes))
	awayTotals.PassAccuracy = round1(pct(awayCompleted, awayTotals.Passes))

	return MatchBreakdown{
		MatchID: m.ID,
		Home: MatchTeamSide{
			TeamID:     m.HomeTeamID,
			TeamName:   home.Name,
			Score:      m.HomeScore,
			Statistics: homeTotals,
		},
		Away: MatchTeamSide{
			TeamID:     m.AwayTeamID,
			TeamName:   away.Name,
			Score:      m.AwayScore,
			Statistics: awayTotals,
		},
		Players: lines,
	}
}
