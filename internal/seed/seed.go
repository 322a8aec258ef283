// Package seed loads a demo league into the database so the API and
// dashboard have something to show on a fresh install.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

// Result tracks counts and errors from a seeding run.
type Result struct {
	Teams      int
	Players    int
	Matches    int
	Statistics int
	Errors     []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("teams=%d players=%d matches=%d statistics=%d errors=%d",
		r.Teams, r.Players, r.Matches, r.Statistics, len(r.Errors))
}

const (
	demoLeague = "Demo League"
	demoSeason = "2025-26"
)

var demoTeams = []struct {
	name    string
	country string
}{
	{"Northbridge United", "England"},
	{"Atletico Ravena", "Spain"},
	{"FC Eisenstadt", "Germany"},
	{"Olympique Verdon", "France"},
}

var demoPositions = []string{"Goalkeeper", "Defender", "Defender", "Defender", "Midfielder", "Midfielder", "Midfielder", "Winger", "Forward", "Striker"}

var demoNames = []string{
	"Luca Moreni", "Jakob Lindqvist", "Tomas Ferreira", "Adama Keita",
	"Mateo Vidal", "Piotr Nowak", "Deniz Aydin", "Samuel Okafor",
	"Ivan Petrov", "Marco Silva",
}

// Run seeds a four-team demo league with full rosters, a completed
// double round-robin, and per-player statistic rows. The generator is
// deterministic so repeated runs against a fresh database produce the
// same league.
func Run(ctx context.Context, st *store.Store, logger *slog.Logger) Result {
	var result Result
	rng := rand.New(rand.NewSource(42))

	logger.Info("Phase 1/3: seeding teams and rosters")
	teams := make([]*model.Team, 0, len(demoTeams))
	rosters := make(map[int][]*model.Player)
	for i, dt := range demoTeams {
		founded := 1890 + i*7
		team := &model.Team{
			Name:        dt.name,
			Country:     dt.country,
			League:      demoLeague,
			FoundedYear: &founded,
		}
		if err := st.Teams.Create(ctx, team); err != nil {
			result.AddErrorf("create team %q: %v", dt.name, err)
			continue
		}
		result.Teams++
		teams = append(teams, team)

		for j, position := range demoPositions {
			jersey := j + 1
			player := &model.Player{
				Name:         fmt.Sprintf("%s %d", demoNames[j], i+1),
				Position:     position,
				Nationality:  dt.country,
				JerseyNumber: &jersey,
				TeamID:       team.ID,
			}
			if err := st.Players.Create(ctx, player); err != nil {
				result.AddErrorf("create player %q: %v", player.Name, err)
				continue
			}
			result.Players++
			rosters[team.ID] = append(rosters[team.ID], player)
		}
	}
	logger.Info("Teams done", "teams", result.Teams, "players", result.Players)

	logger.Info("Phase 2/3: seeding completed matches")
	matchDate := time.Date(2025, time.August, 9, 15, 0, 0, 0, time.UTC)
	var matches []*model.Match
	for _, home := range teams {
		for _, away := range teams {
			if home.ID == away.ID {
				continue
			}
			m := &model.Match{
				Date:        matchDate,
				HomeTeamID:  home.ID,
				AwayTeamID:  away.ID,
				HomeScore:   rng.Intn(4),
				AwayScore:   rng.Intn(3),
				Season:      demoSeason,
				Competition: demoLeague,
				Status:      model.StatusCompleted,
			}
			if err := st.Matches.Create(ctx, m); err != nil {
				result.AddErrorf("create match %s vs %s: %v", home.Name, away.Name, err)
				continue
			}
			result.Matches++
			matches = append(matches, m)
			matchDate = matchDate.Add(7 * 24 * time.Hour)
		}
	}
	logger.Info("Matches done", "matches", result.Matches)

	logger.Info("Phase 3/3: seeding player statistics")
	for _, m := range matches {
		for _, side := range []struct {
			teamID int
			goals  int
		}{{m.HomeTeamID, m.HomeScore}, {m.AwayTeamID, m.AwayScore}} {
			for _, p := range rosters[side.teamID] {
				stat := statLine(rng, p, side.goals)
				stat.MatchID = m.ID
				if err := st.Statistics.Create(ctx, stat); err != nil {
					result.AddErrorf("create statistic match=%d player=%d: %v", m.ID, p.ID, err)
					continue
				}
				result.Statistics++
			}
		}
	}
	logger.Info("Statistics done", "statistics", result.Statistics)

	logger.Info("Seed complete", "summary", result.Summary())
	return result
}

// statLine fabricates a plausible stat row for one player in one match.
// Attacking roles soak up the team's goals; everyone gets passing and
// defensive volume scaled loosely by position.
func statLine(rng *rand.Rand, p *model.Player, teamGoals int) *model.Statistic {
	st := &model.Statistic{
		PlayerID:      p.ID,
		MinutesPlayed: 60 + rng.Intn(31),
		Passes:        20 + rng.Intn(40),
		Tackles:       rng.Intn(4),
		Interceptions: rng.Intn(3),
		FoulsCommitted: rng.Intn(3),
	}
	st.PassesCompleted = st.Passes * (70 + rng.Intn(25)) / 100
	if st.Passes > 0 {
		st.PassAccuracy = float64(st.PassesCompleted) / float64(st.Passes) * 100
	}

	switch p.Position {
	case "Forward", "Striker", "Winger":
		st.Shots = 1 + rng.Intn(4)
		st.ShotsOnTarget = rng.Intn(st.Shots + 1)
		if teamGoals > 0 && rng.Intn(3) == 0 {
			st.Goals = 1
			st.ShotsOnTarget = max(st.ShotsOnTarget, 1)
			st.Shots = max(st.Shots, st.ShotsOnTarget)
		}
		st.DribblesCompleted = rng.Intn(5)
	case "Midfielder":
		st.KeyPasses = rng.Intn(4)
		if teamGoals > 0 && rng.Intn(4) == 0 {
			st.Assists = 1
		}
	case "Defender":
		st.Clearances = 2 + rng.Intn(6)
		st.Blocks = rng.Intn(3)
		st.Tackles += 1 + rng.Intn(3)
	case "Goalkeeper":
		st.Saves = 1 + rng.Intn(5)
		st.CleanSheet = rng.Intn(3) == 0
		if !st.CleanSheet {
			st.GoalsConceded = 1 + rng.Intn(2)
		}
	}
	if st.Shots > 0 {
		st.ConversionRate = float64(st.Goals) / float64(st.Shots) * 100
	}
	st.ExpectedGoals = float64(st.ShotsOnTarget) * 0.3
	return st
}
