package analytics

import (
	"sort"

	"github.com/Nad1ah/sports-dashboard/internal/model"
)

// Timeline event types.
const (
	EventGoal       = "goal"
	EventYellowCard = "yellow_card"
	EventRedCard    = "red_card"
)

// TimelineEvent is one synthesized match event.
type TimelineEvent struct {
	Minute     int    `json:"minute"`
	Type       string `json:"type"`
	PlayerID   int    `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     int    `json:"team_id"`
	TeamName   string `json:"team_name"`
}

// BuildTimeline fabricates a match event timeline from aggregate
// statistic counters. There is no real event data behind it: goal
// minutes are spread across the player's minutes on the pitch and card
// minutes follow fixed offsets. Consumers must treat the result as
// simulated, not as recorded events. Rows whose player or team cannot
// be resolved are skipped.
func BuildTimeline(stats []model.Statistic, players map[int]model.Player, teams map[int]model.Team) []TimelineEvent {
	var timeline []TimelineEvent

	for _, st := range stats {
		p, ok := players[st.PlayerID]
		if !ok {
			continue
		}
		t, ok := teams[p.TeamID]
		if !ok {
			continue
		}

		for i := 0; i < st.Goals; i++ {
			minute := clampMinute(st.MinutesPlayed * (i + 1) / (st.Goals + 1))
			timeline = append(timeline, TimelineEvent{
				Minute: minute, Type: EventGoal,
				PlayerID: p.ID, PlayerName: p.Name,
				TeamID: t.ID, TeamName: t.Name,
			})
		}
		for i := 0; i < st.YellowCards; i++ {
			timeline = append(timeline, TimelineEvent{
				Minute: clampMinute(30 + i*20), Type: EventYellowCard,
				PlayerID: p.ID, PlayerName: p.Name,
				TeamID: t.ID, TeamName: t.Name,
			})
		}
		for i := 0; i < st.RedCards; i++ {
			timeline = append(timeline, TimelineEvent{
				Minute: clampMinute(60 + i*15), Type: EventRedCard,
				PlayerID: p.ID, PlayerName: p.Name,
				TeamID: t.ID, TeamName: t.Name,
			})
		}
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Minute < timeline[j].Minute
	})
	return timeline
}

func clampMinute(m int) int {
	if m < 1 {
		return 1
	}
	if m > 90 {
		return 90
	}
	return m
}
