package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/cache"
)

// queryInt parses a required positive integer query parameter.
func queryInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	return v, err == nil && v > 0
}

// serveCached runs the analytics fetch behind the cache and ETag flow:
// a fresh cache entry short-circuits the fetch, and a matching
// If-None-Match turns the response into a 304.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, fetch func() (interface{}, error)) {
	if data, etag, hit := h.cache.Get(key); hit {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := fetch()
	if err != nil {
		writeStoreError(w, err, "Entity not found")
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	etag := h.cache.Set(key, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}

// GetDashboard returns the landing-page overview.
// @Summary Dashboard overview
// @Description Entity totals, recent matches, top scorers, and the position distribution.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.DashboardReport
// @Router /analytics/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "dashboard", cache.TTLDashboard, func() (interface{}, error) {
		return h.svc.Dashboard(r.Context())
	})
}

// GetTeamComparison compares two teams' aggregates and head-to-head.
// @Summary Team comparison
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param team1 query int true "First team ID"
// @Param team2 query int true "Second team ID"
// @Success 200 {object} analytics.TeamComparison
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /analytics/team-comparison [get]
func (h *Handler) GetTeamComparison(w http.ResponseWriter, r *http.Request) {
	team1, ok1 := queryInt(r, "team1")
	team2, ok2 := queryInt(r, "team2")
	if !ok1 || !ok2 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "team1 and team2 query parameters are required")
		return
	}
	if team1 == team2 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Cannot compare a team with itself")
		return
	}

	key := fmt.Sprintf("team_comparison:%d:%d", team1, team2)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.CompareTeams(r.Context(), team1, team2)
	})
}

// GetPlayerComparison compares two players' aggregates.
// @Summary Player comparison
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param player1 query int true "First player ID"
// @Param player2 query int true "Second player ID"
// @Success 200 {object} analytics.PlayerComparison
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /analytics/player-comparison [get]
func (h *Handler) GetPlayerComparison(w http.ResponseWriter, r *http.Request) {
	player1, ok1 := queryInt(r, "player1")
	player2, ok2 := queryInt(r, "player2")
	if !ok1 || !ok2 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "player1 and player2 query parameters are required")
		return
	}
	if player1 == player2 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Cannot compare a player with themselves")
		return
	}

	key := fmt.Sprintf("player_comparison:%d:%d", player1, player2)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.ComparePlayers(r.Context(), player1, player2)
	})
}

// GetLeagueTable ranks a league's teams over a season.
// @Summary League table
// @Description Ranks by points then goal difference over the season's completed matches.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param league query string true "League name"
// @Param season query string true "Season label"
// @Success 200 {object} analytics.LeagueStandings
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /analytics/league-table [get]
func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	season := r.URL.Query().Get("season")
	if league == "" || season == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "league and season query parameters are required")
		return
	}

	key := fmt.Sprintf("league_table:%s:%s", league, season)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.LeagueTable(r.Context(), league, season)
	})
}

// GetPerformanceTrends returns a recent-match metric series for a team
// or a player.
// @Summary Performance trends
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param type query string true "Entity type: team or player"
// @Param id query int true "Entity ID"
// @Param limit query int false "Cap the series length (default 10)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /analytics/performance-trends [get]
func (h *Handler) GetPerformanceTrends(w http.ResponseWriter, r *http.Request) {
	entity := r.URL.Query().Get("type")
	id, ok := queryInt(r, "id")
	if !ok || (entity != "team" && entity != "player") {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "type must be team or player and id must be a positive integer")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	key := fmt.Sprintf("performance_trends:%s:%d:%d", entity, id, limit)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		if entity == "team" {
			return h.svc.TeamTrend(r.Context(), id, limit)
		}
		return h.svc.PlayerTrend(r.Context(), id, limit)
	})
}
