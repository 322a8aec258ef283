package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/cache"
	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

type matchRequest struct {
	Date        *string `json:"date"`
	HomeTeamID  *int    `json:"home_team_id"`
	AwayTeamID  *int    `json:"away_team_id"`
	HomeScore   *int    `json:"home_score"`
	AwayScore   *int    `json:"away_score"`
	Season      *string `json:"season"`
	Competition *string `json:"competition"`
	Venue       *string `json:"venue"`
	Status      *string `json:"status"`
}

// ListMatches returns matches, optionally filtered by team, status,
// competition, or season.
// @Summary List matches
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param team_id query int false "Filter by team on either side"
// @Param status query string false "Filter by match status"
// @Param competition query string false "Filter by competition"
// @Param season query string false "Filter by season"
// @Param limit query int false "Cap the result count"
// @Success 200 {object} map[string]interface{}
// @Router /matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.MatchFilter{
		Competition: q.Get("competition"),
		Season:      q.Get("season"),
	}
	if raw := q.Get("team_id"); raw != "" {
		teamID, err := strconv.Atoi(raw)
		if err != nil || teamID <= 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "team_id must be a positive integer")
			return
		}
		filter.TeamID = teamID
	}
	if status := q.Get("status"); status != "" {
		if !model.ValidStatus(status) {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown match status")
			return
		}
		filter.Status = status
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "limit must be a positive integer")
			return
		}
		filter.Limit = limit
	}

	matches, err := h.store.Matches.List(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if matches == nil {
		matches = []model.Match{}
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// CreateMatch creates a fixture between two existing teams.
// @Summary Create match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.Match
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}
	if req.Date == nil || *req.Date == "" || req.HomeTeamID == nil || req.AwayTeamID == nil ||
		req.Season == nil || *req.Season == "" || req.Competition == nil || *req.Competition == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "date, home_team_id, away_team_id, season, and competition are required")
		return
	}
	if *req.HomeTeamID == *req.AwayTeamID {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "A team cannot play itself")
		return
	}

	date, err := parseDateTime(*req.Date)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "date must be an ISO date or RFC 3339 timestamp")
		return
	}
	for _, teamID := range []int{*req.HomeTeamID, *req.AwayTeamID} {
		if _, err := h.store.Teams.Get(r.Context(), teamID); err != nil {
			writeStoreError(w, err, "Team not found")
			return
		}
	}

	m := &model.Match{
		Date:        date,
		HomeTeamID:  *req.HomeTeamID,
		AwayTeamID:  *req.AwayTeamID,
		Season:      *req.Season,
		Competition: *req.Competition,
		Venue:       req.Venue,
		Status:      model.StatusScheduled,
	}
	if req.HomeScore != nil {
		m.HomeScore = *req.HomeScore
	}
	if req.AwayScore != nil {
		m.AwayScore = *req.AwayScore
	}
	if req.Status != nil {
		if !model.ValidStatus(*req.Status) {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown match status")
			return
		}
		m.Status = *req.Status
	}
	if err := h.store.Matches.Create(r.Context(), m); err != nil {
		writeStoreError(w, err, "")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, m)
}

// GetMatch returns one match by id.
// @Summary Get match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param matchID path int true "Match ID"
// @Success 200 {object} model.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{matchID} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "matchID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Match id must be a positive integer")
		return
	}
	m, err := h.store.Matches.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Match not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// UpdateMatch applies a partial update to a match. Setting status to
// completed is how a result enters the standings.
// @Summary Update match
// @Tags matches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param matchID path int true "Match ID"
// @Success 200 {object} model.Match
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{matchID} [patch]
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "matchID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Match id must be a positive integer")
		return
	}
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDateTime(*req.Date)
		if err != nil {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "date must be an ISO date or RFC 3339 timestamp")
			return
		}
		date = &parsed
	}
	if req.Status != nil && !model.ValidStatus(*req.Status) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown match status")
		return
	}
	for _, teamID := range []*int{req.HomeTeamID, req.AwayTeamID} {
		if teamID == nil {
			continue
		}
		if _, err := h.store.Teams.Get(r.Context(), *teamID); err != nil {
			writeStoreError(w, err, "Team not found")
			return
		}
	}

	m, err := h.store.Matches.Update(r.Context(), id, store.MatchPatch{
		Date:        date,
		HomeTeamID:  req.HomeTeamID,
		AwayTeamID:  req.AwayTeamID,
		HomeScore:   req.HomeScore,
		AwayScore:   req.AwayScore,
		Season:      req.Season,
		Competition: req.Competition,
		Venue:       req.Venue,
		Status:      req.Status,
	})
	if err != nil {
		writeStoreError(w, err, "Match not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, m)
}

// DeleteMatch removes a match and its statistic rows.
// @Summary Delete match
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{matchID} [delete]
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "matchID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Match id must be a positive integer")
		return
	}
	if err := h.store.Matches.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "Match not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"message": "Match deleted",
	})
}

// GetMatchStatistics returns the per-team, per-player match breakdown.
// @Summary Match statistics breakdown
// @Description Partitions the match's statistic rows by roster and sums each side's counters.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param matchID path int true "Match ID"
// @Success 200 {object} analytics.MatchBreakdown
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{matchID}/statistics [get]
func (h *Handler) GetMatchStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "matchID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Match id must be a positive integer")
		return
	}

	key := fmt.Sprintf("match_statistics:%d", id)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.MatchBreakdown(r.Context(), id)
	})
}

// GetMatchTimeline returns the synthesized event timeline for a match.
// @Summary Match event timeline
// @Description Fabricates goal and card events at plausible minutes from aggregate counters. Always marked simulated.
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param matchID path int true "Match ID"
// @Success 200 {object} analytics.MatchTimelineReport
// @Failure 404 {object} respond.ErrorResponse
// @Router /matches/{matchID}/timeline [get]
func (h *Handler) GetMatchTimeline(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "matchID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Match id must be a positive integer")
		return
	}

	key := fmt.Sprintf("match_timeline:%d", id)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.MatchTimeline(r.Context(), id)
	})
}
