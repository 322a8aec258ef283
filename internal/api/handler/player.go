package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/cache"
	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

type playerRequest struct {
	Name         *string  `json:"name"`
	Position     *string  `json:"position"`
	Nationality  *string  `json:"nationality"`
	BirthDate    *string  `json:"birth_date"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	JerseyNumber *int     `json:"jersey_number"`
	TeamID       *int     `json:"team_id"`
	PhotoURL     *string  `json:"photo_url"`
}

// ListPlayers returns players, optionally filtered by team, position,
// or nationality.
// @Summary List players
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param team_id query int false "Filter by team"
// @Param position query string false "Filter by position"
// @Param nationality query string false "Filter by nationality"
// @Success 200 {object} map[string]interface{}
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.PlayerFilter{
		Position:    q.Get("position"),
		Nationality: q.Get("nationality"),
	}
	if raw := q.Get("team_id"); raw != "" {
		teamID, err := strconv.Atoi(raw)
		if err != nil || teamID <= 0 {
			respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "team_id must be a positive integer")
			return
		}
		filter.TeamID = teamID
	}

	players, err := h.store.Players.List(r.Context(), filter)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if players == nil {
		players = []model.Player{}
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// CreatePlayer creates a player on an existing team.
// @Summary Create player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.Player
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}
	if req.Name == nil || *req.Name == "" || req.Position == nil || *req.Position == "" ||
		req.Nationality == nil || *req.Nationality == "" || req.TeamID == nil || *req.TeamID <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "name, position, nationality, and team_id are required")
		return
	}
	if _, err := h.store.Teams.Get(r.Context(), *req.TeamID); err != nil {
		writeStoreError(w, err, "Team not found")
		return
	}

	birthDate, err := parseDatePtr(req.BirthDate)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "birth_date must be an ISO date")
		return
	}

	player := &model.Player{
		Name:         *req.Name,
		Position:     *req.Position,
		Nationality:  *req.Nationality,
		BirthDate:    birthDate,
		Height:       req.Height,
		Weight:       req.Weight,
		JerseyNumber: req.JerseyNumber,
		TeamID:       *req.TeamID,
		PhotoURL:     req.PhotoURL,
	}
	if err := h.store.Players.Create(r.Context(), player); err != nil {
		writeStoreError(w, err, "")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, player)
}

// GetPlayer returns one player by id.
// @Summary Get player
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param playerID path int true "Player ID"
// @Success 200 {object} model.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "playerID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player id must be a positive integer")
		return
	}
	player, err := h.store.Players.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Player not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, player)
}

// UpdatePlayer applies a partial update to a player.
// @Summary Update player
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playerID path int true "Player ID"
// @Success 200 {object} model.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [patch]
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "playerID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player id must be a positive integer")
		return
	}
	var req playerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}
	if req.TeamID != nil {
		if _, err := h.store.Teams.Get(r.Context(), *req.TeamID); err != nil {
			writeStoreError(w, err, "Team not found")
			return
		}
	}

	player, err := h.store.Players.Update(r.Context(), id, store.PlayerPatch{
		Name:         req.Name,
		Position:     req.Position,
		Nationality:  req.Nationality,
		BirthDate:    req.BirthDate,
		Height:       req.Height,
		Weight:       req.Weight,
		JerseyNumber: req.JerseyNumber,
		TeamID:       req.TeamID,
		PhotoURL:     req.PhotoURL,
	})
	if err != nil {
		writeStoreError(w, err, "Player not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, player)
}

// DeletePlayer removes a player and their statistic rows.
// @Summary Delete player
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID} [delete]
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "playerID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player id must be a positive integer")
		return
	}
	if err := h.store.Players.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "Player not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"message": "Player deleted",
	})
}

// GetPlayerStatistics returns a player's aggregate and per-match lines.
// @Summary Player statistics
// @Description Aggregates a player's statistic rows with recomputed accuracy ratios.
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param playerID path int true "Player ID"
// @Success 200 {object} analytics.PlayerSummary
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID}/statistics [get]
func (h *Handler) GetPlayerStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "playerID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player id must be a positive integer")
		return
	}

	key := fmt.Sprintf("player_statistics:%d", id)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.PlayerSummary(r.Context(), id)
	})
}

// GetPlayerPerformance returns a player's rating report.
// @Summary Player performance rating
// @Description Scores each match on goals, assists, shots on target, defensive actions, and passing, normalized to 90 minutes.
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param playerID path int true "Player ID"
// @Success 200 {object} analytics.PlayerPerformance
// @Failure 404 {object} respond.ErrorResponse
// @Router /players/{playerID}/performance [get]
func (h *Handler) GetPlayerPerformance(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "playerID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Player id must be a positive integer")
		return
	}

	key := fmt.Sprintf("player_performance:%d", id)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.PlayerPerformance(r.Context(), id)
	})
}
