package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/cache"
	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

type teamRequest struct {
	Name        *string `json:"name"`
	Country     *string `json:"country"`
	League      *string `json:"league"`
	FoundedYear *int    `json:"founded_year"`
	LogoURL     *string `json:"logo_url"`
}

// ListTeams returns all teams, optionally filtered by league.
// @Summary List teams
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param league query string false "Filter by league name"
// @Success 200 {object} map[string]interface{}
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	var (
		teams []model.Team
		err   error
	)
	if league := r.URL.Query().Get("league"); league != "" {
		teams, err = h.store.Teams.ListByLeague(r.Context(), league)
	} else {
		teams, err = h.store.Teams.List(r.Context())
	}
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if teams == nil {
		teams = []model.Team{}
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}

// CreateTeam creates a team.
// @Summary Create team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.Team
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams [post]
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}
	if req.Name == nil || *req.Name == "" || req.Country == nil || *req.Country == "" || req.League == nil || *req.League == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "name, country, and league are required")
		return
	}

	team := &model.Team{
		Name:        *req.Name,
		Country:     *req.Country,
		League:      *req.League,
		FoundedYear: req.FoundedYear,
		LogoURL:     req.LogoURL,
	}
	if err := h.store.Teams.Create(r.Context(), team); err != nil {
		writeStoreError(w, err, "")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, team)
}

// GetTeam returns one team by id.
// @Summary Get team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path int true "Team ID"
// @Success 200 {object} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "teamID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team id must be a positive integer")
		return
	}
	team, err := h.store.Teams.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Team not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, team)
}

// UpdateTeam applies a partial update to a team.
// @Summary Update team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamID path int true "Team ID"
// @Success 200 {object} model.Team
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID} [patch]
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "teamID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team id must be a positive integer")
		return
	}
	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}

	team, err := h.store.Teams.Update(r.Context(), id, store.TeamPatch{
		Name:        req.Name,
		Country:     req.Country,
		League:      req.League,
		FoundedYear: req.FoundedYear,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		writeStoreError(w, err, "Team not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, team)
}

// DeleteTeam removes a team with no remaining references.
// @Summary Delete team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path int true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /teams/{teamID} [delete]
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "teamID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team id must be a positive integer")
		return
	}
	if err := h.store.Teams.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "Team still has players or matches")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"message": "Team deleted",
	})
}

// GetTeamPlayers returns a team's roster.
// @Summary List team players
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path int true "Team ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID}/players [get]
func (h *Handler) GetTeamPlayers(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "teamID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team id must be a positive integer")
		return
	}
	team, err := h.store.Teams.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Team not found")
		return
	}
	players, err := h.store.Players.ListByTeam(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if players == nil {
		players = []model.Player{}
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"team":    team.Name,
		"players": players,
		"count":   len(players),
	})
}

// GetTeamMatches returns a team's fixtures on either side.
// @Summary List team matches
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path int true "Team ID"
// @Param status query string false "Filter by match status"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID}/matches [get]
func (h *Handler) GetTeamMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "teamID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team id must be a positive integer")
		return
	}
	team, err := h.store.Teams.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Team not found")
		return
	}

	status := r.URL.Query().Get("status")
	if status != "" && !model.ValidStatus(status) {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_STATUS", "Unknown match status")
		return
	}
	matches, err := h.store.Matches.List(r.Context(), store.MatchFilter{TeamID: id, Status: status})
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	if matches == nil {
		matches = []model.Match{}
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"team":    team.Name,
		"matches": matches,
		"count":   len(matches),
	})
}

// GetTeamStatistics returns a team's aggregate record and recent form.
// @Summary Team statistics
// @Description Aggregates wins, draws, losses, goals, and last-5 form over completed matches.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamID path int true "Team ID"
// @Success 200 {object} analytics.TeamSummary
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{teamID}/statistics [get]
func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "teamID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Team id must be a positive integer")
		return
	}

	key := fmt.Sprintf("team_statistics:%d", id)
	h.serveCached(w, r, key, cache.TTLAnalytics, func() (interface{}, error) {
		return h.svc.TeamSummary(r.Context(), id)
	})
}
