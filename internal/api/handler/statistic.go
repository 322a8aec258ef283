package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

type statisticRequest struct {
	MatchID  *int `json:"match_id"`
	PlayerID *int `json:"player_id"`

	MinutesPlayed     *int     `json:"minutes_played"`
	Goals             *int     `json:"goals"`
	Assists           *int     `json:"assists"`
	Shots             *int     `json:"shots"`
	ShotsOnTarget     *int     `json:"shots_on_target"`
	KeyPasses         *int     `json:"key_passes"`
	DribblesCompleted *int     `json:"dribbles_completed"`
	Tackles           *int     `json:"tackles"`
	Interceptions     *int     `json:"interceptions"`
	Clearances        *int     `json:"clearances"`
	Blocks            *int     `json:"blocks"`
	Passes            *int     `json:"passes"`
	PassesCompleted   *int     `json:"passes_completed"`
	PassAccuracy      *float64 `json:"pass_accuracy"`
	YellowCards       *int     `json:"yellow_cards"`
	RedCards          *int     `json:"red_cards"`
	FoulsCommitted    *int     `json:"fouls_committed"`
	FoulsSuffered     *int     `json:"fouls_suffered"`
	Saves             *int     `json:"saves"`
	GoalsConceded     *int     `json:"goals_conceded"`
	CleanSheet        *bool    `json:"clean_sheet"`
	ExpectedGoals     *float64 `json:"expected_goals"`
	ConversionRate    *float64 `json:"conversion_rate"`
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// CreateStatistic records one player's counters for one match.
// @Summary Create statistic row
// @Tags statistics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.Statistic
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /statistics [post]
func (h *Handler) CreateStatistic(w http.ResponseWriter, r *http.Request) {
	var req statisticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}
	if req.MatchID == nil || *req.MatchID <= 0 || req.PlayerID == nil || *req.PlayerID <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "match_id and player_id are required")
		return
	}
	if _, err := h.store.Matches.Get(r.Context(), *req.MatchID); err != nil {
		writeStoreError(w, err, "Match not found")
		return
	}
	if _, err := h.store.Players.Get(r.Context(), *req.PlayerID); err != nil {
		writeStoreError(w, err, "Player not found")
		return
	}

	st := &model.Statistic{MatchID: *req.MatchID, PlayerID: *req.PlayerID}
	setInt(&st.MinutesPlayed, req.MinutesPlayed)
	setInt(&st.Goals, req.Goals)
	setInt(&st.Assists, req.Assists)
	setInt(&st.Shots, req.Shots)
	setInt(&st.ShotsOnTarget, req.ShotsOnTarget)
	setInt(&st.KeyPasses, req.KeyPasses)
	setInt(&st.DribblesCompleted, req.DribblesCompleted)
	setInt(&st.Tackles, req.Tackles)
	setInt(&st.Interceptions, req.Interceptions)
	setInt(&st.Clearances, req.Clearances)
	setInt(&st.Blocks, req.Blocks)
	setInt(&st.Passes, req.Passes)
	setInt(&st.PassesCompleted, req.PassesCompleted)
	setFloat(&st.PassAccuracy, req.PassAccuracy)
	setInt(&st.YellowCards, req.YellowCards)
	setInt(&st.RedCards, req.RedCards)
	setInt(&st.FoulsCommitted, req.FoulsCommitted)
	setInt(&st.FoulsSuffered, req.FoulsSuffered)
	setInt(&st.Saves, req.Saves)
	setInt(&st.GoalsConceded, req.GoalsConceded)
	if req.CleanSheet != nil {
		st.CleanSheet = *req.CleanSheet
	}
	setFloat(&st.ExpectedGoals, req.ExpectedGoals)
	setFloat(&st.ConversionRate, req.ConversionRate)

	if err := h.store.Statistics.Create(r.Context(), st); err != nil {
		writeStoreError(w, err, "")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, st)
}

// GetStatistic returns one statistic row by id.
// @Summary Get statistic row
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param statID path int true "Statistic ID"
// @Success 200 {object} model.Statistic
// @Failure 404 {object} respond.ErrorResponse
// @Router /statistics/{statID} [get]
func (h *Handler) GetStatistic(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "statID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Statistic id must be a positive integer")
		return
	}
	st, err := h.store.Statistics.Get(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Statistic not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, st)
}

// UpdateStatistic applies a partial update to a statistic row. The
// match and player references are immutable.
// @Summary Update statistic row
// @Tags statistics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param statID path int true "Statistic ID"
// @Success 200 {object} model.Statistic
// @Failure 404 {object} respond.ErrorResponse
// @Router /statistics/{statID} [patch]
func (h *Handler) UpdateStatistic(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "statID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Statistic id must be a positive integer")
		return
	}
	var req statisticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "Malformed JSON body")
		return
	}
	if req.MatchID != nil || req.PlayerID != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "match_id and player_id cannot be changed")
		return
	}

	st, err := h.store.Statistics.Update(r.Context(), id, store.StatisticPatch{
		MinutesPlayed:     req.MinutesPlayed,
		Goals:             req.Goals,
		Assists:           req.Assists,
		Shots:             req.Shots,
		ShotsOnTarget:     req.ShotsOnTarget,
		KeyPasses:         req.KeyPasses,
		DribblesCompleted: req.DribblesCompleted,
		Tackles:           req.Tackles,
		Interceptions:     req.Interceptions,
		Clearances:        req.Clearances,
		Blocks:            req.Blocks,
		Passes:            req.Passes,
		PassesCompleted:   req.PassesCompleted,
		PassAccuracy:      req.PassAccuracy,
		YellowCards:       req.YellowCards,
		RedCards:          req.RedCards,
		FoulsCommitted:    req.FoulsCommitted,
		FoulsSuffered:     req.FoulsSuffered,
		Saves:             req.Saves,
		GoalsConceded:     req.GoalsConceded,
		CleanSheet:        req.CleanSheet,
		ExpectedGoals:     req.ExpectedGoals,
		ConversionRate:    req.ConversionRate,
	})
	if err != nil {
		writeStoreError(w, err, "Statistic not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, st)
}

// DeleteStatistic removes a statistic row.
// @Summary Delete statistic row
// @Tags statistics
// @Produce json
// @Security BearerAuth
// @Param statID path int true "Statistic ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /statistics/{statID} [delete]
func (h *Handler) DeleteStatistic(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "statID")
	if !ok {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_ID", "Statistic id must be a positive integer")
		return
	}
	if err := h.store.Statistics.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "Statistic not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"message": "Statistic deleted",
	})
}
