package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/auth"
	"github.com/Nad1ah/sports-dashboard/internal/model"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User        *model.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

// Register creates an account and issues an access token.
// @Summary Register account
// @Description Creates a user account and returns a signed access token.
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} authResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Email == "" || req.Password == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "username, email, and password are required")
		return
	}

	if _, err := h.store.Users.GetByUsername(r.Context(), req.Username); err == nil {
		respond.WriteError(w, http.StatusBadRequest, "USERNAME_TAKEN", "Username is already in use")
		return
	}
	if _, err := h.store.Users.GetByEmail(r.Context(), req.Email); err == nil {
		respond.WriteError(w, http.StatusBadRequest, "EMAIL_TAKEN", "Email is already in use")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	user := &model.User{Username: req.Username, Email: req.Email, PasswordHash: hash}
	if err := h.store.Users.Create(r.Context(), user); err != nil {
		writeStoreError(w, err, "")
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	respond.WriteJSONObject(w, http.StatusCreated, authResponse{User: user, AccessToken: token})
}

// Login verifies credentials and issues an access token.
// @Summary Log in
// @Description Verifies email and password and returns a signed access token.
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} authResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "email and password are required")
		return
	}

	user, err := h.store.Users.GetByEmail(r.Context(), req.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		respond.WriteError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		writeStoreError(w, err, "")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, authResponse{User: user, AccessToken: token})
}

// GetProfile returns the authenticated user.
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	user, err := h.store.Users.Get(r.Context(), userID)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"user": user})
}

// UpdateProfile renames the authenticated user.
// @Summary Update own profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Router /auth/me [patch]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "username is required")
		return
	}

	if existing, err := h.store.Users.GetByUsername(r.Context(), req.Username); err == nil && existing.ID != userID {
		respond.WriteError(w, http.StatusBadRequest, "USERNAME_TAKEN", "Username is already in use")
		return
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		writeStoreError(w, err, "")
		return
	}

	user, err := h.store.Users.UpdateUsername(r.Context(), userID, req.Username)
	if err != nil {
		writeStoreError(w, err, "User not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{"user": user})
}
