// Package handler provides HTTP handlers for all API endpoints.
// Record CRUD goes straight to the store; analytics endpoints go
// through the aggregation service and are cached with ETags.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Nad1ah/sports-dashboard/internal/analytics"
	"github.com/Nad1ah/sports-dashboard/internal/api/respond"
	"github.com/Nad1ah/sports-dashboard/internal/auth"
	"github.com/Nad1ah/sports-dashboard/internal/cache"
	"github.com/Nad1ah/sports-dashboard/internal/config"
	"github.com/Nad1ah/sports-dashboard/internal/db"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	pool   *db.Pool
	store  *store.Store
	svc    *analytics.Service
	cache  *cache.Cache
	issuer *auth.TokenIssuer
	cfg    *config.Config
}

// New creates a Handler with shared dependencies.
func New(pool *db.Pool, st *store.Store, svc *analytics.Service, c *cache.Cache, issuer *auth.TokenIssuer, cfg *config.Config) *Handler {
	return &Handler{
		pool:   pool,
		store:  st,
		svc:    svc,
		cache:  c,
		issuer: issuer,
		cfg:    cfg,
	}
}

// urlID parses a chi URL parameter as an integer id.
func urlID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	return id, err == nil && id > 0
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Sports Analytics API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
