package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/Nad1ah/sports-dashboard/internal/analytics"
	"github.com/Nad1ah/sports-dashboard/internal/api/handler"
	"github.com/Nad1ah/sports-dashboard/internal/auth"
	"github.com/Nad1ah/sports-dashboard/internal/cache"
	"github.com/Nad1ah/sports-dashboard/internal/config"
	"github.com/Nad1ah/sports-dashboard/internal/db"
	"github.com/Nad1ah/sports-dashboard/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(pool *db.Pool, st *store.Store, svc *analytics.Service, appCache *cache.Cache, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Authorization", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	h := handler.New(pool, st, svc, appCache, issuer, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Auth (register/login are the only unauthenticated endpoints)
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(issuer))

			r.Get("/auth/me", h.GetProfile)
			r.Patch("/auth/me", h.UpdateProfile)

			// Teams
			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.ListTeams)
				r.Post("/", h.CreateTeam)
				r.Get("/{teamID}", h.GetTeam)
				r.Patch("/{teamID}", h.UpdateTeam)
				r.Put("/{teamID}", h.UpdateTeam)
				r.Delete("/{teamID}", h.DeleteTeam)
				r.Get("/{teamID}/players", h.GetTeamPlayers)
				r.Get("/{teamID}/matches", h.GetTeamMatches)
				r.Get("/{teamID}/statistics", h.GetTeamStatistics)
			})

			// Players
			r.Route("/players", func(r chi.Router) {
				r.Get("/", h.ListPlayers)
				r.Post("/", h.CreatePlayer)
				r.Get("/{playerID}", h.GetPlayer)
				r.Patch("/{playerID}", h.UpdatePlayer)
				r.Put("/{playerID}", h.UpdatePlayer)
				r.Delete("/{playerID}", h.DeletePlayer)
				r.Get("/{playerID}/statistics", h.GetPlayerStatistics)
				r.Get("/{playerID}/performance", h.GetPlayerPerformance)
			})

			// Matches
			r.Route("/matches", func(r chi.Router) {
				r.Get("/", h.ListMatches)
				r.Post("/", h.CreateMatch)
				r.Get("/{matchID}", h.GetMatch)
				r.Patch("/{matchID}", h.UpdateMatch)
				r.Put("/{matchID}", h.UpdateMatch)
				r.Delete("/{matchID}", h.DeleteMatch)
				r.Get("/{matchID}/statistics", h.GetMatchStatistics)
				r.Get("/{matchID}/timeline", h.GetMatchTimeline)
			})

			// Statistic rows
			r.Route("/statistics", func(r chi.Router) {
				r.Post("/", h.CreateStatistic)
				r.Get("/{statID}", h.GetStatistic)
				r.Patch("/{statID}", h.UpdateStatistic)
				r.Put("/{statID}", h.UpdateStatistic)
				r.Delete("/{statID}", h.DeleteStatistic)
			})

			// Analytics
			r.Route("/analytics", func(r chi.Router) {
				r.Get("/dashboard", h.GetDashboard)
				r.Get("/team-comparison", h.GetTeamComparison)
				r.Get("/player-comparison", h.GetPlayerComparison)
				r.Get("/league-table", h.GetLeagueTable)
				r.Get("/performance-trends", h.GetPerformanceTrends)
			})
		})
	})

	return r
}
