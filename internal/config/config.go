// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/sportsctl.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Table names — single source of truth, matches the migration DDL
// --------------------------------------------------------------------------

const (
	TeamsTable      = "teams"
	PlayersTable    = "players"
	MatchesTable    = "matches"
	StatisticsTable = "statistics"
	UsersTable      = "users"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Auth
	JWTSecret string
	JWTExpiry time.Duration

	// Cache
	CacheEnabled bool

	// AttackingRoles is the set of position labels treated as attacking
	// roles by the strength/weakness rules. Configurable so the labels
	// are not baked into the rating logic.
	AttackingRoles []string

	// FinishingWeaknessRoles is the narrower set of labels that get a
	// finishing weakness when goal-shy. Wide attackers qualify for the
	// strength without being penalized for low scoring.
	FinishingWeaknessRoles []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("DATABASE_URL", "")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	jwtSecret := envOr("JWT_SECRET_KEY", "")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		JWTSecret: jwtSecret,
		JWTExpiry: time.Duration(envInt("JWT_EXPIRY_HOURS", 24)) * time.Hour,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		AttackingRoles: envList("ATTACKING_ROLES", []string{
			"Forward", "Striker", "Winger",
		}),
		FinishingWeaknessRoles: envList("FINISHING_WEAKNESS_ROLES", []string{
			"Forward", "Striker",
		}),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
