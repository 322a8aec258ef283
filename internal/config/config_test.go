package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET_KEY", "s")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded without DATABASE_URL")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET_KEY", "")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded without JWT_SECRET_KEY")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET_KEY", "s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != 8000 {
		t.Errorf("APIPort = %d, want 8000", cfg.APIPort)
	}
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %v, want 24h", cfg.JWTExpiry)
	}
	want := []string{"Forward", "Striker", "Winger"}
	if len(cfg.AttackingRoles) != len(want) {
		t.Fatalf("AttackingRoles = %v, want %v", cfg.AttackingRoles, want)
	}
	for i := range want {
		if cfg.AttackingRoles[i] != want[i] {
			t.Errorf("AttackingRoles[%d] = %q, want %q", i, cfg.AttackingRoles[i], want[i])
		}
	}
	wantWeak := []string{"Forward", "Striker"}
	if !reflect.DeepEqual(cfg.FinishingWeaknessRoles, wantWeak) {
		t.Errorf("FinishingWeaknessRoles = %v, want %v", cfg.FinishingWeaknessRoles, wantWeak)
	}
}

func TestLoadAttackingRolesOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET_KEY", "s")
	t.Setenv("ATTACKING_ROLES", "Striker, Attacking Midfielder")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.AttackingRoles) != 2 || cfg.AttackingRoles[1] != "Attacking Midfielder" {
		t.Errorf("AttackingRoles = %v, want trimmed override", cfg.AttackingRoles)
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{Environment: "production"}
	if !cfg.IsProduction() {
		t.Error("IsProduction = false in production")
	}
	cfg.Environment = "development"
	if cfg.IsProduction() {
		t.Error("IsProduction = true in development")
	}
}
