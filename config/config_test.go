package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key")
	t.Setenv("MYSQL_HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("GEOCODE_CACHE_TTL", "")
	t.Setenv("INTEREST_CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.GeocodeCacheTTL != 720*time.Hour {
		t.Errorf("GeocodeCacheTTL = %s", cfg.GeocodeCacheTTL)
	}
	if cfg.InterestCacheTTL != 5*time.Minute {
		t.Errorf("InterestCacheTTL = %s", cfg.InterestCacheTTL)
	}
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("GOOGLE_MAPS_API_KEY", "key")
	t.Setenv("GEOCODE_CACHE_TTL", "forever")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "GEOCODE_CACHE_TTL") {
		t.Fatalf("err = %v, want GEOCODE_CACHE_TTL error", err)
	}
}

func TestDSN(t *testing.T) {
	cases := []struct {
		host string
		want string
	}{
		{"tcp(127.0.0.1:3306)", "user:password@tcp(127.0.0.1:3306)/swap_db?"},
		{"unix(/cloudsql/x)", "user:password@unix(/cloudsql/x)/swap_db?"},
		{"db:3306", "user:password@tcp(db:3306)/swap_db?"},
	}
	for _, c := range cases {
		cfg := &Config{MySQLUser: "user", MySQLPassword: "password", MySQLHost: c.host, MySQLDatabase: "swap_db"}
		dsn := cfg.DSN()
		if !strings.HasPrefix(dsn, c.want) {
			t.Errorf("DSN(%q) = %q, want prefix %q", c.host, dsn, c.want)
		}
		if !strings.Contains(dsn, "parseTime=true") {
			t.Errorf("DSN(%q) = %q, missing parseTime", c.host, dsn)
		}
	}
}
