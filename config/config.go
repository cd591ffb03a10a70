package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLDatabase string

	RedisAddr        string
	JWTSecret        string
	GoogleMapsAPIKey string

	GeocodeCacheTTL  time.Duration
	InterestCacheTTL time.Duration
}

// Load reads the process environment, after merging a local .env file if one exists.
func Load() (*Config, error) {
	cfg := LoadDatabase()
	cfg.Port = getenv("PORT", "8080")
	cfg.RedisAddr = getenv("REDIS_ADDR", "localhost:6379")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.GoogleMapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	var err error
	if cfg.GeocodeCacheTTL, err = durationEnv("GEOCODE_CACHE_TTL", 720*time.Hour); err != nil {
		return nil, err
	}
	if cfg.InterestCacheTTL, err = durationEnv("INTEREST_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.GoogleMapsAPIKey == "" {
		return nil, errors.New("GOOGLE_MAPS_API_KEY is not set")
	}
	return cfg, nil
}

// LoadDatabase reads only the MySQL settings, for tools that never serve HTTP.
func LoadDatabase() *Config {
	// .env is optional; deployed environments set real variables.
	_ = godotenv.Load()

	return &Config{
		MySQLUser:     getenv("MYSQL_USER", "user"),
		MySQLPassword: getenv("MYSQL_PWD", "password"),
		MySQLHost:     getenv("MYSQL_HOST", "tcp(127.0.0.1:3306)"),
		MySQLDatabase: getenv("MYSQL_DATABASE", "swap_db"),
	}
}

// DSN returns the MySQL data source name. MYSQL_HOST keeps the driver's
// "tcp(host:port)" / "unix(/path)" notation.
func (c *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.MySQLUser
	mc.Passwd = c.MySQLPassword
	mc.Net, mc.Addr = splitHost(c.MySQLHost)
	mc.DBName = c.MySQLDatabase
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

func splitHost(host string) (string, string) {
	for _, netw := range []string{"tcp", "unix"} {
		prefix := netw + "("
		if len(host) > len(prefix)+1 && host[:len(prefix)] == prefix && host[len(host)-1] == ')' {
			return netw, host[len(prefix) : len(host)-1]
		}
	}
	return "tcp", host
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
