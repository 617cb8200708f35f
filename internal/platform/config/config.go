package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends selectable through STORAGE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMySQL    = "mysql"
	BackendSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	StorageBackend string
	DatabaseURL    string
	MySQLDSN       string
	SQLitePath     string
	EnableDBCheck  bool

	JWTSecret string
	JWTIssuer string

	RedisAddress     string
	RedisPassword    string
	RedisDB          int
	SettingsCacheTTL time.Duration
	CloseLockTTL     time.Duration

	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	PosthogAPIKey string

	PeriodWindowDays   int
	RequestTimeout     time.Duration
	RateLimit          string
	CORSAllowedOrigins []string

	Party1DefaultName string
	Party2DefaultName string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_BACKEND", BackendSQLite)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MYSQL_DSN", "")
	v.SetDefault("SQLITE_PATH", "file:workshop.db?_foreign_keys=on")
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "workshop-manager-app")
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SETTINGS_CACHE_TTL", "5m")
	v.SetDefault("CLOSE_LOCK_TTL", "30s")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "workshop.events")
	v.SetDefault("AMQP_ROUTING_KEY", "period.closed")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("PERIOD_WINDOW_DAYS", 30)
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("PARTY1_DEFAULT_NAME", "Instalador")
	v.SetDefault("PARTY2_DEFAULT_NAME", "Oficina")

	// Values from .env were exported into the process env above, real env vars still win.
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		StorageBackend: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		MySQLDSN:       v.GetString("MYSQL_DSN"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		JWTIssuer:      v.GetString("JWT_ISSUER"),
		RedisAddress:   v.GetString("REDIS_ADDRESS"),
		RedisPassword:  v.GetString("REDIS_PASSWORD"),
		RedisDB:        v.GetInt("REDIS_DB"),
		AMQPURL:        v.GetString("AMQP_URL"),
		AMQPExchange:   v.GetString("AMQP_EXCHANGE"),
		AMQPRoutingKey: v.GetString("AMQP_ROUTING_KEY"),
		PosthogAPIKey:  v.GetString("POSTHOG_API_KEY"),
		RateLimit:      v.GetString("RATE_LIMIT"),

		PeriodWindowDays:  v.GetInt("PERIOD_WINDOW_DAYS"),
		Party1DefaultName: v.GetString("PARTY1_DEFAULT_NAME"),
		Party2DefaultName: v.GetString("PARTY2_DEFAULT_NAME"),
	}

	cfg.SettingsCacheTTL = durationOrDefault(v, "SETTINGS_CACHE_TTL", 5*time.Minute)
	cfg.CloseLockTTL = durationOrDefault(v, "CLOSE_LOCK_TTL", 30*time.Second)
	cfg.RequestTimeout = durationOrDefault(v, "REQUEST_TIMEOUT", 15*time.Second)

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combination of settings that main relies on.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("PGSQL_URL is required when STORAGE_BACKEND=%s", BackendPostgres)
		}
	case BackendMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN is required when STORAGE_BACKEND=%s", BackendMySQL)
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORAGE_BACKEND=%s", BackendSQLite)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q: must be one of %s, %s, %s", c.StorageBackend, BackendPostgres, BackendMySQL, BackendSQLite)
	}
	if c.PeriodWindowDays < 0 {
		return fmt.Errorf("PERIOD_WINDOW_DAYS must not be negative, got %d", c.PeriodWindowDays)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	return nil
}

func durationOrDefault(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			slog.Warn("Invalid duration, using default", slog.String("key", key), slog.String("value", raw), slog.Duration("default", def))
		}
		return def
	}
	return d
}
