package config

import (
	"log/slog"
	"strings"

	"github.com/SscSPs/accountbook_service/internal/core/chart"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort             = "8080"
	defaultJWTSecret        = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer        = "accountbook-identity"
	defaultMigrationsPath   = "file://migrations"
	defaultRateLimit        = "100-M"
	defaultAccountingSystem = "IFRS"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	JWTSecret      string
	JWTIssuer      string
	MigrationsPath string

	// RateLimit is a ulule formatted rate, e.g. "100-M".
	RateLimit          string
	CORSAllowedOrigins []string

	DefaultAccountingSystem string
	SeedStrategy            chart.Strategy
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Invalid values fall back to their defaults with a warning.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("DEFAULT_ACCOUNTING_SYSTEM", defaultAccountingSystem)
	v.SetDefault("SEED_STRATEGY", string(chart.BreadthFirst))
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:             v.GetString("PGSQL_URL"),
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:           v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTIssuer:               v.GetString("JWT_ISSUER"),
		MigrationsPath:          v.GetString("MIGRATIONS_PATH"),
		RateLimit:               v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DefaultAccountingSystem: strings.TrimSpace(v.GetString("DEFAULT_ACCOUNTING_SYSTEM")),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set. Using default insecure key.")
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		slog.Warn("Invalid value for RATE_LIMIT, using default",
			slog.String("value", cfg.RateLimit), slog.String("default", defaultRateLimit))
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.DefaultAccountingSystem == "" {
		cfg.DefaultAccountingSystem = defaultAccountingSystem
	}

	strategy, err := chart.ParseStrategy(v.GetString("SEED_STRATEGY"))
	if err != nil {
		slog.Warn("Invalid value for SEED_STRATEGY, using default",
			slog.String("error", err.Error()), slog.String("default", string(chart.BreadthFirst)))
		strategy = chart.BreadthFirst
	}
	cfg.SeedStrategy = strategy

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
