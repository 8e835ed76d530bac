package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL string
	// DatabaseMaxConns caps the pgx pool size; zero keeps the driver default.
	DatabaseMaxConns int32
	Port             string
	IsProduction     bool
	MigrationsPath   string
	// DefaultCurrency is used when a capital record is created without an
	// explicit currency.
	DefaultCurrency string
	// Rate limiting, e.g. "100-M" for 100 requests/minute.
	RateLimit string
	// AllowedOrigins is a comma-separated list for CORS; "*" allows all.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PGSQL_MAX_CONNS", 10)
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DEFAULT_CURRENCY", "DZD")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.DatabaseMaxConns = viper.GetInt32("PGSQL_MAX_CONNS")
	if cfg.DatabaseMaxConns < 0 {
		log.Printf("Warning: Invalid PGSQL_MAX_CONNS (%d). Using the driver default.\n", cfg.DatabaseMaxConns)
		cfg.DatabaseMaxConns = 0
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	if len(cfg.DefaultCurrency) != 3 {
		log.Printf("Warning: Invalid DEFAULT_CURRENCY ('%s'). Defaulting to DZD.\n", cfg.DefaultCurrency)
		cfg.DefaultCurrency = "DZD"
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	origins := viper.GetString("ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}
