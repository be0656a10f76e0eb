package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DBPath is the sqlite file backing the durable local fallback store
	// (rate cache + savings goal).
	DBPath string

	// Rate provider settings
	RateSourceURL    string
	RateCacheTTL     time.Duration
	RateFetchTimeout time.Duration

	// RefreshDebounce is the quiet period used to collapse bursts of
	// snapshot mutations into a single recomputation trigger.
	RefreshDebounce time.Duration

	// RateLimit is the request rate limit in ulule/limiter notation,
	// e.g. "120-M" for 120 requests per minute per client IP.
	RateLimit string

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DB_PATH", "data/budget.db")
	viper.SetDefault("RATE_SOURCE_URL", "https://www.cbr-xml-daily.ru/daily_json.js")
	viper.SetDefault("RATE_CACHE_TTL", "24h")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "10s")
	viper.SetDefault("REFRESH_DEBOUNCE", "250ms")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		DBPath:           viper.GetString("DB_PATH"),
		RateSourceURL:    viper.GetString("RATE_SOURCE_URL"),
		RateCacheTTL:     viper.GetDuration("RATE_CACHE_TTL"),
		RateFetchTimeout: viper.GetDuration("RATE_FETCH_TIMEOUT"),
		RefreshDebounce:  viper.GetDuration("REFRESH_DEBOUNCE"),
		RateLimit:        viper.GetString("RATE_LIMIT"),
		CORSAllowOrigins: viper.GetStringSlice("CORS_ALLOW_ORIGINS"),
	}

	return cfg, nil
}
