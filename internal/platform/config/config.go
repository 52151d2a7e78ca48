package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Preference store backends.
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

const defaultSessionSecret = "a-very-secret-session-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string
	EnableDBCheck bool
	RedisURL      string

	PreferenceStore string
	PreferenceDir   string
	MaxSessions     int

	FXRatesURL        string
	FXRefreshInterval time.Duration
	FXRequestTimeout  time.Duration
	FXCacheTTL        time.Duration

	SessionSecret      string
	SessionTokenExpiry time.Duration

	// RateLimitRefresh uses the ulule formatted rate syntax, e.g. "10-M".
	RateLimitRefresh   string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PREFERENCE_STORE", StoreFile)
	viper.SetDefault("PREFERENCE_DIR", "./data/preferences")
	viper.SetDefault("MAX_SESSIONS", 10000)
	viper.SetDefault("FX_RATES_URL", "")
	viper.SetDefault("FX_REFRESH_INTERVAL", "5m")
	viper.SetDefault("FX_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("FX_CACHE_TTL", "1h")
	viper.SetDefault("SESSION_SECRET", defaultSessionSecret)
	viper.SetDefault("SESSION_TOKEN_EXPIRY", "720h")
	viper.SetDefault("RATE_LIMIT_REFRESH", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		EnableDBCheck:    viper.GetBool("ENABLE_DB_CHECK"),
		RedisURL:         viper.GetString("REDIS_URL"),
		PreferenceStore:  strings.ToLower(strings.TrimSpace(viper.GetString("PREFERENCE_STORE"))),
		PreferenceDir:    viper.GetString("PREFERENCE_DIR"),
		MaxSessions:      viper.GetInt("MAX_SESSIONS"),
		FXRatesURL:       viper.GetString("FX_RATES_URL"),
		SessionSecret:    viper.GetString("SESSION_SECRET"),
		RateLimitRefresh: viper.GetString("RATE_LIMIT_REFRESH"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.PreferenceStore {
	case StoreFile, StoreMemory, StoreRedis, StorePostgres:
	default:
		log.Printf("Warning: Unknown PREFERENCE_STORE ('%s'). Defaulting to %s.\n", cfg.PreferenceStore, StoreFile)
		cfg.PreferenceStore = StoreFile
	}
	if cfg.PreferenceStore == StorePostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PREFERENCE_STORE is postgres but PGSQL_URL is not set.")
	}
	if cfg.PreferenceStore == StoreRedis && cfg.RedisURL == "" {
		log.Println("Warning: PREFERENCE_STORE is redis but REDIS_URL is not set.")
	}

	cfg.FXRefreshInterval = durationOrDefault("FX_REFRESH_INTERVAL", 5*time.Minute)
	cfg.FXRequestTimeout = durationOrDefault("FX_REQUEST_TIMEOUT", 10*time.Second)
	cfg.FXCacheTTL = durationOrDefault("FX_CACHE_TTL", time.Hour)
	cfg.SessionTokenExpiry = durationOrDefault("SESSION_TOKEN_EXPIRY", 30*24*time.Hour)

	if cfg.SessionSecret == "" || cfg.SessionSecret == defaultSessionSecret {
		cfg.SessionSecret = defaultSessionSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: SESSION_SECRET environment variable not set. Using default insecure key.")
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func durationOrDefault(key string, def time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, def.String())
		}
		return def
	}
	return d
}
