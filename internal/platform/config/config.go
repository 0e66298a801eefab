package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string
	LogFormat    string

	// Source list overrides; empty selects the embedded copy.
	ListOnePath   string
	ListThreePath string

	UnitsEnabled       bool
	RateLimit          string
	CORSAllowedOrigins []string

	DatabaseURL  string
	EnableDBSync bool
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ISO_LIST_ONE_PATH", "")
	v.SetDefault("ISO_LIST_THREE_PATH", "")
	v.SetDefault("UNITS_ENABLED", true)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_SYNC", false)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:          v.GetString("PORT"),
		IsProduction:  v.GetBool("IS_PRODUCTION"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:     strings.ToLower(v.GetString("LOG_FORMAT")),
		ListOnePath:   v.GetString("ISO_LIST_ONE_PATH"),
		ListThreePath: v.GetString("ISO_LIST_THREE_PATH"),
		UnitsEnabled:  v.GetBool("UNITS_ENABLED"),
		RateLimit:     v.GetString("RATE_LIMIT"),
		DatabaseURL:   v.GetString("PGSQL_URL"),
		EnableDBSync:  v.GetBool("ENABLE_DB_SYNC"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if !validLogLevels[cfg.LogLevel] {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		log.Printf("Warning: Invalid value for LOG_FORMAT ('%s'). Defaulting to json.\n", cfg.LogFormat)
		cfg.LogFormat = "json"
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.EnableDBSync && cfg.DatabaseURL == "" {
		log.Println("Warning: ENABLE_DB_SYNC is set but PGSQL_URL is empty. Snapshot sync disabled.")
		cfg.EnableDBSync = false
	}

	return cfg
}
