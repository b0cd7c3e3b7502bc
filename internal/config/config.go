package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the process needs. Values come from
// environment variables (optionally seeded by a .env file loaded in main).
type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration
	BcryptCost   int
	LogLevel     string
	LogFormat    string
}

// Load reads configuration from the environment and validates that the
// secrets the server cannot run without are present.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("AI_TIMEOUT_SECONDS", 30)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := &Config{
		Port:         v.GetString("PORT"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
		GeminiModel:  v.GetString("GEMINI_MODEL"),
		AITimeout:    time.Duration(v.GetInt("AI_TIMEOUT_SECONDS")) * time.Second,
		BcryptCost:   v.GetInt("BCRYPT_COST"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
	}

	for key, val := range map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"JWT_SECRET":     cfg.JWTSecret,
		"GEMINI_API_KEY": cfg.GeminiAPIKey,
	} {
		if val == "" {
			return nil, fmt.Errorf("missing required environment variable %s", key)
		}
	}

	// Below bcrypt's minimum the library silently falls back; refuse weak cost.
	if cfg.BcryptCost < 10 {
		return nil, fmt.Errorf("BCRYPT_COST must be at least 10, got %d", cfg.BcryptCost)
	}

	return cfg, nil
}
