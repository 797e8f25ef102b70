// Package config reads server and CLI settings from the environment, with an
// optional .env file loaded first.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr          = "localhost:3000"
	DefaultTokenTTL      = 7 * 24 * time.Hour
	DefaultOpenAIBaseURL = "https://api.openai.com"
)

// Config holds process settings. OPENAI_API_KEY is not included; the suggest
// client reads it per request.
type Config struct {
	DBURL         string
	Addr          string
	JWTKey        []byte
	TokenTTL      time.Duration
	OpenAIBaseURL string
}

// Load reads .env from the working directory when present, then the
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		DBURL:         os.Getenv("DB_URL"),
		Addr:          getenv("ADDR", DefaultAddr),
		JWTKey:        []byte(os.Getenv("JWT_KEY")),
		TokenTTL:      DefaultTokenTTL,
		OpenAIBaseURL: getenv("OPENAI_BASE_URL", DefaultOpenAIBaseURL),
	}
	if cfg.DBURL == "" {
		return Config{}, errors.New("DB_URL is required")
	}
	if len(cfg.JWTKey) == 0 {
		return Config{}, errors.New("JWT_KEY is required")
	}
	if s := os.Getenv("TOKEN_TTL"); s != "" {
		ttl, err := time.ParseDuration(s)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("invalid TOKEN_TTL %q", s)
		}
		cfg.TokenTTL = ttl
	}
	return cfg, nil
}

// DBURL loads .env and returns DB_URL alone, for tools that never issue tokens.
func DBURL() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("loading .env: %w", err)
	}
	url := os.Getenv("DB_URL")
	if url == "" {
		return "", errors.New("DB_URL is required")
	}
	return url, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
