package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime parameters of the library.
type Config struct {
	Env               string
	LogLevel          string
	EmailCodeTTL      time.Duration
	PhoneCodeTTL      time.Duration
	ProposalLifetime  time.Duration
	DefaultPageSize   int
	DefaultDateRange  int // days; 0 means "all time"
	CountdownInterval time.Duration
}

// Load reads environment variables and returns a ready configuration.
func Load() (*Config, error) {
	// Load .env only if it exists, otherwise rely on system environment.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env not found, using environment variables: %v", err)
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		EmailCodeTTL:      mustParseDuration(getEnv("EMAIL_CODE_TTL", "15m")),
		PhoneCodeTTL:      mustParseDuration(getEnv("PHONE_CODE_TTL", "5m")),
		ProposalLifetime:  mustParseDuration(getEnv("PROPOSAL_LIFETIME", "336h")),
		DefaultPageSize:   mustParseInt(getEnv("DEFAULT_PAGE_SIZE", "20")),
		DefaultDateRange:  mustParseInt(getEnv("DEFAULT_DATE_RANGE_DAYS", "0")),
		CountdownInterval: mustParseDuration(getEnv("COUNTDOWN_INTERVAL", "1s")),
	}

	return cfg, nil
}

// getEnv returns an environment variable value or the fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// mustParseDuration parses a duration string or aborts startup.
func mustParseDuration(v string) time.Duration {
	dur, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: cannot parse duration %q: %v", v, err)
	}
	return dur
}

// mustParseInt parses an integer string or aborts startup.
func mustParseInt(v string) int {
	num, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: cannot parse number %q: %v", v, err)
	}
	return num
}
