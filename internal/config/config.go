// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort         = "8080"
	defaultDatabasePath = "devconnect.db"
	defaultTokenTTL     = 10 * time.Hour
	defaultBcryptCost   = 12

	minJWTSecretLen = 32
	minBcryptCost   = 4
	maxBcryptCost   = 14
)

// Config holds all runtime settings.
type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
}

// Load reads configuration from environment variables, applying defaults
// for everything except JWT_SECRET, which must be set and long enough to
// make brute-forcing the signing key impractical. All problems are reported
// together.
func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		Port:         envOr("PORT", defaultPort),
		DatabasePath: envOr("DATABASE_PATH", defaultDatabasePath),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     defaultTokenTTL,
		BcryptCost:   defaultBcryptCost,
	}

	if len(cfg.JWTSecret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be set and at least %d characters", minJWTSecretLen))
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			errs = append(errs, fmt.Errorf("TOKEN_TTL must be a positive duration, got %q", raw))
		} else {
			cfg.TokenTTL = ttl
		}
	}

	if raw := os.Getenv("BCRYPT_COST"); raw != "" {
		cost, err := strconv.Atoi(raw)
		if err != nil || cost < minBcryptCost || cost > maxBcryptCost {
			errs = append(errs, fmt.Errorf("BCRYPT_COST must be an integer between %d and %d, got %q", minBcryptCost, maxBcryptCost, raw))
		} else {
			cfg.BcryptCost = cost
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
