package session

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	sessionSecretEnv   = "SESSION_SECRET"
	sessionDurationEnv = "SESSION_DURATION"

	defaultSessionDuration = 24 * time.Hour
)

var (
	ErrSessionSecretMissing   = errors.New("session secret is required")
	ErrSessionDurationInvalid = errors.New("session duration must be positive")
)

// Config holds the signing secret and lifetime for local sessions. The same
// secret backs both the session token and the challenge marker.
type Config struct {
	Duration time.Duration
	Secret   string
}

func Load() (*Config, error) {
	cfg := &Config{
		Duration: getEnvDuration(sessionDurationEnv, defaultSessionDuration),
		Secret:   os.Getenv(sessionSecretEnv),
	}

	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: %s", ErrSessionSecretMissing, sessionSecretEnv)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Secret == "" {
		return ErrSessionSecretMissing
	}

	if c.Duration <= 0 {
		return fmt.Errorf("%w, got: %v", ErrSessionDurationInvalid, c.Duration)
	}

	return nil
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
