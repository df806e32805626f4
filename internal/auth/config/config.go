package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/soratane/gatehouse/internal/auth/config/oidc"
	_ "github.com/soratane/gatehouse/internal/auth/config/oidc/google"
	sessioncfg "github.com/soratane/gatehouse/internal/auth/config/session"
)

const publicOriginEnv = "PUBLIC_ORIGIN"

// AuthConfig holds all configuration for the auth module.
type AuthConfig struct {
	Session *sessioncfg.Config
	OIDC    *oidc.Config

	// PublicOrigin is the externally visible origin of this service.
	// When set, absolute return URLs on that origin are accepted after
	// login. Nil keeps redirects restricted to local paths and
	// registered interaction URLs.
	PublicOrigin *url.URL
}

func Load() (*AuthConfig, error) {
	sessionConfig, err := sessioncfg.Load()
	if err != nil {
		return nil, fmt.Errorf("load session config: %w", err)
	}

	cfg := &AuthConfig{
		Session: sessionConfig,
		OIDC:    nil,
	}

	oidcCfg, err := oidc.Load()
	if err != nil && !errors.Is(err, oidc.ErrNoProvidersConfigured) {
		return nil, fmt.Errorf("load oidc providers: %w", err)
	}

	if oidcCfg != nil {
		cfg.OIDC = oidcCfg
	}

	origin, err := loadPublicOrigin()
	if err != nil {
		return nil, err
	}

	cfg.PublicOrigin = origin

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *AuthConfig) Validate() error {
	if c.Session == nil {
		return ErrSessionConfigMissing
	}

	if err := c.Session.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionConfigMissing, err)
	}

	if c.OIDC != nil {
		if err := c.OIDC.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrOIDCConfigInvalid, err)
		}
	}

	if c.PublicOrigin != nil {
		if c.PublicOrigin.Scheme == "" || c.PublicOrigin.Host == "" {
			return fmt.Errorf("%w: %s", ErrPublicOriginInvalid, c.PublicOrigin)
		}
	}

	return nil
}

func loadPublicOrigin() (*url.URL, error) {
	raw := os.Getenv(publicOriginEnv)
	if raw == "" {
		return nil, nil
	}

	origin, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPublicOriginInvalid, err)
	}

	if origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("%w: %s", ErrPublicOriginInvalid, raw)
	}

	return origin, nil
}
