package oidc

import (
	"fmt"
	"net/url"
	"slices"
)

// ProviderConfig holds the settings every OIDC provider must supply.
// Endpoints are resolved through issuer discovery, so only the issuer
// URL is configured here.
type ProviderConfig struct {
	ID           string
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
}

func (c ProviderConfig) Validate() error {
	if c.ID == "" {
		return ErrProviderIDMissing
	}

	if c.ClientID == "" {
		return ErrClientIDMissing
	}

	if c.ClientSecret == "" {
		return ErrClientSecretMissing
	}

	if c.RedirectURI == "" {
		return ErrRedirectURIMissing
	}

	parsedURL, err := url.Parse(c.RedirectURI)
	if err != nil {
		return fmt.Errorf("invalid redirect URI: %w", err)
	}

	if parsedURL.Scheme == "" {
		return ErrRedirectSchemeMissing
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("%w, got: %s", ErrRedirectSchemeInvalid, parsedURL.Scheme)
	}

	if len(c.Scopes) == 0 {
		return ErrScopesMissing
	}

	if !slices.Contains(c.Scopes, "openid") {
		return ErrScopeOpenIDRequired
	}

	if c.IssuerURL == "" {
		return ErrIssuerURLMissing
	}

	parsedIssuer, err := url.Parse(c.IssuerURL)
	if err != nil {
		return fmt.Errorf("invalid issuer URL: %w", err)
	}

	if parsedIssuer.Scheme != "https" {
		return fmt.Errorf("%w, got: %s", ErrIssuerURLSchemeInvalid, parsedIssuer.Scheme)
	}

	return nil
}

// Config holds configured providers keyed by their identifier.
type Config struct {
	Providers map[string]ProviderConfig
}

func (c *Config) Validate() error {
	if len(c.Providers) == 0 {
		return ErrNoProvidersConfigured
	}

	for id, provider := range c.Providers {
		if provider.ID != id {
			return fmt.Errorf("%s: %w", id, ErrProviderIDMismatch)
		}
		if err := provider.Validate(); err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
	}

	return nil
}

// ProviderLoader builds a provider configuration from the environment.
// It reports false when the provider is not configured at all.
type ProviderLoader func() (ProviderConfig, bool, error)

var loaders = map[string]ProviderLoader{}

// RegisterProvider registers a loader for a provider identifier.
func RegisterProvider(id string, loader ProviderLoader) {
	if loader == nil {
		panic("oidc: loader cannot be nil")
	}
	if _, ok := loaders[id]; ok {
		panic(fmt.Sprintf("oidc: provider %s already registered", id))
	}
	loaders[id] = loader
}

func Load() (*Config, error) {
	providers := make(map[string]ProviderConfig)

	for id, loader := range loaders {
		cfg, ok, err := loader()
		if err != nil {
			return nil, fmt.Errorf("%s provider: %w", id, err)
		}
		if ok {
			providers[id] = cfg
		}
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	cfg := &Config{Providers: providers}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
