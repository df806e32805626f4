package google

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/soratane/gatehouse/internal/auth/config/oidc"
)

const (
	ProviderID = "google"

	clientIDEnv = "OIDC_GOOGLE_CLIENT_ID"
	//nolint:gosec // This is an environment variable name, not a hardcoded credential
	clientSecretEnv = "OIDC_GOOGLE_CLIENT_SECRET"
	redirectURIEnv  = "OIDC_GOOGLE_REDIRECT_URI"
	scopesEnv       = "OIDC_GOOGLE_SCOPES"
	issuerURLEnv    = "OIDC_GOOGLE_ISSUER_URL"

	defaultIssuerURL = "https://accounts.google.com"
)

var (
	ErrGoogleClientSecretMissing = errors.New("google oidc client secret missing")
	ErrGoogleRedirectURIMissing  = errors.New("google oidc redirect uri missing")
	ErrGoogleIssuerInvalid       = errors.New("issuer URL host should contain 'google.com'")
)

func init() {
	oidc.RegisterProvider(ProviderID, loadConfig)
}

func loadConfig() (oidc.ProviderConfig, bool, error) {
	clientID := os.Getenv(clientIDEnv)
	if clientID == "" {
		return oidc.ProviderConfig{}, false, nil
	}

	clientSecret := os.Getenv(clientSecretEnv)
	if clientSecret == "" {
		return oidc.ProviderConfig{}, false, ErrGoogleClientSecretMissing
	}

	redirectURI := os.Getenv(redirectURIEnv)
	if redirectURI == "" {
		return oidc.ProviderConfig{}, false, ErrGoogleRedirectURIMissing
	}

	issuerURL := os.Getenv(issuerURLEnv)
	if issuerURL == "" {
		issuerURL = defaultIssuerURL
	}

	if err := validateIssuer(issuerURL); err != nil {
		return oidc.ProviderConfig{}, false, err
	}

	return oidc.ProviderConfig{
		ID:           ProviderID,
		IssuerURL:    issuerURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURI:  redirectURI,
		Scopes:       loadScopes(),
	}, true, nil
}

func loadScopes() []string {
	raw := os.Getenv(scopesEnv)
	if raw == "" {
		return []string{"openid", "profile", "email"}
	}

	parts := strings.Split(raw, ",")
	scopes := make([]string, 0, len(parts))

	for _, part := range parts {
		scope := strings.TrimSpace(part)
		if scope != "" {
			scopes = append(scopes, scope)
		}
	}

	return scopes
}

func validateIssuer(issuerURL string) error {
	parsed, err := url.Parse(issuerURL)
	if err != nil {
		return fmt.Errorf("invalid issuer URL: %w", err)
	}

	if !strings.Contains(parsed.Host, "google.com") {
		return fmt.Errorf("%w, got: %s", ErrGoogleIssuerInvalid, parsed.Host)
	}

	return nil
}
