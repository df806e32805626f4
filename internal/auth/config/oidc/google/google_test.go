package google

import (
	"errors"
	"testing"
)

func TestLoadConfigNotConfigured(t *testing.T) {
	t.Setenv(clientIDEnv, "")

	_, ok, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected provider to be absent without a client id")
	}
}

func TestLoadConfigSuccess(t *testing.T) {
	t.Setenv(clientIDEnv, "client-1")
	t.Setenv(clientSecretEnv, "secret-1")
	t.Setenv(redirectURIEnv, "https://app.example/external/callback")

	cfg, ok, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected provider to be configured")
	}

	if cfg.ID != ProviderID {
		t.Fatalf("ID = %s, want %s", cfg.ID, ProviderID)
	}
	if cfg.IssuerURL != defaultIssuerURL {
		t.Fatalf("IssuerURL = %s, want %s", cfg.IssuerURL, defaultIssuerURL)
	}
	if len(cfg.Scopes) != 3 {
		t.Fatalf("Scopes = %v, want default openid/profile/email", cfg.Scopes)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestLoadConfigCustomScopes(t *testing.T) {
	t.Setenv(clientIDEnv, "client-1")
	t.Setenv(clientSecretEnv, "secret-1")
	t.Setenv(redirectURIEnv, "https://app.example/external/callback")
	t.Setenv(scopesEnv, "openid, email , ")

	cfg, ok, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected provider to be configured")
	}

	if len(cfg.Scopes) != 2 || cfg.Scopes[0] != "openid" || cfg.Scopes[1] != "email" {
		t.Fatalf("Scopes = %v, want [openid email]", cfg.Scopes)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv(clientIDEnv, "client-1")
		t.Setenv(clientSecretEnv, "")
		t.Setenv(redirectURIEnv, "https://app.example/external/callback")

		_, _, err := loadConfig()
		if !errors.Is(err, ErrGoogleClientSecretMissing) {
			t.Fatalf("expected ErrGoogleClientSecretMissing, got %v", err)
		}
	})

	t.Run("missing redirect uri", func(t *testing.T) {
		t.Setenv(clientIDEnv, "client-1")
		t.Setenv(clientSecretEnv, "secret-1")
		t.Setenv(redirectURIEnv, "")

		_, _, err := loadConfig()
		if !errors.Is(err, ErrGoogleRedirectURIMissing) {
			t.Fatalf("expected ErrGoogleRedirectURIMissing, got %v", err)
		}
	})

	t.Run("foreign issuer", func(t *testing.T) {
		t.Setenv(clientIDEnv, "client-1")
		t.Setenv(clientSecretEnv, "secret-1")
		t.Setenv(redirectURIEnv, "https://app.example/external/callback")
		t.Setenv(issuerURLEnv, "https://idp.example")

		_, _, err := loadConfig()
		if !errors.Is(err, ErrGoogleIssuerInvalid) {
			t.Fatalf("expected ErrGoogleIssuerInvalid, got %v", err)
		}
	})
}
