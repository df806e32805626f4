package provider

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/oauth2"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
)

func TestBuildAuthorizationURL(t *testing.T) {
	t.Parallel()

	p := &RelyingParty{
		id: "google",
		oauthConfig: &oauth2.Config{
			ClientID:    "client-1",
			RedirectURL: "https://app.example/external/callback",
			Scopes:      []string{"openid", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL: "https://idp.example/authorize",
			},
		},
	}

	raw := p.BuildAuthorizationURL("state-1", "nonce-1", "challenge-1")

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse authorization URL: %v", err)
	}

	if parsed.Host != "idp.example" || parsed.Path != "/authorize" {
		t.Fatalf("unexpected endpoint: %s", raw)
	}

	query := parsed.Query()

	checks := map[string]string{
		"client_id":             "client-1",
		"redirect_uri":          "https://app.example/external/callback",
		"response_type":         "code",
		"state":                 "state-1",
		"nonce":                 "nonce-1",
		"code_challenge":        "challenge-1",
		"code_challenge_method": "S256",
		"scope":                 "openid profile",
	}

	for key, want := range checks {
		if got := query.Get(key); got != want {
			t.Fatalf("query[%s] = %s, want %s", key, got, want)
		}
	}
}

func TestBuildAuthorizationURLWithoutPKCE(t *testing.T) {
	t.Parallel()

	p := &RelyingParty{
		id: "google",
		oauthConfig: &oauth2.Config{
			ClientID: "client-1",
			Endpoint: oauth2.Endpoint{AuthURL: "https://idp.example/authorize"},
		},
	}

	parsed, err := url.Parse(p.BuildAuthorizationURL("state-1", "", ""))
	if err != nil {
		t.Fatalf("failed to parse authorization URL: %v", err)
	}

	query := parsed.Query()

	if query.Has("nonce") || query.Has("code_challenge") || query.Has("code_challenge_method") {
		t.Fatalf("empty parameters must be omitted: %s", parsed)
	}
}

func encodeIDToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

func TestClaimsFromIDToken(t *testing.T) {
	t.Parallel()

	token := encodeIDToken(t, map[string]any{
		"iss":                "https://idp.example",
		"aud":                "client-1",
		"exp":                1717243200,
		"iat":                1717239600,
		"nonce":              "nonce-1",
		"sub":                "ext-123",
		"name":               "Jane Doe",
		"email":              "jane@example.com",
		"sid":                "provider-session-1",
		"zoneinfo":           "Europe/Berlin",
		"email_verified":     true,
		"custom_level":       float64(3),
		"preferred_username": "jane",
	})

	claims, err := claimsFromIDToken(token)
	if err != nil {
		t.Fatalf("claimsFromIDToken returned error: %v", err)
	}

	want := []assertion.Claim{
		{Type: "sub", Value: "ext-123"},
		{Type: "name", Value: "Jane Doe"},
		{Type: "preferred_username", Value: "jane"},
		{Type: "email", Value: "jane@example.com"},
		{Type: "sid", Value: "provider-session-1"},
		{Type: "custom_level", Value: "3"},
		{Type: "email_verified", Value: "true"},
		{Type: "zoneinfo", Value: "Europe/Berlin"},
	}

	if diff := cmp.Diff(want, claims); diff != "" {
		t.Fatalf("claims mismatch (-want +got):\n%s", diff)
	}
}

func TestClaimsFromIDTokenMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "garbage"},
		{name: "two segments", token: "a.b"},
		{name: "payload not base64", token: "a.!!!.c"},
		{name: "payload not json", token: "a." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".c"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := claimsFromIDToken(tt.token); err == nil {
				t.Fatalf("expected error but got nil")
			}
		})
	}
}

func TestStringifyClaim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "x", want: "x"},
		{name: "true", input: true, want: "true"},
		{name: "false", input: false, want: "false"},
		{name: "integer number", input: float64(42), want: "42"},
		{name: "fractional number", input: 1.5, want: "1.5"},
		{name: "array", input: []any{"a", "b"}, want: `["a","b"]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := stringifyClaim(tt.input); got != tt.want {
				t.Fatalf("stringifyClaim(%v) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildEndSessionURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		endpoint    string
		idTokenHint string
		want        string
	}{
		{
			name:        "endpoint with hint",
			endpoint:    "https://idp.example/logout",
			idTokenHint: "raw-id-token",
			want:        "https://idp.example/logout?id_token_hint=raw-id-token",
		},
		{
			name:     "endpoint without hint",
			endpoint: "https://idp.example/logout",
			want:     "https://idp.example/logout",
		},
		{
			name:        "no endpoint",
			endpoint:    "",
			idTokenHint: "raw-id-token",
			want:        "",
		},
		{
			name:        "endpoint with existing query",
			endpoint:    "https://idp.example/logout?client_id=abc",
			idTokenHint: "tok",
			want:        "https://idp.example/logout?client_id=abc&id_token_hint=tok",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := buildEndSessionURL(tt.endpoint, tt.idTokenHint); got != tt.want {
				t.Fatalf("buildEndSessionURL = %s, want %s", got, tt.want)
			}
		})
	}
}
