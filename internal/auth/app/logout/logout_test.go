package logout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/soratane/gatehouse/internal/auth/app/flow"
	"github.com/soratane/gatehouse/internal/auth/app/logout"
	domainsession "github.com/soratane/gatehouse/internal/auth/domain/session"
	"github.com/soratane/gatehouse/internal/auth/domain/user"
	sessionjwt "github.com/soratane/gatehouse/internal/auth/infra/jwt"
	"github.com/soratane/gatehouse/internal/auth/infra/repository"
)

func newSession(t *testing.T, externalToken *string) *domainsession.Session {
	t.Helper()

	now := time.Now().UTC()

	sess, err := domainsession.NewSession(user.NewID(), "alice", "google", nil, externalToken, now, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}

	return sess
}

func TestLogoutTerminatesSessionAndBuildsProviderURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, err := sessionjwt.NewSessionTokenGenerator("test-secret")
	if err != nil {
		t.Fatalf("failed to create token generator: %v", err)
	}

	externalToken := "raw-id-token"
	sess := newSession(t, &externalToken)

	sessions := repository.NewInMemorySessionRepository()
	if err := sessions.SaveSession(context.Background(), sess); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	signed, err := tokens.Generate(sess)
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}

	provider := flow.NewMockExternalProvider(ctrl)
	provider.EXPECT().
		EndSessionURL("raw-id-token").
		Return("https://idp.example/logout?id_token_hint=raw-id-token")

	handler := logout.NewLogoutHandler(
		sessions,
		map[string]flow.ExternalProvider{"google": provider},
		tokens,
	)

	result, err := handler.Logout(context.Background(), &logout.LogoutRequest{SessionToken: signed})
	if err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	if !result.Success {
		t.Fatalf("expected success")
	}
	if result.ProviderLogoutURL != "https://idp.example/logout?id_token_hint=raw-id-token" {
		t.Fatalf("ProviderLogoutURL = %s", result.ProviderLogoutURL)
	}

	if _, err := sessions.GetSession(context.Background(), sess.ID()); !errors.Is(err, domainsession.ErrSessionNotFound) {
		t.Fatalf("session still present after logout: %v", err)
	}
}

func TestLogoutWithoutRetainedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens, err := sessionjwt.NewSessionTokenGenerator("test-secret")
	if err != nil {
		t.Fatalf("failed to create token generator: %v", err)
	}

	sess := newSession(t, nil)

	sessions := repository.NewInMemorySessionRepository()
	if err := sessions.SaveSession(context.Background(), sess); err != nil {
		t.Fatalf("failed to save session: %v", err)
	}

	signed, err := tokens.Generate(sess)
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}

	// No EndSessionURL expectation: without a retained token the provider
	// must not be consulted.
	provider := flow.NewMockExternalProvider(ctrl)

	handler := logout.NewLogoutHandler(
		sessions,
		map[string]flow.ExternalProvider{"google": provider},
		tokens,
	)

	result, err := handler.Logout(context.Background(), &logout.LogoutRequest{SessionToken: signed})
	if err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	if result.ProviderLogoutURL != "" {
		t.Fatalf("ProviderLogoutURL = %s, want empty", result.ProviderLogoutURL)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	tokens, err := sessionjwt.NewSessionTokenGenerator("test-secret")
	if err != nil {
		t.Fatalf("failed to create token generator: %v", err)
	}

	sess := newSession(t, nil)

	// The session was never stored (or already removed).
	sessions := repository.NewInMemorySessionRepository()

	signed, err := tokens.Generate(sess)
	if err != nil {
		t.Fatalf("failed to sign session token: %v", err)
	}

	handler := logout.NewLogoutHandler(sessions, nil, tokens)

	result, err := handler.Logout(context.Background(), &logout.LogoutRequest{SessionToken: signed})
	if err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success for an already absent session")
	}
}

func TestLogoutErrors(t *testing.T) {
	tokens, err := sessionjwt.NewSessionTokenGenerator("test-secret")
	if err != nil {
		t.Fatalf("failed to create token generator: %v", err)
	}

	handler := logout.NewLogoutHandler(repository.NewInMemorySessionRepository(), nil, tokens)

	tests := []struct {
		name    string
		req     *logout.LogoutRequest
		wantErr error
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: logout.ErrRequestNil,
		},
		{
			name:    "empty token",
			req:     &logout.LogoutRequest{},
			wantErr: logout.ErrSessionTokenRequired,
		},
		{
			name:    "garbage token",
			req:     &logout.LogoutRequest{SessionToken: "not-a-jwt"},
			wantErr: logout.ErrSessionTokenInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Logout(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
