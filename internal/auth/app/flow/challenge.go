package flow

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"log/slog"

	"github.com/soratane/gatehouse/internal/auth/domain/challenge"
	"github.com/soratane/gatehouse/internal/auth/infra/clock"
)

type ChallengeUseCase interface {
	Begin(ctx context.Context, req *BeginRequest) (*RedirectInstruction, error)
}

type BeginRequest struct {
	Provider  string
	ReturnURL *string
}

// RedirectInstruction tells the HTTP adapter where to send the user agent
// and which signed marker to attach so the callback can be correlated.
type RedirectInstruction struct {
	AuthorizationURL string
	Marker           string
}

type challengeHandler struct {
	providers map[string]ExternalProvider
	states    challenge.Repository
	marker    MarkerIssuer
	clock     clock.Clock
	logger    *slog.Logger
}

func NewChallengeHandler(
	providers map[string]ExternalProvider,
	states challenge.Repository,
	marker MarkerIssuer,
) ChallengeUseCase {
	return NewChallengeHandlerWithClock(providers, states, marker, &clock.RealClock{})
}

func NewChallengeHandlerWithClock(
	providers map[string]ExternalProvider,
	states challenge.Repository,
	marker MarkerIssuer,
	clk clock.Clock,
) ChallengeUseCase {
	return &challengeHandler{
		providers: providers,
		states:    states,
		marker:    marker,
		clock:     clk,
		logger:    slog.Default().WithGroup("auth").WithGroup("challenge"),
	}
}

// Begin constructs the challenge state for the named provider and returns
// the outbound redirect. The return URL is recorded untouched; validation is
// deferred until the callback, after authentication has succeeded.
func (h *challengeHandler) Begin(ctx context.Context, req *BeginRequest) (*RedirectInstruction, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	provider, ok := h.providers[req.Provider]
	if !ok {
		h.logger.Warn("challenge requested for unsupported provider", slog.String("provider", req.Provider))

		return nil, ErrProviderUnsupported
	}

	handle, err := randomToken()
	if err != nil {
		h.logger.Error("failed to generate state handle", slog.String("error", err.Error()))

		return nil, err
	}

	nonce, err := randomToken()
	if err != nil {
		h.logger.Error("failed to generate nonce", slog.String("error", err.Error()))

		return nil, err
	}

	codeVerifier, err := randomToken()
	if err != nil {
		h.logger.Error("failed to generate code verifier", slog.String("error", err.Error()))

		return nil, err
	}

	state, err := challenge.NewState(req.Provider, handle, nonce, codeVerifier, req.ReturnURL, h.clock.Now())
	if err != nil {
		h.logger.Error("failed to build challenge state", slog.String("error", err.Error()))

		return nil, err
	}

	if err := h.states.SaveState(ctx, state); err != nil {
		h.logger.Error("failed to persist challenge state", slog.String("error", err.Error()))

		return nil, err
	}

	marker, err := h.marker.IssueMarker(handle)
	if err != nil {
		h.logger.Error("failed to issue challenge marker", slog.String("error", err.Error()))

		return nil, err
	}

	authURL := provider.BuildAuthorizationURL(handle, nonce, codeChallenge(codeVerifier))

	h.logger.Debug("challenge issued", slog.String("provider", req.Provider))

	return &RedirectInstruction{
		AuthorizationURL: authURL,
		Marker:           marker,
	}, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func codeChallenge(verifier string) string {
	hash := sha256.Sum256([]byte(verifier))

	return base64.RawURLEncoding.EncodeToString(hash[:])
}
