package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
	"github.com/soratane/gatehouse/internal/auth/domain/challenge"
	"github.com/soratane/gatehouse/internal/auth/domain/session"
	"github.com/soratane/gatehouse/internal/auth/infra/clock"
)

type CallbackUseCase interface {
	Complete(ctx context.Context, req *CallbackRequest) (*CallbackResult, error)
}

type CallbackRequest struct {
	State         string
	Code          string
	Marker        string
	ProviderError string
}

type CallbackResult struct {
	RedirectURL      string
	SessionToken     string
	SessionID        session.ID
	SessionExpiresAt time.Time
}

type callbackHandler struct {
	providers    map[string]ExternalProvider
	states       challenge.Repository
	identities   IdentityStore
	sessions     session.Repository
	interactions InteractionValidator
	events       EventSink
	marker       MarkerVerifier
	tokens       SessionTokenGenerator
	sessionTTL   time.Duration
	origin       *url.URL
	clock        clock.Clock
	logger       *slog.Logger
}

func NewCallbackHandler(
	providers map[string]ExternalProvider,
	states challenge.Repository,
	identities IdentityStore,
	sessions session.Repository,
	interactions InteractionValidator,
	events EventSink,
	marker MarkerVerifier,
	tokens SessionTokenGenerator,
	sessionTTL time.Duration,
	origin *url.URL,
) CallbackUseCase {
	return NewCallbackHandlerWithClock(providers, states, identities, sessions, interactions, events, marker, tokens, sessionTTL, origin, &clock.RealClock{})
}

func NewCallbackHandlerWithClock(
	providers map[string]ExternalProvider,
	states challenge.Repository,
	identities IdentityStore,
	sessions session.Repository,
	interactions InteractionValidator,
	events EventSink,
	marker MarkerVerifier,
	tokens SessionTokenGenerator,
	sessionTTL time.Duration,
	origin *url.URL,
	clk clock.Clock,
) CallbackUseCase {
	return &callbackHandler{
		providers:    providers,
		states:       states,
		identities:   identities,
		sessions:     sessions,
		interactions: interactions,
		events:       events,
		marker:       marker,
		tokens:       tokens,
		sessionTTL:   sessionTTL,
		origin:       origin,
		clock:        clk,
		logger:       slog.Default().WithGroup("auth").WithGroup("callback"),
	}
}

// Complete drives one callback from the raw provider response to the final
// redirect decision. It runs a single forward pass; any failure is terminal
// for the request and leaves no partial identity state behind.
func (h *callbackHandler) Complete(ctx context.Context, req *CallbackRequest) (*CallbackResult, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	if req.ProviderError != "" {
		h.logger.Warn("provider reported authentication failure", slog.String("error", req.ProviderError))

		return nil, fmt.Errorf("%w: provider returned %q", ErrExternalAuthFailed, req.ProviderError)
	}

	if req.Marker == "" {
		h.logger.Warn("callback arrived without challenge marker")

		return nil, fmt.Errorf("%w: challenge marker missing", ErrExternalAuthFailed)
	}

	handle, err := h.marker.VerifyMarker(req.Marker)
	if err != nil {
		h.logger.Warn("challenge marker rejected", slog.String("error", err.Error()))

		return nil, fmt.Errorf("%w: %v", ErrExternalAuthFailed, err)
	}

	if handle != req.State {
		h.logger.Warn("state parameter does not match challenge marker")

		return nil, fmt.Errorf("%w: state mismatch", ErrExternalAuthFailed)
	}

	state, err := h.states.ConsumeStateByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, challenge.ErrStateNotFound) {
			h.logger.Warn("challenge state missing or already consumed")

			return nil, fmt.Errorf("%w: %v", ErrExternalAuthFailed, err)
		}

		h.logger.Error("failed to load challenge state", slog.String("error", err.Error()))

		return nil, err
	}

	now := h.clock.Now()

	if state.IsExpired(now) {
		h.logger.Warn("callback for expired challenge", slog.String("provider", state.Provider()))

		return nil, fmt.Errorf("%w: %v", ErrExternalAuthFailed, challenge.ErrStateExpired)
	}

	provider, ok := h.providers[state.Provider()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderUnsupported, state.Provider())
	}

	raw, err := provider.Exchange(ctx, req.Code, state.CodeVerifier(), state.Nonce())
	if err != nil {
		h.logger.Warn("provider exchange failed", slog.String("provider", state.Provider()), slog.String("error", err.Error()))

		return nil, fmt.Errorf("%w: %v", ErrExternalAuthFailed, err)
	}

	// The provider name comes from challenge-time state, never from the
	// remote response.
	asrt, err := assertion.Extract(raw, state.Provider())
	if err != nil {
		h.logger.Warn("assertion extraction failed", slog.String("provider", state.Provider()), slog.String("error", err.Error()))

		return nil, err
	}

	usr, err := h.resolveUser(ctx, asrt)
	if err != nil {
		h.logger.Error("account resolution failed", slog.String("provider", asrt.Provider()), slog.String("error", err.Error()))

		return nil, err
	}

	sess, err := h.linkSession(asrt, usr, now)
	if err != nil {
		return nil, err
	}

	if err := h.sessions.SaveSession(ctx, sess); err != nil {
		h.logger.Error("failed to persist session", slog.String("error", err.Error()))

		return nil, err
	}

	token, err := h.tokens.Generate(sess)
	if err != nil {
		h.logger.Error("failed to sign session token", slog.String("error", err.Error()))

		return nil, err
	}

	if err := h.events.RecordLoginSuccess(ctx, asrt.Provider(), asrt.SubjectID(), usr.ID().String(), usr.Username()); err != nil {
		// Best-effort: a sink outage must not fail an authenticated login.
		h.logger.Warn("failed to record login event", slog.String("error", err.Error()))
	}

	h.logger.Info("external login completed",
		slog.String("provider", asrt.Provider()),
		slog.String("subject", usr.ID().String()),
	)

	return &CallbackResult{
		RedirectURL:      h.decideRedirect(ctx, state),
		SessionToken:     token,
		SessionID:        sess.ID(),
		SessionExpiresAt: sess.ExpiresAt(),
	}, nil
}
