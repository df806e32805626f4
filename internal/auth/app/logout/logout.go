package logout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/soratane/gatehouse/internal/auth/app/flow"
	domainsession "github.com/soratane/gatehouse/internal/auth/domain/session"
)

// TokenVerifier validates a session token and extracts the session id it
// was signed for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type LogoutRequest struct {
	SessionToken string
}

type LogoutResult struct {
	Success bool

	// ProviderLogoutURL is set when the session retained an external token
	// and the provider exposes an end-session endpoint; the adapter should
	// send the user agent there to terminate the provider-side session too.
	ProviderLogoutURL string
}

type LogoutUseCase interface {
	Logout(ctx context.Context, req *LogoutRequest) (*LogoutResult, error)
}

type logoutHandler struct {
	sessions      domainsession.Repository
	providers     map[string]flow.ExternalProvider
	tokenVerifier TokenVerifier
	logger        *slog.Logger
}

func NewLogoutHandler(
	sessions domainsession.Repository,
	providers map[string]flow.ExternalProvider,
	tokenVerifier TokenVerifier,
) LogoutUseCase {
	return &logoutHandler{
		sessions:      sessions,
		providers:     providers,
		tokenVerifier: tokenVerifier,
		logger:        slog.Default().WithGroup("auth").WithGroup("logout"),
	}
}

func (h *logoutHandler) Logout(ctx context.Context, req *LogoutRequest) (*LogoutResult, error) {
	if req == nil {
		return nil, ErrRequestNil
	}

	if req.SessionToken == "" {
		h.logger.Warn("logout called with empty token")

		return nil, ErrSessionTokenRequired
	}

	rawSessionID, err := h.tokenVerifier.Verify(req.SessionToken)
	if err != nil {
		h.logger.Info("session token verification failed", slog.String("error", err.Error()))

		return nil, fmt.Errorf("%w: %v", ErrSessionTokenInvalid, err)
	}

	sessionID, err := domainsession.ParseID(rawSessionID)
	if err != nil {
		h.logger.Info("session id in token is invalid", slog.String("error", err.Error()))

		return nil, fmt.Errorf("%w: %v", ErrSessionTokenInvalid, err)
	}

	sess, err := h.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainsession.ErrSessionNotFound) {
			// Already gone; logout is idempotent.
			return &LogoutResult{Success: true}, nil
		}

		h.logger.Error("failed to load session", slog.String("error", err.Error()))

		return nil, err
	}

	if err := h.sessions.DeleteSession(ctx, sessionID); err != nil {
		h.logger.Warn("failed to delete session", slog.String("error", err.Error()))

		return nil, fmt.Errorf("failed to logout: %w", err)
	}

	result := &LogoutResult{Success: true}

	if token, ok := sess.ExternalToken(); ok {
		if provider, found := h.providers[sess.Provider()]; found {
			result.ProviderLogoutURL = provider.EndSessionURL(token)
		}
	}

	h.logger.Info("session terminated",
		slog.String("provider", sess.Provider()),
		slog.Bool("provider_logout", result.ProviderLogoutURL != ""),
	)

	return result, nil
}
