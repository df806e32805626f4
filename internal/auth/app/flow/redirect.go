package flow

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/soratane/gatehouse/internal/auth/domain/challenge"
)

// DefaultRedirect is where rejected or absent return URLs land.
// Authentication has already succeeded at this point, so rejection degrades
// to the application root instead of erroring.
const DefaultRedirect = "/"

// decideRedirect validates the challenge-time return URL. It is accepted
// when the interaction validator recognizes it, or when it is a local path,
// or when it shares this system's configured origin. Anything else falls
// back to DefaultRedirect.
func (h *callbackHandler) decideRedirect(ctx context.Context, state *challenge.State) string {
	target, ok := state.ReturnURL()
	if !ok || target == "" {
		return DefaultRedirect
	}

	if h.interactions != nil && h.interactions.IsValidReturnURL(ctx, target) {
		return target
	}

	if isLocalURL(target) {
		return target
	}

	if h.origin != nil && sameOrigin(target, h.origin) {
		return target
	}

	h.logger.Warn("rejected return url, falling back to root", slog.String("return_url", target))

	return DefaultRedirect
}

// isLocalURL accepts only a path within this host: a single leading slash,
// no scheme, no authority. "//host" and "/\host" are protocol-relative
// escapes some user agents follow off-site, so they are rejected.
func isLocalURL(raw string) bool {
	if !strings.HasPrefix(raw, "/") {
		return false
	}

	if strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return parsed.Scheme == "" && parsed.Host == ""
}

func sameOrigin(raw string, origin *url.URL) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return parsed.Scheme == origin.Scheme && strings.EqualFold(parsed.Host, origin.Host)
}
