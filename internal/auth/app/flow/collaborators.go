package flow

import (
	"context"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
	"github.com/soratane/gatehouse/internal/auth/domain/session"
	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

// IdentityStore looks up and provisions local accounts for external
// identities. AutoProvisionUser must be insert-or-get on the
// (provider, externalID) pair: concurrent duplicate callbacks may race it,
// and it either returns the winning user or identity.ErrLinkConflict, which
// the caller resolves by re-reading. It must never produce two local users
// for the same pair.
type IdentityStore interface {
	FindByExternalProvider(ctx context.Context, provider, externalID string) (*user.User, error)
	AutoProvisionUser(ctx context.Context, provider, externalID string, claims []assertion.Claim) (*user.User, error)
}

// InteractionValidator reports whether a return URL belongs to a known,
// still-open authorization interaction.
type InteractionValidator interface {
	IsValidReturnURL(ctx context.Context, returnURL string) bool
}

// EventSink records login events. Calls are best-effort: a sink failure must
// never abort the login that triggered it.
type EventSink interface {
	RecordLoginSuccess(ctx context.Context, provider, externalID, localSubjectID, username string) error
}

// ExternalProvider is the wire-level collaborator for one configured
// provider. Exchange completes the provider roundtrip and hands back a
// validated raw result; this package never parses provider responses itself.
type ExternalProvider interface {
	ID() string
	BuildAuthorizationURL(state, nonce, codeChallenge string) string
	Exchange(ctx context.Context, code, codeVerifier, nonce string) (*assertion.RawResult, error)
	EndSessionURL(idTokenHint string) string
}

// MarkerIssuer mints the signed marker accompanying a challenge to the user
// agent. The marker is opaque and tamper-evident; it carries only the state
// handle.
type MarkerIssuer interface {
	IssueMarker(handle string) (string, error)
}

// MarkerVerifier checks a callback marker and returns the state handle it
// was minted for.
type MarkerVerifier interface {
	VerifyMarker(token string) (string, error)
}

// SessionTokenGenerator signs the local session descriptor handed to the
// user agent.
type SessionTokenGenerator interface {
	Generate(s *session.Session) (string, error)
}
