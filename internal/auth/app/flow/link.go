package flow

import (
	"time"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
	"github.com/soratane/gatehouse/internal/auth/domain/session"
	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

// linkSession assembles the local session from a resolved account and the
// assertion that authenticated it: the provider session id claim is carried
// over for single sign-out, and the provider token is retained for later
// provider-side logout. Pure assembly; inputs are already validated.
func (h *callbackHandler) linkSession(asrt *assertion.Assertion, usr *user.User, now time.Time) (*session.Session, error) {
	var externalSID *string

	if sid, ok := asrt.SessionID(); ok {
		externalSID = &sid
	}

	var externalToken *string

	if token, ok := asrt.ExternalToken(); ok {
		externalToken = &token
	}

	return session.NewSession(
		usr.ID(),
		usr.Username(),
		asrt.Provider(),
		externalSID,
		externalToken,
		now,
		now.Add(h.sessionTTL),
	)
}
