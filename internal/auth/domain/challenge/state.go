package challenge

import "time"

// StateExpiration bounds how long a pending challenge may wait for its
// callback.
const StateExpiration = 10 * time.Minute

// State is the transient record of one pending login challenge. It lives
// from the outbound provider redirect until the callback consumes it; the
// handle doubles as the OAuth state parameter.
type State struct {
	provider     string
	handle       string
	nonce        string
	codeVerifier string
	returnURL    *string
	createdAt    time.Time
}

func NewState(provider, handle, nonce, codeVerifier string, returnURL *string, createdAt time.Time) (*State, error) {
	if provider == "" {
		return nil, ErrProviderEmpty
	}

	if handle == "" {
		return nil, ErrHandleEmpty
	}

	if nonce == "" {
		return nil, ErrNonceEmpty
	}

	if codeVerifier == "" {
		return nil, ErrCodeVerifierEmpty
	}

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if returnURL != nil {
		v := *returnURL
		returnURL = &v
	}

	return &State{
		provider:     provider,
		handle:       handle,
		nonce:        nonce,
		codeVerifier: codeVerifier,
		returnURL:    returnURL,
		createdAt:    createdAt,
	}, nil
}

func (s *State) Provider() string {
	return s.provider
}

func (s *State) Handle() string {
	return s.handle
}

func (s *State) Nonce() string {
	return s.nonce
}

func (s *State) CodeVerifier() string {
	return s.codeVerifier
}

// ReturnURL returns the post-login destination the client asked for, when
// one was recorded.
func (s *State) ReturnURL() (string, bool) {
	if s.returnURL == nil {
		return "", false
	}

	return *s.returnURL, true
}

func (s *State) CreatedAt() time.Time {
	return s.createdAt
}

func (s *State) ExpiresAt() time.Time {
	return s.createdAt.Add(StateExpiration)
}

func (s *State) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt())
}
