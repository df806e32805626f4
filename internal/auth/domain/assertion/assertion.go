package assertion

// RawResult is the unprocessed outcome of a provider exchange: the claim
// sequence decoded from the provider's token plus the token itself.
type RawResult struct {
	Claims []Claim
	Token  string
}

// Assertion is the normalized identity statement extracted from a provider
// result: the external subject, the remaining claim set, and the optional
// session correlation and logout material.
type Assertion struct {
	provider      string
	subjectID     string
	claims        []Claim
	sessionID     *string
	externalToken *string
}

// Extract normalizes a raw provider result. The subject is the "sub" claim,
// falling back to the WS-Federation name identifier; whichever matched is
// removed from the claim set so it is stored exactly once. A provider
// session id ("sid") stays in the claim set and is additionally surfaced for
// session correlation.
func Extract(raw *RawResult, provider string) (*Assertion, error) {
	if raw == nil {
		return nil, ErrResultRequired
	}

	if provider == "" {
		return nil, ErrProviderEmpty
	}

	subjectID, ok := First(raw.Claims, ClaimSubject)
	if !ok {
		subjectID, ok = First(raw.Claims, ClaimNameIdentifier)
	}

	if !ok || subjectID == "" {
		return nil, ErrMissingSubjectIdentifier
	}

	var chosen string
	if sub, found := First(raw.Claims, ClaimSubject); found && sub == subjectID {
		chosen = ClaimSubject
	} else {
		chosen = ClaimNameIdentifier
	}

	claims := WithoutFirst(raw.Claims, chosen)

	var sessionID *string

	if sid, found := First(claims, ClaimSessionID); found && sid != "" {
		sessionID = &sid
	}

	var externalToken *string

	if raw.Token != "" {
		token := raw.Token
		externalToken = &token
	}

	return &Assertion{
		provider:      provider,
		subjectID:     subjectID,
		claims:        claims,
		sessionID:     sessionID,
		externalToken: externalToken,
	}, nil
}

func (a *Assertion) Provider() string {
	return a.provider
}

func (a *Assertion) SubjectID() string {
	return a.subjectID
}

func (a *Assertion) Claims() []Claim {
	out := make([]Claim, len(a.claims))
	copy(out, a.claims)

	return out
}

// SessionID returns the provider session identifier, when asserted.
func (a *Assertion) SessionID() (string, bool) {
	if a.sessionID == nil {
		return "", false
	}

	return *a.sessionID, true
}

// ExternalToken returns the provider token retained for provider-side
// logout, when one was issued.
func (a *Assertion) ExternalToken() (string, bool) {
	if a.externalToken == nil {
		return "", false
	}

	return *a.externalToken, true
}
