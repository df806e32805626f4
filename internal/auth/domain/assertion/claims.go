package assertion

// Claim is one typed statement a provider made about the authenticated
// subject.
type Claim struct {
	Type  string
	Value string
}

const (
	ClaimSubject           = "sub"
	ClaimNameIdentifier    = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
	ClaimSessionID         = "sid"
	ClaimName              = "name"
	ClaimGivenName         = "given_name"
	ClaimFamilyName        = "family_name"
	ClaimPreferredUsername = "preferred_username"
	ClaimEmail             = "email"
)

// First returns the value of the first claim of the given type.
func First(claims []Claim, claimType string) (string, bool) {
	for _, c := range claims {
		if c.Type == claimType {
			return c.Value, true
		}
	}

	return "", false
}

// WithoutFirst returns the claim sequence with the first claim of the given
// type removed. The input slice is not modified.
func WithoutFirst(claims []Claim, claimType string) []Claim {
	out := make([]Claim, 0, len(claims))
	removed := false

	for _, c := range claims {
		if !removed && c.Type == claimType {
			removed = true
			continue
		}

		out = append(out, c)
	}

	return out
}
