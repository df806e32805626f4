package provider

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
)

// wellKnownClaimOrder fixes the position of profile claims in the emitted
// sequence so downstream lookups see a deterministic set regardless of JSON
// map iteration order.
var wellKnownClaimOrder = []string{
	assertion.ClaimSubject,
	assertion.ClaimName,
	assertion.ClaimGivenName,
	assertion.ClaimFamilyName,
	assertion.ClaimPreferredUsername,
	assertion.ClaimEmail,
	assertion.ClaimSessionID,
}

// protocolClaims are transport-level fields of the id_token, not identity
// statements; they are dropped during normalization.
var protocolClaims = map[string]struct{}{
	"iss":       {},
	"aud":       {},
	"exp":       {},
	"iat":       {},
	"nbf":       {},
	"auth_time": {},
	"nonce":     {},
	"at_hash":   {},
	"c_hash":    {},
	"azp":       {},
	"amr":       {},
	"acr":       {},
}

// claimsFromIDToken decodes the payload of an already-verified id_token into
// an ordered claim sequence: well-known profile claims first, the remainder
// sorted by type.
func claimsFromIDToken(idToken string) ([]assertion.Claim, error) {
	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed token: expected 3 segments, got %d", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	claims := make([]assertion.Claim, 0, len(decoded))
	seen := make(map[string]struct{}, len(decoded))

	for _, claimType := range wellKnownClaimOrder {
		if value, ok := decoded[claimType]; ok {
			claims = append(claims, assertion.Claim{Type: claimType, Value: stringifyClaim(value)})
			seen[claimType] = struct{}{}
		}
	}

	rest := make([]string, 0, len(decoded))

	for claimType := range decoded {
		if _, done := seen[claimType]; done {
			continue
		}

		if _, skip := protocolClaims[claimType]; skip {
			continue
		}

		rest = append(rest, claimType)
	}

	sort.Strings(rest)

	for _, claimType := range rest {
		claims = append(claims, assertion.Claim{Type: claimType, Value: stringifyClaim(decoded[claimType])})
	}

	return claims, nil
}

func stringifyClaim(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}

		return "false"
	case float64:
		// JSON numbers; keep integers unsuffixed.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}

		return fmt.Sprintf("%g", v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}

		return string(raw)
	}
}
