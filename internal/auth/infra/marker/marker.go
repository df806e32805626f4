// Package marker issues and verifies the signed token that ties the
// challenge leg of an external login to its callback leg. The token carries
// only the random state handle; it is opaque to both the user agent and the
// external provider, and any modification fails signature verification.
package marker

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"golang.org/x/crypto/sha3"

	"github.com/soratane/gatehouse/internal/auth/infra/clock"
)

var (
	ErrSecretRequired = errors.New("marker secret is required")
	ErrTokenEmpty     = errors.New("marker token is empty")
	ErrTokenInvalid   = errors.New("marker token is invalid")
)

type markerClaims struct {
	jwt.Claims
	Handle string `json:"hdl"`
}

// Signer mints and verifies marker tokens with an HMAC key derived from the
// configured secret.
type Signer struct {
	key   []byte
	ttl   time.Duration
	clock clock.Clock
}

func NewSigner(secret string, ttl time.Duration) (*Signer, error) {
	return NewSignerWithClock(secret, ttl, &clock.RealClock{})
}

func NewSignerWithClock(secret string, ttl time.Duration, clk clock.Clock) (*Signer, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}

	return &Signer{
		key:   deriveHMACKey(secret),
		ttl:   ttl,
		clock: clk,
	}, nil
}

// IssueMarker signs a short-lived token for the given state handle.
func (s *Signer) IssueMarker(handle string) (string, error) {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: s.key},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create marker signer: %w", err)
	}

	now := s.clock.Now()
	claims := markerClaims{
		Claims: jwt.Claims{
			IssuedAt: jwt.NewNumericDate(now),
			Expiry:   jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Handle: handle,
	}

	token, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to sign marker: %w", err)
	}

	return token, nil
}

// VerifyMarker checks signature and expiry, returning the state handle the
// marker was minted for.
func (s *Signer) VerifyMarker(token string) (string, error) {
	if token == "" {
		return "", ErrTokenEmpty
	}

	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims := &markerClaims{}
	if err := parsed.Claims(s.key, claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if err := claims.Validate(jwt.Expected{Time: s.clock.Now()}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if claims.Handle == "" {
		return "", fmt.Errorf("%w: handle missing", ErrTokenInvalid)
	}

	return claims.Handle, nil
}

func deriveHMACKey(secret string) []byte {
	sum := sha3.Sum256([]byte(secret))

	return sum[:]
}
