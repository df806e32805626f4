// Package jwt signs the session descriptor surfaced to the user agent after
// a successful external login.
package jwt

import (
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"golang.org/x/crypto/sha3"

	"github.com/soratane/gatehouse/internal/auth/infra/clock"

	domainsession "github.com/soratane/gatehouse/internal/auth/domain/session"
)

var (
	ErrSecretRequired  = errors.New("session secret is required")
	ErrSessionRequired = errors.New("session is required")
	ErrTokenInvalid    = errors.New("session token is invalid")
)

type sessionClaims struct {
	jwt.Claims
	Username string `json:"name,omitempty"`
	Provider string `json:"idp,omitempty"`
}

type SessionTokenGenerator struct {
	key   []byte
	clock clock.Clock
}

func NewSessionTokenGenerator(secret string) (*SessionTokenGenerator, error) {
	return NewSessionTokenGeneratorWithClock(secret, &clock.RealClock{})
}

func NewSessionTokenGeneratorWithClock(secret string, clk clock.Clock) (*SessionTokenGenerator, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}

	sum := sha3.Sum256([]byte(secret))

	return &SessionTokenGenerator{
		key:   sum[:],
		clock: clk,
	}, nil
}

// Generate signs a token whose jti is the session id and whose sub is the
// local subject id. Expiry tracks the session record.
func (g *SessionTokenGenerator) Generate(s *domainsession.Session) (string, error) {
	if s == nil {
		return "", ErrSessionRequired
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: g.key},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create session signer: %w", err)
	}

	now := s.CreatedAt()
	if now.IsZero() {
		now = g.clock.Now()
	}

	claims := sessionClaims{
		Claims: jwt.Claims{
			ID:       s.ID().String(),
			Subject:  s.SubjectID().String(),
			IssuedAt: jwt.NewNumericDate(now),
			Expiry:   jwt.NewNumericDate(s.ExpiresAt()),
		},
		Username: s.Username(),
		Provider: s.Provider(),
	}

	token, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}

// Verify checks signature and expiry and returns the session id the token
// was signed for.
func (g *SessionTokenGenerator) Verify(token string) (string, error) {
	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.HS256})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims := &sessionClaims{}
	if err := parsed.Claims(g.key, claims); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if err := claims.Validate(jwt.Expected{Time: g.clock.Now()}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if claims.ID == "" {
		return "", fmt.Errorf("%w: session id missing", ErrTokenInvalid)
	}

	return claims.ID, nil
}
