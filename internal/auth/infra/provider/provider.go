// Package provider adapts an OIDC relying-party client to the external
// provider contract consumed by the login flow. It owns the wire protocol:
// authorization URL construction, code exchange with PKCE, nonce checking,
// and normalization of the verified id_token into an ordered claim set.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/zitadel/oidc/v3/pkg/client/rp"
	httphelper "github.com/zitadel/oidc/v3/pkg/http"
	"github.com/zitadel/oidc/v3/pkg/oidc"
	"golang.org/x/oauth2"

	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
)

var (
	ErrNonceMismatch = errors.New("nonce validation failed")
	ErrNoIDToken     = errors.New("provider response carried no id_token")
)

type Config struct {
	ID           string
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
}

// RelyingParty wraps one configured upstream provider.
type RelyingParty struct {
	rp          rp.RelyingParty
	oauthConfig *oauth2.Config
	id          string
}

func New(ctx context.Context, cfg Config) (*RelyingParty, error) {
	relyingParty, err := rp.NewRelyingPartyOIDC(
		ctx,
		cfg.Issuer,
		cfg.ClientID,
		cfg.ClientSecret,
		cfg.RedirectURI,
		cfg.Scopes,
		rp.WithHTTPClient(httphelper.DefaultHTTPClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create relying party for %s: %w", cfg.ID, err)
	}

	return &RelyingParty{
		rp:          relyingParty,
		oauthConfig: relyingParty.OAuthConfig(),
		id:          cfg.ID,
	}, nil
}

func (p *RelyingParty) ID() string {
	return p.id
}

// BuildAuthorizationURL returns the provider authorization endpoint with
// state, nonce, and S256 code challenge attached.
func (p *RelyingParty) BuildAuthorizationURL(state, nonce, codeChallenge string) string {
	opts := []oauth2.AuthCodeOption{}

	if nonce != "" {
		opts = append(opts, oauth2.SetAuthURLParam("nonce", nonce))
	}

	if codeChallenge != "" {
		opts = append(opts,
			oauth2.SetAuthURLParam("code_challenge", codeChallenge),
			oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		)
	}

	return p.oauthConfig.AuthCodeURL(state, opts...)
}

// Exchange completes the code exchange and hands back the normalized result.
// The id_token signature is verified by the relying-party client; the nonce
// is checked here against the challenge-time value.
func (p *RelyingParty) Exchange(ctx context.Context, code, codeVerifier, nonce string) (*assertion.RawResult, error) {
	tokens, err := rp.CodeExchange[*oidc.IDTokenClaims](
		ctx,
		code,
		p.rp,
		rp.WithCodeVerifier(codeVerifier),
	)
	if err != nil {
		return nil, err
	}

	if tokens.IDToken == "" {
		return nil, ErrNoIDToken
	}

	if tokens.IDTokenClaims.Nonce != nonce {
		return nil, ErrNonceMismatch
	}

	claims, err := claimsFromIDToken(tokens.IDToken)
	if err != nil {
		return nil, fmt.Errorf("decode id_token claims: %w", err)
	}

	return &assertion.RawResult{
		Claims: claims,
		Token:  tokens.IDToken,
	}, nil
}

// EndSessionURL builds the provider logout URL for a retained id_token, or
// returns "" when the provider advertises no end-session endpoint.
func (p *RelyingParty) EndSessionURL(idTokenHint string) string {
	return buildEndSessionURL(p.rp.GetEndSessionEndpoint(), idTokenHint)
}

func buildEndSessionURL(endpoint, idTokenHint string) string {
	if endpoint == "" {
		return ""
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return ""
	}

	query := parsed.Query()
	if idTokenHint != "" {
		query.Set("id_token_hint", idTokenHint)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
