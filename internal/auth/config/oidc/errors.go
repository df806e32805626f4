package oidc

import "errors"

var (
	ErrProviderIDMissing      = errors.New("provider identifier is required")
	ErrClientIDMissing        = errors.New("client ID is required")
	ErrClientSecretMissing    = errors.New("client secret is required")
	ErrRedirectURIMissing     = errors.New("redirect URI is required")
	ErrRedirectSchemeMissing  = errors.New("redirect URI must include scheme (http:// or https://)")
	ErrRedirectSchemeInvalid  = errors.New("redirect URI scheme must be http or https")
	ErrScopesMissing          = errors.New("at least one scope is required")
	ErrScopeOpenIDRequired    = errors.New("'openid' scope is required for OIDC")
	ErrIssuerURLMissing       = errors.New("issuer URL is required")
	ErrIssuerURLSchemeInvalid = errors.New("issuer URL must use https")
	ErrNoProvidersConfigured  = errors.New("no providers configured")
	ErrProviderIDMismatch     = errors.New("provider identifier mismatch")
)
