package flow

import "errors"

var (
	// ErrExternalAuthFailed covers every structural failure of the inbound
	// authentication: provider-reported errors, missing or tampered markers,
	// and missing, replayed, or expired challenge state. Fatal for the
	// request; never retried.
	ErrExternalAuthFailed = errors.New("external authentication failed")

	ErrProviderUnsupported = errors.New("external provider is not configured")
	ErrRequestNil          = errors.New("request is required")
)
