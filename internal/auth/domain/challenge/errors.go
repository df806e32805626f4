package challenge

import "errors"

var (
	ErrProviderEmpty     = errors.New("provider must be specified")
	ErrHandleEmpty       = errors.New("state handle must be specified")
	ErrNonceEmpty        = errors.New("nonce must be specified")
	ErrCodeVerifierEmpty = errors.New("code verifier must be specified")
	ErrStateNotFound     = errors.New("challenge state not found")
	ErrStateExpired      = errors.New("challenge state expired")
)
