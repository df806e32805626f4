package logout

import "errors"

var (
	ErrRequestNil           = errors.New("request is required")
	ErrSessionTokenRequired = errors.New("session token is required")
	ErrSessionTokenInvalid  = errors.New("session token is invalid")
)
