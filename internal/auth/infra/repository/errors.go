package repository

import "errors"

var (
	ErrUserRequired          = errors.New("user is required")
	ErrStateRequired         = errors.New("challenge state is required")
	ErrStateAlreadyExpired   = errors.New("challenge state already expired")
	ErrSessionRequired       = errors.New("session is required")
	ErrSessionAlreadyExpired = errors.New("session already expired")
)
