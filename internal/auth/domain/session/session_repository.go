package session

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

type Repository interface {
	SaveSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, id ID) (*Session, error)
	DeleteSession(ctx context.Context, id ID) error
}
