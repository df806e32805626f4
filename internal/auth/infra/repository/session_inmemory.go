package repository

import (
	"context"
	"sync"

	"github.com/soratane/gatehouse/internal/auth/domain/session"
)

type inMemorySessionRepository struct {
	mu   sync.Mutex
	byID map[session.ID]*session.Session
}

// NewInMemorySessionRepository keeps sessions in process memory.
func NewInMemorySessionRepository() session.Repository {
	return &inMemorySessionRepository{
		byID: make(map[session.ID]*session.Session),
	}
}

func (r *inMemorySessionRepository) SaveSession(_ context.Context, sess *session.Session) error {
	if sess == nil {
		return ErrSessionRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[sess.ID()] = sess

	return nil
}

func (r *inMemorySessionRepository) GetSession(_ context.Context, id session.ID) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.byID[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}

	return sess, nil
}

func (r *inMemorySessionRepository) DeleteSession(_ context.Context, id session.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)

	return nil
}
