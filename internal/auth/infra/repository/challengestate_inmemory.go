package repository

import (
	"context"
	"sync"

	"github.com/soratane/gatehouse/internal/auth/domain/challenge"
)

type inMemoryChallengeStateRepository struct {
	mu       sync.Mutex
	byHandle map[string]*challenge.State
}

// NewInMemoryChallengeStateRepository keeps challenge state in process
// memory. Consumption deletes the entry under the lock, preserving the
// single-use guarantee.
func NewInMemoryChallengeStateRepository() challenge.Repository {
	return &inMemoryChallengeStateRepository{
		byHandle: make(map[string]*challenge.State),
	}
}

func (r *inMemoryChallengeStateRepository) SaveState(_ context.Context, state *challenge.State) error {
	if state == nil {
		return ErrStateRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byHandle[state.Handle()] = state

	return nil
}

func (r *inMemoryChallengeStateRepository) ConsumeStateByHandle(_ context.Context, handle string) (*challenge.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.byHandle[handle]
	if !ok {
		return nil, challenge.ErrStateNotFound
	}

	delete(r.byHandle, handle)

	return state, nil
}
