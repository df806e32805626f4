package repository

import (
	"context"
	"sync"

	"github.com/soratane/gatehouse/internal/auth/app/flow"
	"github.com/soratane/gatehouse/internal/auth/domain/assertion"
	"github.com/soratane/gatehouse/internal/auth/domain/user"
)

type linkKey struct {
	provider string
	subject  string
}

type inMemoryIdentityStore struct {
	mu     sync.Mutex
	byLink map[linkKey]user.ID
	byID   map[user.ID]*user.User
}

// NewInMemoryIdentityStore keeps users and provisioning links in process
// memory. Provisioning is insert-or-get under a single lock, so
// concurrent callbacks for the same external identity always converge on
// one local user.
func NewInMemoryIdentityStore() flow.IdentityStore {
	return &inMemoryIdentityStore{
		byLink: make(map[linkKey]user.ID),
		byID:   make(map[user.ID]*user.User),
	}
}

func (s *inMemoryIdentityStore) FindByExternalProvider(_ context.Context, provider, externalID string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byLink[linkKey{provider: provider, subject: externalID}]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	return s.byID[id], nil
}

func (s *inMemoryIdentityStore) AutoProvisionUser(_ context.Context, provider, externalID string, claims []assertion.Claim) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := linkKey{provider: provider, subject: externalID}
	if id, ok := s.byLink[key]; ok {
		return s.byID[id], nil
	}

	usr := user.CreateUser(user.DeriveUsername(claims, externalID), claims)

	s.byLink[key] = usr.ID()
	s.byID[usr.ID()] = usr

	return usr, nil
}
