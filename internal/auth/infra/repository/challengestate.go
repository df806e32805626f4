package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soratane/gatehouse/internal/auth/domain/challenge"
)

type stateRecord struct {
	Provider     string    `json:"provider"`
	Handle       string    `json:"handle"`
	Nonce        string    `json:"nonce"`
	CodeVerifier string    `json:"code_verifier"`
	ReturnURL    *string   `json:"return_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type challengeStateRepository struct {
	client *redis.Client
}

// NewChallengeStateRepository stores challenge state in redis under the
// state handle, TTL-bounded to the state's lifetime. Consumption uses GETDEL
// so a handle can be redeemed exactly once.
func NewChallengeStateRepository(client *redis.Client) challenge.Repository {
	return &challengeStateRepository{client: client}
}

func (r *challengeStateRepository) SaveState(ctx context.Context, state *challenge.State) error {
	if state == nil {
		return ErrStateRequired
	}

	ttl := time.Until(state.ExpiresAt())
	if ttl <= 0 {
		return ErrStateAlreadyExpired
	}

	var returnURL *string
	if u, ok := state.ReturnURL(); ok {
		returnURL = &u
	}

	record := stateRecord{
		Provider:     state.Provider(),
		Handle:       state.Handle(),
		Nonce:        state.Nonce(),
		CodeVerifier: state.CodeVerifier(),
		ReturnURL:    returnURL,
		CreatedAt:    state.CreatedAt(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.key(state.Handle()), payload, ttl).Err()
}

func (r *challengeStateRepository) ConsumeStateByHandle(ctx context.Context, handle string) (*challenge.State, error) {
	raw, err := r.client.GetDel(ctx, r.key(handle)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, challenge.ErrStateNotFound
	}

	if err != nil {
		return nil, err
	}

	var record stateRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	return challenge.NewState(record.Provider, record.Handle, record.Nonce, record.CodeVerifier, record.ReturnURL, record.CreatedAt)
}

func (r *challengeStateRepository) key(handle string) string {
	return fmt.Sprintf("auth:challenge:%s", handle)
}
