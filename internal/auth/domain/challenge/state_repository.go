package challenge

import "context"

// Repository stores pending challenge state keyed by handle.
type Repository interface {
	SaveState(ctx context.Context, state *State) error

	// ConsumeStateByHandle redeems the state for a handle. A handle can be
	// redeemed at most once; subsequent calls return ErrStateNotFound.
	ConsumeStateByHandle(ctx context.Context, handle string) (*State, error)
}
