package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// InteractionRegistry tracks the return URLs of in-flight authorization
// interactions. The interaction layer registers a URL when it starts a flow;
// the callback consults the registry before redirecting to it. Lookup fails
// closed: a redis outage means "not recognized", which degrades the redirect
// to the application root rather than opening a redirect hole.
type InteractionRegistry struct {
	client *redis.Client
	logger *slog.Logger
}

func NewInteractionRegistry(client *redis.Client) *InteractionRegistry {
	return &InteractionRegistry{
		client: client,
		logger: slog.Default().WithGroup("auth").WithGroup("interactions"),
	}
}

func (r *InteractionRegistry) RegisterInteraction(ctx context.Context, returnURL string, ttl time.Duration) error {
	return r.client.Set(ctx, r.key(returnURL), "1", ttl).Err()
}

func (r *InteractionRegistry) IsValidReturnURL(ctx context.Context, returnURL string) bool {
	count, err := r.client.Exists(ctx, r.key(returnURL)).Result()
	if err != nil {
		r.logger.Warn("interaction lookup failed", slog.String("error", err.Error()))

		return false
	}

	return count > 0
}

func (r *InteractionRegistry) key(returnURL string) string {
	sum := sha256.Sum256([]byte(returnURL))

	return fmt.Sprintf("auth:interaction:%s", hex.EncodeToString(sum[:]))
}
