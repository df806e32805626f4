// Package testutil starts throwaway backing stores for integration tests.
// Tests are skipped, not failed, when no container runtime is available.
package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	postgresmodule "github.com/testcontainers/testcontainers-go/modules/postgres"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	redisImage    = "redis:8-alpine"
	postgresImage = "postgres:18-alpine"
)

// skipOnPanic converts a container-runtime panic into a test skip. The
// testcontainers provider discovery panics when docker is missing entirely.
func skipOnPanic(t *testing.T, store string) {
	if r := recover(); r != nil {
		t.Skipf("failed to start %s container (docker unavailable?): %v", store, r)
	}
}

// SetupRedisContainer runs a disposable redis instance and returns a client
// connected to it plus a cleanup func the caller must defer.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()
	defer skipOnPanic(t, "redis")

	container, err := redismodule.Run(ctx, redisImage)
	if err != nil {
		t.Skipf("failed to start redis container (docker unavailable?): %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: endpoint})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// SetupPostgresContainer runs a disposable postgres instance and returns a
// gorm handle plus a cleanup func the caller must defer. Schema migration is
// left to the caller; each test migrates only the models it touches.
func SetupPostgresContainer(ctx context.Context, t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	defer skipOnPanic(t, "postgres")

	container, err := postgresmodule.Run(ctx,
		postgresImage,
		postgresmodule.WithDatabase("gatehouse_test"),
		postgresmodule.WithUsername("gatehouse"),
		postgresmodule.WithPassword("gatehouse"),
		postgresmodule.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("failed to start postgres container (docker unavailable?): %v", err)
	}

	connStr, err := container.ConnectionString(ctx)
	if err != nil {
		t.Skipf("failed to get postgres connection string: %v", err)
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		t.Skipf("failed to connect to postgres: %v", err)
	}

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	}

	return db, cleanup
}
