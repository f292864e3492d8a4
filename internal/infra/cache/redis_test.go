//go:build e2e

package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"expense-matching/internal/infra/cache"
	"expense-matching/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)
	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestUserCacheRoundTrip(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	c, err := cache.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	users := cache.NewUserCache(c, time.Minute)

	_, err = users.GetUsers(ctx)
	require.ErrorIs(t, err, queries.ErrCacheMiss)

	want := []*queries.UserView{
		{GUID: "u-1", Name: "Alice", CreatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
		{GUID: "u-2", Name: "Bob", CreatedAt: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	require.NoError(t, users.SetUsers(ctx, want))

	got, err := users.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Bob", got[1].Name)
	assert.True(t, want[0].CreatedAt.Equal(got[0].CreatedAt))

	t.Run("corrupted entry is a miss", func(t *testing.T) {
		opt, err := redis.ParseURL(url)
		require.NoError(t, err)
		raw := redis.NewClient(opt)
		defer raw.Close()
		require.NoError(t, raw.Set(ctx, "users:all", "not json", time.Minute).Err())

		_, err = users.GetUsers(ctx)
		assert.ErrorIs(t, err, queries.ErrCacheMiss)
	})
}
