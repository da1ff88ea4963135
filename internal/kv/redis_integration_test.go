//go:build integration

package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return host + ":" + port.Port()
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	addr := startRedis(t)

	client, err := NewRedisClient(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client, "test:")

	_, err = s.Get(ctx, KeyFeaturedStores)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyFeaturedStores, []byte(`[{"storeId":1}]`)))
	got, err := s.Get(ctx, KeyFeaturedStores)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"storeId":1}]`, string(got))

	require.NoError(t, s.Delete(ctx, KeyFeaturedStores))
	_, err = s.Get(ctx, KeyFeaturedStores)
	assert.ErrorIs(t, err, ErrNotFound)
}
