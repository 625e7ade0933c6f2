// Package testutils provides Redis helpers for repository tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-statgen/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, mr := CreateTestRedisServer(t)
	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}

// CreateTestRedisServer is CreateTestRedisClient for tests that need to
// drive the server itself, for example to fast-forward TTLs. The server is
// closed when the test ends.
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr
}
