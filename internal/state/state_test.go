package state_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/entoni-coder/telegrambot/internal/state"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s state.Store) {
	t.Helper()
	ctx := context.Background()
	const userID = int64(987654321)

	got, err := s.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, state.Idle, got)

	require.NoError(t, s.Set(ctx, userID, state.Register))
	got, err = s.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, state.Register, got)

	require.NoError(t, s.Set(ctx, userID, state.BuySpins))
	got, err = s.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, state.BuySpins, got)

	require.NoError(t, s.Set(ctx, userID, state.Idle))
	got, err = s.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, state.Idle, got)

	require.NoError(t, s.Set(ctx, userID, state.Register))
	require.NoError(t, s.Clear(ctx, userID))
	got, err = s.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, state.Idle, got)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, state.NewMemory())
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s, err := state.NewRedis(ctx, &redis.Options{Addr: addr}, time.Minute)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer s.Close()

	exerciseStore(t, s)
}
