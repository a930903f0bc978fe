package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyConversation = "conversation:%d"

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to redis and fails fast when it is not reachable.
func NewRedis(ctx context.Context, opts *redis.Options, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, userID int64) (State, error) {
	v, err := r.client.Get(ctx, fmt.Sprintf(keyConversation, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return Idle, nil
	}
	if err != nil {
		return Idle, fmt.Errorf("error redis get state: %w", err)
	}
	return State(v), nil
}

func (r *Redis) Set(ctx context.Context, userID int64, s State) error {
	if s == Idle {
		return r.Clear(ctx, userID)
	}
	if err := r.client.Set(ctx, fmt.Sprintf(keyConversation, userID), string(s), r.ttl).Err(); err != nil {
		return fmt.Errorf("error redis set state: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, fmt.Sprintf(keyConversation, userID)).Err(); err != nil {
		return fmt.Errorf("error redis clear state: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
