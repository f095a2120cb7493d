package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aslearntocode/financial-health-sub000/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "finhealth:session:"

// RedisStore keeps sessions in Redis as JSON with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the Redis server at addr.
func NewRedisStore(addr string, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return NewRedisStoreWithClient(rdb, ttl)
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Ping checks the connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) Load(ctx context.Context, id string) ([]domain.SimulatedAction, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var actions []domain.SimulatedAction
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	if actions == nil {
		actions = []domain.SimulatedAction{}
	}
	return actions, nil
}

func (r *RedisStore) Save(ctx context.Context, id string, actions []domain.SimulatedAction) error {
	if actions == nil {
		actions = []domain.SimulatedAction{}
	}
	data, err := json.Marshal(actions)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", id, err)
	}
	if err := r.client.Set(ctx, keyPrefix+id, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}
