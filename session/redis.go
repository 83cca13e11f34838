package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Interface compliance check.
var _ Store = (*RedisStore)(nil)

// RedisStore persists session state as JSON under "session:<id>" with a TTL
// so abandoned sessions expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection with a short
// ping. Returns an error if Redis is unreachable so the caller can decide
// whether to fall back to an in-memory store.
func NewRedisStore(addr, password string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// Load fetches the session state. Any failure (missing key, connection
// error, corrupt payload) is logged and yields a fresh State.
func (rs *RedisStore) Load(ctx context.Context, sessionID string) State {
	data, err := rs.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("session %s: load failed, starting fresh: %v", sessionID, err)
		}
		return State{}
	}

	var state State
	if err := sonic.Unmarshal(data, &state); err != nil {
		log.Printf("session %s: corrupt state, starting fresh: %v", sessionID, err)
		return State{}
	}
	return state
}

// Save writes the session state and refreshes its TTL.
func (rs *RedisStore) Save(ctx context.Context, sessionID string, state State) error {
	data, err := sonic.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	if err := rs.client.Set(ctx, keyPrefix+sessionID, data, rs.ttl).Err(); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

// Client exposes the underlying connection so other components (the menu
// provider) can share it.
func (rs *RedisStore) Client() *redis.Client {
	return rs.client
}

// Close releases the Redis connection.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
