package present

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis-backed session store.
type RedisConfig struct {
	// Addr is the Redis server address, e.g. "localhost:6379".
	Addr string

	// Password is optional.
	Password string

	// DB selects the Redis database number.
	DB int
}

// RedisStore is a Redis-backed session store for multi-instance
// deployments. Sessions and their join-code index expire via Redis TTLs,
// so Cleanup is a no-op.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and returns a session store.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func sessionKey(id string) string { return "present:session:" + id }
func codeKey(code string) string  { return "present:code:" + code }

// Get retrieves a session by ID.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if sess.IsExpired() {
		_ = s.Delete(ctx, sessionID)
		return nil, ErrExpired
	}
	return &sess, nil
}

// GetByCode resolves a join code to its session.
func (s *RedisStore) GetByCode(ctx context.Context, joinCode string) (*Session, error) {
	id, err := s.client.Get(ctx, codeKey(joinCode)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve join code: %w", err)
	}
	return s.Get(ctx, id)
}

// Set stores a session with a TTL matching its expiry.
func (s *RedisStore) Set(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return nil // already expired, nothing to store
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(sess.ID), data, ttl)
	pipe.Set(ctx, codeKey(sess.JoinCode), sess.ID, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Delete ends a session and frees its join code. It reads the raw
// payload without the expiry check: Get removes expired sessions
// through this path.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("parse session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.Del(ctx, codeKey(sess.JoinCode))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Cleanup is a no-op: Redis expires session keys itself.
func (s *RedisStore) Cleanup(ctx context.Context) error { return nil }

// Close releases the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
