package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/goldram69/gemdjsso/models"
)

const redisKeyPrefix = "gemdjsso:sso:"

// RedisStore keeps handshakes as JSON strings with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to redisURL and pings it.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

// Save implements [Store].
func (r *RedisStore) Save(ctx context.Context, sessionID string, s models.SSOSession) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, redisKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Pop implements [Store]. GET and DEL run in one MULTI/EXEC so two
// concurrent callbacks can't both read the entry.
func (r *RedisStore) Pop(ctx context.Context, sessionID string) (models.SSOSession, bool, error) {
	if sessionID == "" {
		return models.SSOSession{}, false, ErrEmptySessionID
	}

	key := redisKey(sessionID)

	var get *redis.StringCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.Get(ctx, key)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil && err != redis.Nil {
		return models.SSOSession{}, false, fmt.Errorf("redis pop failed: %w", err)
	}

	data, err := get.Bytes()
	if err == redis.Nil {
		return models.SSOSession{}, false, nil
	} else if err != nil {
		return models.SSOSession{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var s models.SSOSession
	if err := json.Unmarshal(data, &s); err != nil {
		return models.SSOSession{}, false, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	return s, true, nil
}

// Close implements [Store].
func (r *RedisStore) Close() error {
	return r.client.Close()
}
