// Package session keeps the per-browser SSO handshake state between the
// outbound redirect and the forum callback.
//
// Entries are read once: [Store.Pop] returns and erases them in one step,
// so a replayed callback finds nothing.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/models"
)

//go:generate mockgen -source=store.go -destination=../mock/session_store_mock.go -package=mock

var (
	ErrEmptySessionID = errors.New("empty browser session id")
	ErrCorruptSession = errors.New("corrupt session entry")
)

// Store holds one pending handshake per browser session.
type Store interface {
	// Save replaces the pending handshake of sessionID.
	Save(ctx context.Context, sessionID string, s models.SSOSession) error

	// Pop returns and erases the pending handshake of sessionID. ok is
	// false when nothing is pending or the entry expired.
	Pop(ctx context.Context, sessionID string) (s models.SSOSession, ok bool, err error)

	// Close releases the store's resources.
	Close() error
}

// NewStore returns a Redis store when cfg.RedisURL is set, otherwise an
// in-process memory store (single instance deployments only).
func NewStore(ctx context.Context, cfg config.Session, log *logger.Logger) (Store, error) {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	if cfg.RedisURL == "" {
		log.Warn().Str("func", "session.NewStore").Msg("no redis url configured, using in-memory session store")
		return NewMemoryStore(ttl), nil
	}

	store, err := NewRedisStore(ctx, cfg.RedisURL, ttl)
	if err != nil {
		return nil, fmt.Errorf("error creating redis session store: %w", err)
	}

	log.Info().Str("func", "session.NewStore").Dur("ttl", ttl).Msg("redis session store connected")
	return store, nil
}
