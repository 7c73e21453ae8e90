package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopglass/go-shopglass/pkg/nav"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

const (
	// CacheKey is the storage key for the session record.
	CacheKey = "chatSessionCache"
	// LegacySessionKey carried a bare session id in an earlier generation;
	// Clear still removes it.
	LegacySessionKey = "chatSessionId"

	// TTL is the freshness window measured from the save timestamp.
	TTL = 30 * time.Minute
)

// Record is the persisted session snapshot. Messages carry no formation
// payloads; only the current formation survives a reload.
type Record struct {
	SessionID string            `json:"sessionId"`
	Messages  []Message         `json:"messages"`
	Formation *schema.Formation `json:"formation,omitempty"`
	Trail     []nav.Entry       `json:"trail,omitempty"`
	SavedAt   time.Time         `json:"savedAt"`
}

// Validator checks whether a session is still active server-side. A nil
// session with nil error means "not found".
type Validator interface {
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
}

// SessionInfo is the server's view of a session, used to rehydrate the chat
// log after a reload.
type SessionInfo struct {
	SessionID string    `json:"sessionId"`
	Status    string    `json:"status"`
	Messages  []Message `json:"messages,omitempty"`
}

// Active reports whether the server still considers the session usable.
func (s *SessionInfo) Active() bool {
	return s != nil && s.Status != "closed" && s.Status != "expired"
}

// Cache wraps a Store with the session record lifecycle: save after every
// exchange, load once at startup, TTL enforcement, and background
// validation.
type Cache struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheLogger sets the cache logger. The default is zap.NewNop().
func WithCacheLogger(logger *zap.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCache builds a cache over the given store.
func NewCache(store Store, options ...CacheOption) (*Cache, error) {
	if store == nil {
		return nil, fmt.Errorf("session: store is required")
	}
	c := &Cache{store: store, logger: zap.NewNop(), now: time.Now}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// Save persists the record, stripping formation payloads from the message
// log to bound storage size. Records without a session id are not saved.
func (c *Cache) Save(record Record) error {
	if record.SessionID == "" {
		return nil
	}

	light := make([]Message, len(record.Messages))
	for i, msg := range record.Messages {
		msg.Formation = nil
		light[i] = msg
	}
	record.Messages = light
	record.SavedAt = c.now()

	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}
	if err := c.store.Set(CacheKey, raw); err != nil {
		return fmt.Errorf("session: save record: %w", err)
	}
	return nil
}

// Load returns the cached record, or nil when none exists or the record is
// older than the TTL. Expired records are cleared from the store.
func (c *Cache) Load() (*Record, error) {
	raw, ok, err := c.store.Get(CacheKey)
	if err != nil {
		return nil, fmt.Errorf("session: load record: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		c.logger.Warn("corrupt session record dropped", zap.Error(err))
		_ = c.Clear()
		return nil, nil
	}
	if c.now().Sub(record.SavedAt) > TTL {
		if err := c.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &record, nil
}

// Clear removes the record and the legacy session-id key.
func (c *Cache) Clear() error {
	if err := c.store.Delete(CacheKey); err != nil {
		return fmt.Errorf("session: clear record: %w", err)
	}
	if err := c.store.Delete(LegacySessionKey); err != nil {
		return fmt.Errorf("session: clear legacy key: %w", err)
	}
	return nil
}

// Validate checks the loaded session against the server. It reports false
// only when the server definitively says the session is gone; transport
// failures keep trusting the cache so a connectivity blip does not wipe the
// user's state.
func (c *Cache) Validate(ctx context.Context, validator Validator, sessionID string) bool {
	if validator == nil || sessionID == "" {
		return true
	}
	info, err := validator.GetSession(ctx, sessionID)
	if err != nil {
		c.logger.Warn("session validation failed, trusting cache",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return true
	}
	return info.Active()
}
