package nav

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/shopglass/go-shopglass/pkg/fill"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

var (
	// ErrQueryInFlight rejects a second query while one is outstanding.
	ErrQueryInFlight = errors.New("nav: query already in flight")
	// ErrStaleResponse marks a query response that arrived after an
	// intervening navigation action and was discarded.
	ErrStaleResponse = errors.New("nav: stale query response discarded")
)

// QueryResult is the server's answer to a query submission. Adjacent
// templates and entity records ride along so the next expand can resolve
// locally.
type QueryResult struct {
	SessionID string                       `json:"sessionId"`
	Formation *schema.Formation            `json:"formation"`
	Templates map[string]*schema.Formation `json:"adjacentTemplates,omitempty"`
	Entities  map[string][]schema.Entity   `json:"entities,omitempty"`
	Timing    map[string]any               `json:"timing,omitempty"`
}

// NavResult is the server's answer to an expand or back round trip. The
// stack fields are legacy bookkeeping from when the server owned navigation;
// the client is authoritative now and only consumes Formation.
type NavResult struct {
	Formation *schema.Formation `json:"formation"`
	ViewMode  string            `json:"viewMode,omitempty"`
	Focused   string            `json:"focused,omitempty"`
	StackSize int               `json:"stackSize,omitempty"`
	CanGoBack bool              `json:"canGoBack,omitempty"`
}

// Client is the server boundary the engine navigates through. Sync variants
// are fire-and-forget notifications for actions the client already resolved
// locally.
type Client interface {
	Query(ctx context.Context, sessionID, query string) (*QueryResult, error)
	Expand(ctx context.Context, sessionID, entityType, entityID string) (*NavResult, error)
	SyncExpand(ctx context.Context, sessionID, entityType, entityID string) error
	SyncBack(ctx context.Context, sessionID string) error
}

// Engine drives navigation over a trail. All trail mutations happen under
// the engine's lock and bump a sequence number; responses from round trips
// that started under an older sequence are discarded as stale.
type Engine struct {
	client Client
	logger *zap.Logger

	mu        sync.Mutex
	trail     Model
	sessionID string
	seq       uint64
	inFlight  bool

	templates map[string]*schema.Formation
	entities  map[string]map[string]schema.Entity
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger. The default is zap.NewNop().
func WithLogger(logger *zap.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithModel swaps the navigation history implementation.
func WithModel(model Model) EngineOption {
	return func(e *Engine) {
		if model != nil {
			e.trail = model
		}
	}
}

// NewEngine constructs an engine over the given server boundary.
func NewEngine(client Client, options ...EngineOption) (*Engine, error) {
	if client == nil {
		return nil, fmt.Errorf("nav: client is required")
	}
	e := &Engine{
		client:    client,
		logger:    zap.NewNop(),
		trail:     NewTrail(),
		templates: make(map[string]*schema.Formation),
		entities:  make(map[string]map[string]schema.Entity),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// SessionID is the latest known session identifier, read at call time.
func (e *Engine) SessionID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionID
}

// SetSessionID records the session identifier for subsequent calls.
func (e *Engine) SetSessionID(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessionID = id
}

// Query submits user text and appends the resulting formation to the trail.
// There is no optimistic path: the server decides the data, so the trail
// mutates only after the response returns. A response that lands after an
// intervening expand or back is stale and discarded.
func (e *Engine) Query(ctx context.Context, text string) (*schema.Formation, error) {
	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return nil, ErrQueryInFlight
	}
	e.inFlight = true
	sessionID := e.sessionID
	sentSeq := e.seq
	e.mu.Unlock()

	result, err := e.client.Query(ctx, sessionID, text)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight = false

	if err != nil {
		return nil, fmt.Errorf("nav: query: %w", err)
	}
	if result == nil {
		return nil, nil
	}
	if result.SessionID != "" {
		e.sessionID = result.SessionID
	}
	e.cacheLocked(result)
	if e.seq != sentSeq {
		e.logger.Warn("discarding stale query response",
			zap.Uint64("sent_seq", sentSeq),
			zap.Uint64("current_seq", e.seq))
		return nil, ErrStaleResponse
	}
	if result.Formation.Empty() {
		return nil, nil
	}

	e.push(Entry{Formation: result.Formation, Label: text})
	return result.Formation, nil
}

// Expand navigates into an entity's detail view. When an adjacent template
// and the entity record are cached locally the formation is computed
// immediately and the server is notified asynchronously; otherwise a
// synchronous round trip resolves it. A failed round trip leaves the trail
// untouched: the push happens only after a successful response.
func (e *Engine) Expand(ctx context.Context, entityType, entityID string) (*schema.Formation, error) {
	e.mu.Lock()

	if formation := e.localExpand(entityType, entityID); formation != nil {
		e.push(Entry{Formation: formation, Label: entityLabel(formation, entityID)})
		sessionID := e.sessionID
		e.mu.Unlock()

		go func() {
			if err := e.client.SyncExpand(context.WithoutCancel(ctx), sessionID, entityType, entityID); err != nil {
				e.logger.Warn("expand sync failed",
					zap.String("entity_type", entityType),
					zap.String("entity_id", entityID),
					zap.Error(err))
			}
		}()
		return formation, nil
	}

	sessionID := e.sessionID
	e.seq++
	e.mu.Unlock()

	result, err := e.client.Expand(ctx, sessionID, entityType, entityID)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		// nothing was pushed before the round trip, so there is nothing to
		// undo; entries pushed by concurrent navigation stay intact
		return nil, fmt.Errorf("nav: expand %s/%s: %w", entityType, entityID, err)
	}
	if result == nil || result.Formation.Empty() {
		return nil, nil
	}

	e.push(Entry{Formation: result.Formation, Label: entityLabel(result.Formation, entityID)})
	return result.Formation, nil
}

// cacheLocked absorbs adjacent templates and entity records from a query
// response. Even a stale response refreshes the caches; they are keyed by
// entity, not by trail position. Callers hold the lock.
func (e *Engine) cacheLocked(result *QueryResult) {
	for entityType, template := range result.Templates {
		if template != nil {
			e.templates[entityType] = template
		}
	}
	for entityType, records := range result.Entities {
		byID := e.entities[entityType]
		if byID == nil {
			byID = make(map[string]schema.Entity)
			e.entities[entityType] = byID
		}
		for _, record := range records {
			if id := record.ID(); id != "" {
				byID[id] = record
			}
		}
	}
}

// localExpand computes the detail formation from caches, or nil. Malformed
// cached data resolves to nil and the caller falls back to the server path.
// Callers hold the lock.
func (e *Engine) localExpand(entityType, entityID string) *schema.Formation {
	template, ok := e.templates[entityType]
	if !ok {
		return nil
	}
	entity, ok := e.entities[entityType][entityID]
	if !ok {
		return nil
	}
	return fill.Fill(template, entity, entityType)
}

// Back re-renders the previous trail entry. It is always instantaneous; the
// server is notified asynchronously. A back with no prior entry is a no-op.
func (e *Engine) Back(ctx context.Context) (*schema.Formation, bool) {
	e.mu.Lock()
	entry, ok := e.trail.GoBack()
	if !ok {
		e.mu.Unlock()
		return nil, false
	}
	e.seq++
	sessionID := e.sessionID
	e.mu.Unlock()

	go func() {
		if err := e.client.SyncBack(context.WithoutCancel(ctx), sessionID); err != nil {
			e.logger.Warn("back sync failed", zap.Error(err))
		}
	}()
	return entry.Formation, true
}

// GoTo re-renders an arbitrary earlier trail entry from the breadcrumb
// stepper. Rather than truncating history it pushes a new entry carrying the
// old formation, keeping the trail monotonically growing for display.
func (e *Engine) GoTo(index int) (*schema.Formation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := e.trail.Entries()
	if index < 0 || index >= len(entries) {
		return nil, false
	}
	target := entries[index]
	e.push(Entry{Formation: target.Formation, Label: "Navigated back"})
	return target.Formation, true
}

// Current returns the formation on screen.
func (e *Engine) Current() (*schema.Formation, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.trail.Current()
	if !ok {
		return nil, false
	}
	return entry.Formation, true
}

// CanGoBack reports whether back navigation is possible.
func (e *Engine) CanGoBack() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trail.CanGoBack()
}

// Entries returns the breadcrumb history.
func (e *Engine) Entries() []Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trail.Entries()
}

// CacheTemplate stores the adjacent detail template for an entity type,
// enabling local-first expand.
func (e *Engine) CacheTemplate(entityType string, template *schema.Formation) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if template == nil {
		delete(e.templates, entityType)
		return
	}
	e.templates[entityType] = template
}

// CacheEntities stores raw entity records delivered alongside a result set.
func (e *Engine) CacheEntities(entityType string, records []schema.Entity) {
	e.mu.Lock()
	defer e.mu.Unlock()
	byID := e.entities[entityType]
	if byID == nil {
		byID = make(map[string]schema.Entity)
		e.entities[entityType] = byID
	}
	for _, record := range records {
		if id := record.ID(); id != "" {
			byID[id] = record
		}
	}
}

// Snapshot captures the trail for session persistence.
func (e *Engine) Snapshot() []Entry {
	return e.Entries()
}

// Restore replaces the trail with persisted entries, cursor at the end.
func (e *Engine) Restore(entries []Entry) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.trail.Clear()
	for _, entry := range entries {
		e.trail.Push(entry)
	}
	e.seq++
}

// Reset wipes all navigation state: trail, caches, and session id. Used when
// background validation finds the session dead server-side.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.trail.Clear()
	e.templates = make(map[string]*schema.Formation)
	e.entities = make(map[string]map[string]schema.Entity)
	e.sessionID = ""
	e.seq++
}

// push appends under the lock and bumps the mutation sequence.
func (e *Engine) push(entry Entry) {
	e.seq++
	e.trail.Push(entry)
}

// entityLabel derives a breadcrumb label from the detail formation's title,
// falling back to the entity id.
func entityLabel(formation *schema.Formation, entityID string) string {
	if formation != nil {
		for _, widget := range formation.Widgets {
			for _, a := range widget.Atoms {
				if a.Slot == schema.SlotTitle {
					if s, ok := a.Value.(string); ok && s != "" {
						return s
					}
				}
			}
		}
	}
	return entityID
}
