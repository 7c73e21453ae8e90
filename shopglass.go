// Package shopglass assembles the conversation-driven storefront pipeline:
// a backend client, the navigation engine, the session cache, and an HTML
// renderer registry, wired so a host can submit queries and paint the
// resulting formations with a few calls.
package shopglass

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/shopglass/go-shopglass/pkg/api"
	"github.com/shopglass/go-shopglass/pkg/nav"
	"github.com/shopglass/go-shopglass/pkg/render"
	"github.com/shopglass/go-shopglass/pkg/renderers/vanilla"
	"github.com/shopglass/go-shopglass/pkg/schema"
	"github.com/shopglass/go-shopglass/pkg/session"
	"github.com/shopglass/go-shopglass/pkg/theme"
)

// RenderOptions re-exports render.RenderOptions for hosts that only import
// the root package.
type RenderOptions = render.RenderOptions

// Option configures an App.
type Option func(*config)

type config struct {
	client       nav.Client
	store        session.Store
	logger       *zap.Logger
	renderers    []render.Renderer
	themeName    string
	themeVariant string
	err          error
}

// WithClient supplies the backend boundary. Most hosts build it with
// api.New; tests inject fakes.
func WithClient(client nav.Client) Option {
	return func(cfg *config) {
		cfg.client = client
	}
}

// WithAPI builds the backend client from config. A construction failure
// surfaces from New.
func WithAPI(apiConfig api.Config) Option {
	return func(cfg *config) {
		client, err := api.New(apiConfig)
		if err != nil {
			cfg.err = fmt.Errorf("shopglass: build api client: %w", err)
			return
		}
		cfg.client = client
	}
}

// WithSessionStore selects where session state persists. The default is an
// in-memory store.
func WithSessionStore(store session.Store) Option {
	return func(cfg *config) {
		if store != nil {
			cfg.store = store
		}
	}
}

// WithLogger sets the logger shared by the engine and cache.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRenderer registers an additional renderer. The first registered
// renderer is the default; the built-in vanilla renderer registers first
// unless the host provides its own.
func WithRenderer(renderer render.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.renderers = append(cfg.renderers, renderer)
		}
	}
}

// WithTheme picks the theme applied to rendered pages.
func WithTheme(name, variant string) Option {
	return func(cfg *config) {
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// App is the assembled pipeline.
type App struct {
	registry *render.Registry
	themes   *theme.Resolver
	engine   *nav.Engine
	cache    *session.Cache
	client   nav.Client
	logger   *zap.Logger

	themeName    string
	themeVariant string

	mu       sync.Mutex
	messages []session.Message
}

// New wires the pipeline. A backend client is required; everything else has
// defaults.
func New(options ...Option) (*App, error) {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.client == nil {
		return nil, fmt.Errorf("shopglass: a backend client is required (WithClient or WithAPI)")
	}
	if cfg.store == nil {
		cfg.store = session.NewMemoryStore()
	}

	engine, err := nav.NewEngine(cfg.client, nav.WithLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("shopglass: build navigation engine: %w", err)
	}
	cache, err := session.NewCache(cfg.store, session.WithCacheLogger(cfg.logger))
	if err != nil {
		return nil, fmt.Errorf("shopglass: build session cache: %w", err)
	}

	registry := render.NewRegistry()
	if len(cfg.renderers) == 0 {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("shopglass: build vanilla renderer: %w", err)
		}
		cfg.renderers = append(cfg.renderers, renderer)
	}
	for _, renderer := range cfg.renderers {
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("shopglass: register renderer: %w", err)
		}
	}

	return &App{
		registry:     registry,
		themes:       theme.NewResolver(),
		engine:       engine,
		cache:        cache,
		client:       cfg.client,
		logger:       cfg.logger,
		themeName:    cfg.themeName,
		themeVariant: cfg.themeVariant,
	}, nil
}

// Engine exposes the navigation engine for hosts driving expand/back
// directly.
func (a *App) Engine() *nav.Engine {
	return a.engine
}

// Themes exposes the theme resolver so hosts can register storefront
// manifests.
func (a *App) Themes() *theme.Resolver {
	return a.themes
}

// Messages returns a copy of the chat log.
func (a *App) Messages() []session.Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]session.Message, len(a.messages))
	copy(out, a.messages)
	return out
}

// Submit runs one chat exchange: append the user message, run the query,
// append the assistant message. A failed query appends an apology message
// and surfaces the error; there is no automatic retry.
func (a *App) Submit(ctx context.Context, text string) (*schema.Formation, error) {
	if text == "" {
		return nil, nil
	}
	a.appendMessage(session.NewMessage(session.RoleUser, text))

	formation, err := a.engine.Query(ctx, text)
	if err != nil {
		a.appendMessage(session.NewMessage(session.RoleAssistant, "Sorry, something went wrong. Please try again."))
		return nil, err
	}

	reply := session.NewMessage(session.RoleAssistant, "")
	reply.Formation = formation
	a.appendMessage(reply)

	if err := a.persist(); err != nil {
		a.logger.Warn("session save failed", zap.Error(err))
	}
	return formation, nil
}

// RenderCurrent paints the formation on screen with the configured theme and
// the default renderer.
func (a *App) RenderCurrent(ctx context.Context, options RenderOptions) ([]byte, error) {
	formation, ok := a.engine.Current()
	if !ok || formation.Empty() {
		return nil, nil
	}
	return a.Render(ctx, *formation, options)
}

// Render paints an arbitrary formation.
func (a *App) Render(ctx context.Context, formation schema.Formation, options RenderOptions) ([]byte, error) {
	renderer, err := a.registry.Default()
	if err != nil {
		return nil, fmt.Errorf("shopglass: render: %w", err)
	}
	if options.Theme == nil {
		themeConfig, err := a.themes.Resolve(a.themeName, a.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("shopglass: render: %w", err)
		}
		options.Theme = themeConfig
	}
	schema.Normalize(&formation)
	return renderer.Render(ctx, formation, options)
}

// Restore rehydrates state from the session cache. Expired or absent
// records leave the app fresh. When a record is loaded, a background
// validation checks the session server-side and wipes everything if it is no
// longer active; transport failures keep the cache.
func (a *App) Restore(ctx context.Context) (bool, error) {
	record, err := a.cache.Load()
	if err != nil {
		return false, fmt.Errorf("shopglass: restore session: %w", err)
	}
	if record == nil {
		return false, nil
	}

	a.mu.Lock()
	a.messages = record.Messages
	a.mu.Unlock()
	a.engine.SetSessionID(record.SessionID)
	if len(record.Trail) > 0 {
		a.engine.Restore(record.Trail)
	} else if record.Formation != nil {
		a.engine.Restore([]nav.Entry{{Formation: record.Formation, Label: "Restored"}})
	}

	if validator, ok := a.client.(session.Validator); ok {
		go func() {
			if !a.cache.Validate(context.WithoutCancel(ctx), validator, record.SessionID) {
				a.ResetSession()
			}
		}()
	}
	return true, nil
}

// ResetSession wipes every piece of client state: session id, messages,
// formation, trail, caches, and the persisted record.
func (a *App) ResetSession() {
	a.engine.Reset()
	a.mu.Lock()
	a.messages = nil
	a.mu.Unlock()
	if err := a.cache.Clear(); err != nil {
		a.logger.Warn("session clear failed", zap.Error(err))
	}
}

func (a *App) appendMessage(msg session.Message) {
	a.mu.Lock()
	a.messages = append(a.messages, msg)
	a.mu.Unlock()
}

func (a *App) persist() error {
	var current *schema.Formation
	if formation, ok := a.engine.Current(); ok {
		current = formation
	}
	return a.cache.Save(session.Record{
		SessionID: a.engine.SessionID(),
		Messages:  a.Messages(),
		Formation: current,
		Trail:     a.engine.Snapshot(),
	})
}
