// Package api is the HTTP boundary to the conversation backend. The client
// is configured once at construction and immutable for the session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shopglass/go-shopglass/pkg/nav"
	"github.com/shopglass/go-shopglass/pkg/session"
)

// Config carries everything the client needs. Fields are read at
// construction; later mutation of the struct has no effect.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:8080/api/v1".
	BaseURL string
	// TenantSlug identifies the storefront and rides on every request.
	TenantSlug string
	// HTTPClient overrides the transport. The default applies a 30s timeout.
	HTTPClient *http.Client
	// Logger for request failures on fire-and-forget paths.
	Logger *zap.Logger
}

// Client talks to the backend. It satisfies nav.Client and
// session.Validator.
type Client struct {
	baseURL    string
	tenantSlug string
	http       *http.Client
	logger     *zap.Logger
}

var _ nav.Client = (*Client)(nil)
var _ session.Validator = (*Client)(nil)

// New builds a client from the config.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: base URL is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		tenantSlug: cfg.TenantSlug,
		http:       httpClient,
		logger:     logger,
	}, nil
}

// InitResult is the session bootstrap payload.
type InitResult struct {
	SessionID string `json:"sessionId"`
	Tenant    string `json:"tenant,omitempty"`
	Greeting  string `json:"greeting,omitempty"`
}

// InitSession starts a fresh conversation.
func (c *Client) InitSession(ctx context.Context) (*InitResult, error) {
	var result InitResult
	if err := c.post(ctx, "/session/init", nil, &result); err != nil {
		return nil, fmt.Errorf("api: init session: %w", err)
	}
	return &result, nil
}

// GetSession fetches the server's view of a session. A 404 resolves to
// (nil, nil): the session is gone, not an error.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*session.SessionInfo, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/session/"+sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("api: get session: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: get session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("api: get session: unexpected status %d", resp.StatusCode)
	}

	var info session.SessionInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("api: get session: decode response: %w", err)
	}
	return &info, nil
}

// Query submits user text for a new result set.
func (c *Client) Query(ctx context.Context, sessionID, query string) (*nav.QueryResult, error) {
	body := map[string]any{"query": query}
	if sessionID != "" {
		body["sessionId"] = sessionID
	}
	var result nav.QueryResult
	if err := c.post(ctx, "/chat", body, &result); err != nil {
		return nil, fmt.Errorf("api: query: %w", err)
	}
	return &result, nil
}

// Expand resolves a detail view server-side.
func (c *Client) Expand(ctx context.Context, sessionID, entityType, entityID string) (*nav.NavResult, error) {
	var result nav.NavResult
	err := c.post(ctx, "/navigation/expand", expandBody(sessionID, entityType, entityID), &result)
	if err != nil {
		return nil, fmt.Errorf("api: expand: %w", err)
	}
	return &result, nil
}

// SyncExpand notifies the server of a locally resolved expand. The response
// body is not consumed.
func (c *Client) SyncExpand(ctx context.Context, sessionID, entityType, entityID string) error {
	if err := c.post(ctx, "/navigation/expand?sync=true", expandBody(sessionID, entityType, entityID), nil); err != nil {
		return fmt.Errorf("api: sync expand: %w", err)
	}
	return nil
}

// SyncBack notifies the server of a locally resolved back.
func (c *Client) SyncBack(ctx context.Context, sessionID string) error {
	body := map[string]any{"sessionId": sessionID}
	if err := c.post(ctx, "/navigation/back?sync=true", body, nil); err != nil {
		return fmt.Errorf("api: sync back: %w", err)
	}
	return nil
}

// Back resolves a back navigation server-side. Retained for hosts on the
// legacy server-owned navigation flow.
func (c *Client) Back(ctx context.Context, sessionID string) (*nav.NavResult, error) {
	var result nav.NavResult
	if err := c.post(ctx, "/navigation/back", map[string]any{"sessionId": sessionID}, &result); err != nil {
		return nil, fmt.Errorf("api: back: %w", err)
	}
	return &result, nil
}

func expandBody(sessionID, entityType, entityID string) map[string]any {
	return map[string]any{
		"sessionId":  sessionID,
		"entityType": entityType,
		"entityId":   entityID,
	}
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if result == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tenantSlug != "" {
		req.Header.Set("X-Tenant-Slug", c.tenantSlug)
	}
	return req, nil
}
