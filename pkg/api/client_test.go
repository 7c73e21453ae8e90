package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	tenant string
	body   map[string]any
}

type requestLog struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (l *requestLog) capture(r *http.Request) {
	req := recordedRequest{
		method: r.Method,
		path:   r.URL.Path,
		query:  r.URL.RawQuery,
		tenant: r.Header.Get("X-Tenant-Slug"),
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req.body)
	}
	l.mu.Lock()
	l.requests = append(l.requests, req)
	l.mu.Unlock()
}

func (l *requestLog) all() []recordedRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedRequest(nil), l.requests...)
}

func TestQuery(t *testing.T) {
	log := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.capture(r)
		require.Equal(t, "/chat", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"sessionId": "s-1",
			"formation": &schema.Formation{
				Mode:    schema.ModeGrid,
				Widgets: []schema.Widget{{ID: "w1"}},
			},
			"adjacentTemplates": map[string]*schema.Formation{
				"product": {Mode: schema.ModeSingle},
			},
			"entities": map[string][]schema.Entity{
				"product": {{"id": "p1"}},
			},
		})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, TenantSlug: "acme"})
	require.NoError(t, err)

	result, err := client.Query(context.Background(), "", "show sneakers")
	require.NoError(t, err)
	assert.Equal(t, "s-1", result.SessionID)
	require.NotNil(t, result.Formation)
	assert.Equal(t, schema.ModeGrid, result.Formation.Mode)
	require.Contains(t, result.Templates, "product")
	assert.Equal(t, schema.ModeSingle, result.Templates["product"].Mode)
	assert.Equal(t, "p1", result.Entities["product"][0].ID())

	req := log.all()[0]
	assert.Equal(t, "acme", req.tenant)
	assert.Equal(t, "show sneakers", req.body["query"])
	assert.NotContains(t, req.body, "sessionId", "empty session id should be omitted")
}

func TestQueryTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)
	_, err = client.Query(context.Background(), "s-1", "anything")
	assert.Error(t, err, "non-2xx status should surface as an error")
}

func TestSyncVariantsCarrySyncFlag(t *testing.T) {
	log := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.capture(r)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, client.SyncExpand(ctx, "s-1", "product", "p1"))
	require.NoError(t, client.SyncBack(ctx, "s-1"))

	requests := log.all()
	require.Len(t, requests, 2)
	assert.Equal(t, "/navigation/expand", requests[0].path)
	assert.Equal(t, "sync=true", requests[0].query)
	assert.Equal(t, "product", requests[0].body["entityType"])
	assert.Equal(t, "p1", requests[0].body["entityId"])
	assert.Equal(t, "/navigation/back", requests[1].path)
	assert.Equal(t, "sync=true", requests[1].query)
}

func TestExpandRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/navigation/expand", r.URL.Path)
		require.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(map[string]any{
			"formation": &schema.Formation{Mode: schema.ModeSingle, Widgets: []schema.Widget{{ID: "d1"}}},
			"canGoBack": true,
		})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	result, err := client.Expand(context.Background(), "s-1", "product", "p1")
	require.NoError(t, err)
	require.NotNil(t, result.Formation)
	assert.Equal(t, "d1", result.Formation.Widgets[0].ID)
	assert.True(t, result.CanGoBack)
}

func TestGetSessionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	info, err := client.GetSession(context.Background(), "s-gone")
	require.NoError(t, err, "404 means the session is gone, not a transport failure")
	assert.Nil(t, info)
}

func TestGetSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/session/s-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"sessionId": "s-1",
			"status":    "active",
		})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	info, err := client.GetSession(context.Background(), "s-1")
	require.NoError(t, err)
	assert.True(t, info.Active())
}

func TestInitSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/session/init", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]any{
			"sessionId": "s-new",
			"greeting":  "Welcome to Acme",
		})
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	result, err := client.InitSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s-new", result.SessionID)
	assert.Equal(t, "Welcome to Acme", result.Greeting)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
