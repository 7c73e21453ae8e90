package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

func testFormation() *schema.Formation {
	return &schema.Formation{
		Mode: schema.ModeList,
		Widgets: []schema.Widget{
			{ID: "w1", Atoms: []schema.Atom{{Type: schema.AtomText, Value: "hello"}}},
		},
	}
}

func TestCacheSaveStripsMessageFormations(t *testing.T) {
	cache, err := NewCache(NewMemoryStore())
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	assistant := NewMessage(RoleAssistant, "here are your results")
	assistant.Formation = testFormation()

	record := Record{
		SessionID: "s-1",
		Messages:  []Message{NewMessage(RoleUser, "show sneakers"), assistant},
		Formation: testFormation(),
	}
	if err := cache.Save(record); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := cache.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() = nil for fresh record")
	}
	for _, msg := range loaded.Messages {
		if msg.Formation != nil {
			t.Errorf("message %s kept its formation payload", msg.ID)
		}
	}
	if loaded.Formation == nil {
		t.Error("current formation was not persisted")
	}
	if loaded.SessionID != "s-1" {
		t.Errorf("session id = %q", loaded.SessionID)
	}
}

func TestCacheSaveWithoutSessionID(t *testing.T) {
	store := NewMemoryStore()
	cache, _ := NewCache(store)

	if err := cache.Save(Record{Messages: []Message{NewMessage(RoleUser, "hi")}}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, ok, _ := store.Get(CacheKey); ok {
		t.Error("record without session id was persisted")
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	saved := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	current := saved

	cache, _ := NewCache(store, WithClock(func() time.Time { return current }))

	if err := cache.Save(Record{SessionID: "s-1"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	current = saved.Add(29 * time.Minute)
	if record, _ := cache.Load(); record == nil {
		t.Fatal("record expired before the TTL")
	}

	current = saved.Add(31 * time.Minute)
	record, err := cache.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if record != nil {
		t.Fatal("expired record still loads")
	}
	if _, ok, _ := store.Get(CacheKey); ok {
		t.Error("expired record left in store")
	}
}

func TestCacheClearRemovesLegacyKey(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set(LegacySessionKey, []byte(`"s-old"`))

	cache, _ := NewCache(store)
	if err := cache.Save(Record{SessionID: "s-1"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}

	if _, ok, _ := store.Get(CacheKey); ok {
		t.Error("cache key survived clear")
	}
	if _, ok, _ := store.Get(LegacySessionKey); ok {
		t.Error("legacy session key survived clear")
	}
}

func TestCacheCorruptRecordDropped(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Set(CacheKey, []byte("{not json"))

	cache, _ := NewCache(store)
	record, err := cache.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if record != nil {
		t.Fatal("corrupt record should load as absent")
	}
	if _, ok, _ := store.Get(CacheKey); ok {
		t.Error("corrupt record left in store")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error: %v", err)
	}

	cache, _ := NewCache(store)
	if err := cache.Save(Record{SessionID: "s-1", Formation: testFormation()}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() reopen error: %v", err)
	}
	cache2, _ := NewCache(reopened)
	record, err := cache2.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if record == nil || record.SessionID != "s-1" {
		t.Fatalf("record = %+v", record)
	}
	if record.Formation == nil || record.Formation.Widgets[0].ID != "w1" {
		t.Errorf("formation did not survive the file round trip")
	}
}

type fakeValidator struct {
	info *SessionInfo
	err  error
}

func (f *fakeValidator) GetSession(context.Context, string) (*SessionInfo, error) {
	return f.info, f.err
}

func TestValidate(t *testing.T) {
	cache, _ := NewCache(NewMemoryStore())
	ctx := context.Background()

	active := &fakeValidator{info: &SessionInfo{SessionID: "s-1", Status: "active"}}
	if !cache.Validate(ctx, active, "s-1") {
		t.Error("active session reported invalid")
	}

	gone := &fakeValidator{info: nil}
	if cache.Validate(ctx, gone, "s-1") {
		t.Error("missing session reported valid")
	}

	closed := &fakeValidator{info: &SessionInfo{SessionID: "s-1", Status: "closed"}}
	if cache.Validate(ctx, closed, "s-1") {
		t.Error("closed session reported valid")
	}

	flaky := &fakeValidator{err: errors.New("network down")}
	if !cache.Validate(ctx, flaky, "s-1") {
		t.Error("transport failure should fail open")
	}
}
