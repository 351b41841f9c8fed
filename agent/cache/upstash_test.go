package cache

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type fakeRedis struct {
	mu       sync.Mutex
	commands [][]any
	values   map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}}
}

func (f *fakeRedis) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
			return
		}

		var cmd []any
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			http.Error(w, `{"error":"bad command"}`, http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.commands = append(f.commands, cmd)
		f.mu.Unlock()

		switch cmd[0] {
		case "GET":
			key := cmd[1].(string)
			f.mu.Lock()
			value, ok := f.values[key]
			f.mu.Unlock()
			if !ok {
				w.Write([]byte(`{"result":null}`))
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"result": value})
		case "SET":
			f.mu.Lock()
			f.values[cmd[1].(string)] = cmd[2].(string)
			f.mu.Unlock()
			w.Write([]byte(`{"result":"OK"}`))
		case "DEL":
			f.mu.Lock()
			delete(f.values, cmd[1].(string))
			f.mu.Unlock()
			w.Write([]byte(`{"result":1}`))
		default:
			http.Error(w, `{"error":"unknown command"}`, http.StatusBadRequest)
		}
	}
}

func (f *fakeRedis) lastCommand() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.commands) == 0 {
		return nil
	}
	return f.commands[len(f.commands)-1]
}

func newTestStore(t *testing.T, redis *fakeRedis, opts ...StoreOption) *UpstashRedisStore {
	t.Helper()

	srv := httptest.NewServer(redis.handler())
	t.Cleanup(srv.Close)

	store, err := NewUpstashRedisStore(UpstashRedisConfig{
		URL:     srv.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, opts...)
	if err != nil {
		t.Fatalf("NewUpstashRedisStore: %v", err)
	}
	return store
}

func TestUpstashSetGetDelete(t *testing.T) {
	t.Parallel()

	redis := newFakeRedis()
	store := newTestStore(t, redis)
	ctx := context.Background()

	if err := store.Set(ctx, "brand:task:abc", "aggregated response"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	value, ok, err := store.Get(ctx, "brand:task:abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || value != "aggregated response" {
		t.Fatalf("Get = (%q, %v)", value, ok)
	}

	if err := store.Delete(ctx, "brand:task:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "brand:task:abc"); ok {
		t.Fatal("expected miss after delete")
	}
}

func TestUpstashGetMiss(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, newFakeRedis())
	_, ok, err := store.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestUpstashSetAppliesPrefixAndTTL(t *testing.T) {
	t.Parallel()

	redis := newFakeRedis()
	store := newTestStore(t, redis, WithKeyPrefix("custom:"), WithTTL(90*time.Second))

	if err := store.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	cmd := redis.lastCommand()
	if len(cmd) != 5 {
		t.Fatalf("SET command = %v, want SET key value EX ttl", cmd)
	}
	if cmd[1] != "custom:k" {
		t.Fatalf("key = %v, want custom:k", cmd[1])
	}
	if cmd[3] != "EX" {
		t.Fatalf("expiry flag = %v", cmd[3])
	}
	if ttl, ok := cmd[4].(float64); !ok || int64(ttl) != 90 {
		t.Fatalf("ttl = %v, want 90", cmd[4])
	}
}

func TestUpstashEmptyKeyRejected(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, newFakeRedis())
	if _, _, err := store.Get(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank key")
	}
}

func TestUpstashServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	store, err := NewUpstashRedisStore(UpstashRedisConfig{URL: srv.URL, Token: "t"})
	if err != nil {
		t.Fatalf("NewUpstashRedisStore: %v", err)
	}
	if _, _, err := store.Get(context.Background(), "k"); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestNewUpstashRedisStoreValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewUpstashRedisStore(UpstashRedisConfig{URL: "", Token: "t"}); err == nil {
		t.Fatal("expected error for missing url")
	}
	if _, err := NewUpstashRedisStore(UpstashRedisConfig{URL: "https://example.upstash.io", Token: ""}); err == nil {
		t.Fatal("expected error for missing token")
	}
}
