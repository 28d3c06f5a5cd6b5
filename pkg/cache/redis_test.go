package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewRedisStore_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRedisStore should panic with nil redis client")
		}
	}()
	NewRedisStore(nil)
}

func TestRedisStore_GetMiss(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestRedisStore_SetAndGet(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client)
	ctx := context.Background()

	if err := store.Set(ctx, "k", []byte(`{"a":1}`), 30*time.Second); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if ttl := mr.TTL("k"); ttl != 30*time.Second {
		t.Errorf("TTL = %v, want 30s", ttl)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get() = %s, want {\"a\":1}", got)
	}
}

func TestRedisStore_SetRejectsZeroTTL(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client)

	if err := store.Set(context.Background(), "k", []byte("v"), 0); err == nil {
		t.Error("Set() with zero ttl should fail")
	}
}

func TestRedisStore_Backend(t *testing.T) {
	_, client := setupTestRedis(t)
	if got := NewRedisStore(client).Backend(); got != "redis" {
		t.Errorf("Backend() = %q, want redis", got)
	}
}
