package library

import (
	"context"
	"os"
	"testing"
	"time"
)

// createTestCache creates an in-memory SQLite cache for testing
func createTestCache(t *testing.T) *Cache {
	t.Helper()

	cache, err := NewCache(":memory:")
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}

	t.Cleanup(func() {
		_ = cache.Close()
	})

	return cache
}

func TestNewCache(t *testing.T) {
	t.Run("in-memory database", func(t *testing.T) {
		cache, err := NewCache(":memory:")
		if err != nil {
			t.Fatalf("failed to create in-memory cache: %v", err)
		}
		defer func() { _ = cache.Close() }()

		if cache.db == nil {
			t.Error("cache database is nil")
		}
	})

	t.Run("file-based database", func(t *testing.T) {
		tmpfile, err := os.CreateTemp("", "ampview-cache-*.db")
		if err != nil {
			t.Fatalf("failed to create temp file: %v", err)
		}
		_ = tmpfile.Close()
		defer func() { _ = os.Remove(tmpfile.Name()) }()

		cache, err := NewCache(tmpfile.Name())
		if err != nil {
			t.Fatalf("failed to create file-based cache: %v", err)
		}
		defer func() { _ = cache.Close() }()

		if cache.db == nil {
			t.Error("cache database is nil")
		}
	})
}

func TestCachePutGet(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	type entry struct {
		Name  string
		Count int
	}

	if err := cache.Put(ctx, "artists&bach", entry{Name: "Bach", Count: 12}); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	var got entry
	hit, err := cache.Get(ctx, "artists&bach", time.Hour, &got)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !hit {
		t.Fatal("expected cache hit, got miss")
	}
	if got.Name != "Bach" || got.Count != 12 {
		t.Errorf("got %+v, want {Bach 12}", got)
	}
}

func TestCacheMiss(t *testing.T) {
	cache := createTestCache(t)

	var got string
	hit, err := cache.Get(context.Background(), "missing", time.Hour, &got)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hit {
		t.Error("expected miss for unknown key, got hit")
	}
}

func TestCacheReplace(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	if err := cache.Put(ctx, "k", "old"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := cache.Put(ctx, "k", "new"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	var got string
	hit, err := cache.Get(ctx, "k", time.Hour, &got)
	if err != nil || !hit {
		t.Fatalf("Get() hit=%v error: %v", hit, err)
	}
	if got != "new" {
		t.Errorf("got %q, want new", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	if err := cache.Put(ctx, "stale", "value"); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	// Age the entry by rewriting its fetch time.
	past := time.Now().Add(-2 * time.Hour).Unix()
	if _, err := cache.db.Exec("UPDATE responses SET fetched_at = ? WHERE key = ?", past, "stale"); err != nil {
		t.Fatalf("failed to age entry: %v", err)
	}

	var got string
	hit, err := cache.Get(ctx, "stale", time.Hour, &got)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if hit {
		t.Error("expected expired entry to miss, got hit")
	}

	// maxAge <= 0 disables expiry.
	hit, err = cache.Get(ctx, "stale", 0, &got)
	if err != nil || !hit {
		t.Fatalf("Get() with no expiry hit=%v error: %v", hit, err)
	}
	if got != "value" {
		t.Errorf("got %q, want value", got)
	}
}

func TestCachePurge(t *testing.T) {
	cache := createTestCache(t)
	ctx := context.Background()

	if err := cache.Put(ctx, "old", 1); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := cache.Put(ctx, "fresh", 2); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	past := time.Now().Add(-48 * time.Hour).Unix()
	if _, err := cache.db.Exec("UPDATE responses SET fetched_at = ? WHERE key = ?", past, "old"); err != nil {
		t.Fatalf("failed to age entry: %v", err)
	}

	deleted, err := cache.Purge(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Purge() error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("purged %d entries, want 1", deleted)
	}

	var got int
	hit, err := cache.Get(ctx, "fresh", time.Hour, &got)
	if err != nil || !hit {
		t.Fatalf("fresh entry lost after purge: hit=%v error: %v", hit, err)
	}
}

func TestCacheKey(t *testing.T) {
	a := cacheKey("artists", "Bach & Sons", "true")
	b := cacheKey("artists", "Bach & Sons", "false")
	if a == b {
		t.Error("keys with different parameters collide")
	}

	// Parameter values containing the separator must not produce the
	// same key as separate parameters.
	c := cacheKey("artists", "x&y")
	d := cacheKey("artists", "x", "y")
	if c == d {
		t.Error("escaping failed, composite value collides with parameter list")
	}
}
