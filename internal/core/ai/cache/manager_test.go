package cache

import (
	"context"
	"testing"
	"time"

	"recipe-engine/internal/infrastructure/config"
)

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Hour,
		},
	}
}

func TestManagerSetGet(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "prompt-a", "value-a"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := m.Get(ctx, "prompt-a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "value-a" {
		t.Errorf("Get = %q, want value-a", got)
	}

	if _, err := m.Get(ctx, "prompt-b"); err == nil {
		t.Error("expected miss for unknown prompt")
	}
}

func TestManagerKeysDifferByPrompt(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "prompt-a", "value-a")
	m.Set(ctx, "prompt-b", "value-b")

	if got, _ := m.Get(ctx, "prompt-b"); got != "value-b" {
		t.Errorf("Get = %q, want value-b", got)
	}
}

func TestManagerTTLExpiry(t *testing.T) {
	m := NewManager(testConfig(10, 10*time.Millisecond))
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "prompt-a", "value-a")
	time.Sleep(20 * time.Millisecond)

	if _, err := m.Get(ctx, "prompt-a"); err == nil {
		t.Error("expected expired entry to miss")
	}
}

func TestManagerEvictsWhenFull(t *testing.T) {
	m := NewManager(testConfig(2, time.Minute))
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "prompt-a", "value-a")
	m.Set(ctx, "prompt-b", "value-b")

	// b 被存取過，LRU 應該淘汰 a
	m.Get(ctx, "prompt-b")

	if err := m.Set(ctx, "prompt-c", "value-c"); err != nil {
		t.Fatalf("Set after eviction failed: %v", err)
	}
	if _, err := m.Get(ctx, "prompt-a"); err == nil {
		t.Error("expected least-used entry to be evicted")
	}
	if got, _ := m.Get(ctx, "prompt-c"); got != "value-c" {
		t.Errorf("Get = %q, want value-c", got)
	}
}

func TestManagerStats(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "prompt-a", "value-a")
	m.Get(ctx, "prompt-a")
	m.Get(ctx, "prompt-miss")

	stats := m.GetStats()
	if stats["hits"].(int64) != 1 {
		t.Errorf("hits = %v, want 1", stats["hits"])
	}
	if stats["misses"].(int64) != 1 {
		t.Errorf("misses = %v, want 1", stats["misses"])
	}
	if stats["size"].(int) != 1 {
		t.Errorf("size = %v, want 1", stats["size"])
	}
}

func TestNewResponseCacheDisabled(t *testing.T) {
	cfg := testConfig(10, time.Minute)
	cfg.Cache.Enabled = false

	c, err := NewResponseCache(cfg)
	if err != nil {
		t.Fatalf("NewResponseCache failed: %v", err)
	}
	if c != nil {
		t.Error("disabled cache should be nil")
	}
}
