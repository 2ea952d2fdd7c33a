package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit || data != nil {
		t.Errorf("Get = %v, %t, want miss", data, hit)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("NullCache stored data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	// Miss before any write.
	if _, hit, err := c.Get(ctx, "absent"); err != nil || hit {
		t.Errorf("Get(absent) = hit=%t err=%v, want miss", hit, err)
	}

	// Round trip.
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit || string(data) != "value" {
		t.Errorf("Get = %q, %t, want %q hit", data, hit, "value")
	}

	// Zero ttl never expires.
	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero-ttl entry expired")
	}

	// A ttl in the past is a miss and removes the entry.
	if err := c.Set(ctx, "stale", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "stale"); hit {
		t.Error("expired entry still served")
	}

	// Delete removes the entry; deleting again is not an error.
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("deleted entry still served")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := os.WriteFile(c.path("key"), []byte("not json"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, hit, err := c.Get(ctx, "key"); err != nil || hit {
		t.Errorf("Get(corrupt) = hit=%t err=%v, want miss", hit, err)
	}
}

func TestScoped(t *testing.T) {
	ctx := context.Background()
	base, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer base.Close()

	a := Scoped(base, "a:")
	b := Scoped(base, "b:")

	if err := a.Set(ctx, "key", []byte("from a"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// The scoped key lands in the base cache under its prefix.
	if data, hit, _ := base.Get(ctx, "a:key"); !hit || string(data) != "from a" {
		t.Errorf("base Get(a:key) = %q, %t, want %q hit", data, hit, "from a")
	}

	// Scopes do not collide.
	if _, hit, _ := b.Get(ctx, "key"); hit {
		t.Error("scope b sees scope a's entry")
	}
	if data, hit, _ := a.Get(ctx, "key"); !hit || string(data) != "from a" {
		t.Errorf("scoped Get = %q, %t, want %q hit", data, hit, "from a")
	}

	if err := a.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := base.Get(ctx, "a:key"); hit {
		t.Error("scoped Delete left the base entry")
	}
}

func TestKey(t *testing.T) {
	k1 := Key("report", 3, 4, 1e-5)
	k2 := Key("report", 3, 4, 1e-5)
	if k1 != k2 {
		t.Error("Key is not deterministic")
	}
	if k3 := Key("report", 3, 4, 1e-4); k3 == k1 {
		t.Error("different parts produced the same key")
	}
	if k4 := Key("page", 3, 4, 1e-5); k4 == k1 {
		t.Error("different prefixes produced the same key")
	}
	if len(k1) != len("report")+1+64 {
		t.Errorf("len(Key) = %d, want prefix + colon + 64 hex chars", len(k1))
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h2 := Hash([]byte("hello")); h1 != h2 {
		t.Error("Hash is not deterministic")
	}
	if h3 := Hash([]byte("world")); h1 == h3 {
		t.Error("different inputs produced the same hash")
	}
	if len(h1) != 64 {
		t.Errorf("len(Hash) = %d, want 64", len(h1))
	}
}
