package cache

import (
	"context"
	"time"
)

// scopedCache prefixes every key so components can share one physical
// cache without colliding.
type scopedCache struct {
	inner  Cache
	prefix string
}

// Scoped returns a view of c whose keys all carry the given prefix.
// Closing the view is a no-op; the owner of the underlying cache remains
// responsible for closing it.
func Scoped(c Cache, prefix string) Cache {
	return &scopedCache{inner: c, prefix: prefix}
}

func (c *scopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

func (c *scopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

func (c *scopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

func (c *scopedCache) Close() error { return nil }

var _ Cache = (*scopedCache)(nil)
