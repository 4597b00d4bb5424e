package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// CachedClient decorates an API so read queries survive server outages.
// Every successful list response is shadowed to a JSON snapshot on disk,
// keyed by query shape; a transport failure falls back to the last snapshot
// (or an empty list) instead of erroring. Application-level errors from the
// server pass through untouched. Writes are never cached and never fall back.
type CachedClient struct {
	inner API
	dir   string
	log   *zap.Logger

	// fileMu serializes all snapshot reads and writes so the detached
	// persist goroutine never interleaves with a fallback read.
	fileMu sync.Mutex

	// stateMu guards the sticky offline flag, which is flipped from
	// whichever goroutine last attempted a read.
	stateMu sync.Mutex
	offline bool
}

func NewCachedClient(inner API, cacheDir string, log *zap.Logger) (*CachedClient, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.L()
	}
	return &CachedClient{inner: inner, dir: cacheDir, log: log}, nil
}

// Offline reports whether the most recent read fell back to a local snapshot.
func (c *CachedClient) Offline() bool {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.offline
}

func (c *CachedClient) ListItems(ctx context.Context) ([]Item, error) {
	return fetchWithCache(ctx, c, "items.json", c.inner.ListItems)
}

func (c *CachedClient) ListTypes(ctx context.Context) ([]ItemType, error) {
	return fetchWithCache(ctx, c, "types.json", c.inner.ListTypes)
}

func (c *CachedClient) ListCategories(ctx context.Context, typeID *int) ([]Category, error) {
	file := "categories.json"
	if typeID != nil {
		file = fmt.Sprintf("categories-%d.json", *typeID)
	}
	return fetchWithCache(ctx, c, file, func(ctx context.Context) ([]Category, error) {
		return c.inner.ListCategories(ctx, typeID)
	})
}

// Pass-throughs: no caching, no offline fallback, failures propagate.

func (c *CachedClient) GetItem(ctx context.Context, id int) (*Item, error) {
	return c.inner.GetItem(ctx, id)
}

func (c *CachedClient) SearchItems(ctx context.Context, query string) ([]Item, error) {
	return c.inner.SearchItems(ctx, query)
}

func (c *CachedClient) CreateItem(ctx context.Context, input ItemInput) (*Item, error) {
	return c.inner.CreateItem(ctx, input)
}

func (c *CachedClient) UpdateItem(ctx context.Context, id int, input ItemInput) (*Item, error) {
	return c.inner.UpdateItem(ctx, id, input)
}

func (c *CachedClient) DeleteItem(ctx context.Context, id int) (bool, error) {
	return c.inner.DeleteItem(ctx, id)
}

func fetchWithCache[T any](ctx context.Context, c *CachedClient, file string, call func(context.Context) ([]T, error)) ([]T, error) {
	result, err := call(ctx)
	if err == nil {
		c.setOffline(false)
		// Detached by contract: the caller cannot observe this write, and
		// its failure is logged but never surfaced.
		go c.writeSnapshot(file, result)
		return result, nil
	}

	var transport *TransportError
	if errors.As(err, &transport) {
		c.setOffline(true)
		return readSnapshot[T](c, file)
	}
	return nil, err
}

func (c *CachedClient) setOffline(offline bool) {
	c.stateMu.Lock()
	c.offline = offline
	c.stateMu.Unlock()
}

func (c *CachedClient) writeSnapshot(file string, data any) {
	c.fileMu.Lock()
	defer c.fileMu.Unlock()

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		c.log.Warn("cache snapshot marshal failed", zap.String("file", file), zap.Error(err))
		return
	}
	if err := os.WriteFile(filepath.Join(c.dir, file), payload, 0o644); err != nil {
		c.log.Warn("cache snapshot write failed", zap.String("file", file), zap.Error(err))
	}
}

func readSnapshot[T any](c *CachedClient, file string) ([]T, error) {
	c.fileMu.Lock()
	defer c.fileMu.Unlock()

	payload, err := os.ReadFile(filepath.Join(c.dir, file))
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		c.log.Warn("cache snapshot read failed", zap.String("file", file), zap.Error(err))
		return []T{}, nil
	}

	var data []T
	if err := json.Unmarshal(payload, &data); err != nil {
		c.log.Warn("cache snapshot decode failed", zap.String("file", file), zap.Error(err))
		return []T{}, nil
	}
	return data, nil
}
