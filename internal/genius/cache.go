package genius

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sukalov/lyrical/internal/logger"
)

const cacheKeyPrefix = "lyrical:search:"

// CacheStore keeps raw byte blobs under string keys. ok is false on a miss.
type CacheStore interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// CachedCatalog serves repeated queries from a CacheStore. Store failures
// are logged and the query falls through to the wrapped catalog.
type CachedCatalog struct {
	next  Catalog
	store CacheStore
	ttl   time.Duration
}

func NewCachedCatalog(next Catalog, store CacheStore, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, store: store, ttl: ttl}
}

func (c *CachedCatalog) Query(ctx context.Context, query string) ([]CatalogEntry, error) {
	key := cacheKeyPrefix + query

	data, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		logger.Warn(fmt.Sprintf("search cache read failed for `%s`: %v", query, err))
	case ok:
		var entries []CatalogEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			logger.Debug(fmt.Sprintf("search cache hit for `%s`", query))
			return entries, nil
		}
		logger.Warn(fmt.Sprintf("search cache entry for `%s` is corrupt, refetching", query))
	}

	entries, err := c.next.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(entries)
	if err != nil {
		return entries, nil
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		logger.Warn(fmt.Sprintf("search cache write failed for `%s`: %v", query, err))
	}

	return entries, nil
}
