package fetch

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"tuicomplete/internal/domain"
)

// Cached memoizes successful lookups of another Fetcher.
// Failures are never cached so a later keystroke can retry.
type Cached struct {
	next  Fetcher
	cache *lru.Cache[string, domain.ResultSet]
}

// NewCached wraps next with an LRU of the given size
func NewCached(next Fetcher, size int) (*Cached, error) {
	cache, err := lru.New[string, domain.ResultSet](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch cache: %w", err)
	}
	return &Cached{next: next, cache: cache}, nil
}

func (c *Cached) Fetch(ctx context.Context, query string, n int) (domain.ResultSet, error) {
	key := fmt.Sprintf("%d\x00%s", n, query)
	if results, ok := c.cache.Get(key); ok {
		return results, nil
	}

	results, err := c.next.Fetch(ctx, query, n)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, results)
	return results, nil
}

// Len reports how many lookups are cached
func (c *Cached) Len() int {
	return c.cache.Len()
}
