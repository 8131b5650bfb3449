package advisor

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached memoizes successful answers per query for ttl. Errors are never
// cached.
type Cached struct {
	next  Advisor
	cache *cache.Cache
}

// NewCached wraps next. A non-positive ttl returns next unchanged.
func NewCached(next Advisor, ttl time.Duration) Advisor {
	if ttl <= 0 {
		return next
	}
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Answer(ctx context.Context, query string) (string, error) {
	if v, ok := c.cache.Get(query); ok {
		return v.(string), nil
	}
	answer, err := c.next.Answer(ctx, query)
	if err != nil {
		return "", err
	}
	c.cache.Set(query, answer, cache.DefaultExpiration)
	return answer, nil
}

func (c *Cached) Status(ctx context.Context) Status {
	return c.next.Status(ctx)
}

// Flush drops every cached answer.
func (c *Cached) Flush() {
	c.cache.Flush()
}
