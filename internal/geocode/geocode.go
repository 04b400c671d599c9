// Package geocode resolves free-text shipping addresses to coordinates.
// Lookups never fail the caller: an unresolvable address yields nil.
package geocode

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"
)

// Point is a resolved coordinate pair
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Resolver performs a single uncached lookup. A nil point with a nil error
// means the service had no match.
type Resolver interface {
	Search(ctx context.Context, query string) (*Point, error)
}

// Cache stores resolved points. found=false with a nil error is a miss.
type Cache interface {
	Get(ctx context.Context, key string) (point *Point, found bool, err error)
	Set(ctx context.Context, key string, point *Point, ttl time.Duration) error
}

// Client resolves addresses with a cache in front of the resolver
type Client struct {
	resolver Resolver
	cache    Cache
	logger   *slog.Logger
	ttl      time.Duration
}

// NewClient creates a Client. cache may be nil.
func NewClient(resolver Resolver, cache Cache, ttl time.Duration, logger *slog.Logger) *Client {
	return &Client{
		resolver: resolver,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// Lookup tries the full address first, then the coarse one.
func (c *Client) Lookup(ctx context.Context, full, coarse string) *Point {
	for _, query := range []string{full, coarse} {
		query = strings.TrimSpace(query)
		if query == "" || query == "," {
			continue
		}
		if p := c.lookupOne(ctx, query); p != nil {
			return p
		}
	}

	c.logger.Warn("address could not be geocoded", "address", full)
	return nil
}

func (c *Client) lookupOne(ctx context.Context, query string) *Point {
	key := cacheKey(query)

	if c.cache != nil {
		p, found, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("geocode cache read failed", "error", err)
		} else if found {
			return p
		}
	}

	p, err := c.resolver.Search(ctx, query)
	if err != nil {
		c.logger.Warn("geocode lookup failed", "query", query, "error", err)
		return nil
	}

	if c.cache != nil && p != nil {
		if err := c.cache.Set(ctx, key, p, c.ttl); err != nil {
			c.logger.Warn("geocode cache write failed", "error", err)
		}
	}
	return p
}

func cacheKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(query)))
	return "layaway:geocode:" + hex.EncodeToString(sum[:])
}
