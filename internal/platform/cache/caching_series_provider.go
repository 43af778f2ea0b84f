// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
)

// CachingSeriesProvider decorates a SeriesProvider with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying provider. With a nil Redis client every call goes
// straight through, so the terminal runs fine without Redis.
type CachingSeriesProvider struct {
	inner     usecase.SeriesProvider
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.SeriesProvider = (*CachingSeriesProvider)(nil)

// NewCachingSeriesProvider decorates a SeriesProvider with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "series".
func NewCachingSeriesProvider(rdb *redis.Client, ttl time.Duration, inner usecase.SeriesProvider, namespace string) *CachingSeriesProvider {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "series"
	}
	return &CachingSeriesProvider{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Name reports the decorated provider's name; the cache is invisible to callers.
func (c *CachingSeriesProvider) Name() string { return c.inner.Name() }

// FetchSeries retrieves bars, checking the cache first then falling back to
// the upstream provider.
func (c *CachingSeriesProvider) FetchSeries(ctx context.Context, symbol string, interval entity.Interval, start, end time.Time) ([]entity.PriceBar, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FetchSeries(ctx, symbol, interval, start, end)
	}

	key := c.cacheKey(symbol, interval, start, end)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.PriceBar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the upstream provider
	out, err := c.inner.FetchSeries(ctx, symbol, interval, start, end)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific query. Range endpoints are
// truncated to dates because that is the provider query granularity.
func (c *CachingSeriesProvider) cacheKey(symbol string, interval entity.Interval, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s",
		c.namespace,
		safe(symbol),
		safe(string(interval)),
		start.UTC().Format("2006-01-02"),
		end.UTC().Format("2006-01-02"),
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
