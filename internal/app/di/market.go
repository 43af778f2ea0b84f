// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/cache"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/config"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/externalapi/stooq"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/externalapi/twelvedata"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/externalapi/yahoo"
	infrahttp "github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/http"
)

// NewSeriesProvider creates the series provider named by cfg.Provider, wrapped
// in the Redis cache decorator when a client is given. A nil rdb means the
// terminal runs without caching.
func NewSeriesProvider(cfg *config.Config, rdb *redis.Client) (usecase.SeriesProvider, error) {
	var provider usecase.SeriesProvider
	switch cfg.Provider {
	case "yahoo":
		provider = yahoo.NewRepository(yahoo.Config{Timeout: cfg.FetchTimeout()})
	case "twelvedata":
		httpClient := infrahttp.NewHTTPClient(cfg.FetchTimeout())
		provider = twelvedata.NewRepository(twelvedata.Config{
			APIKey:  cfg.TwelveData.APIKey,
			BaseURL: cfg.TwelveData.BaseURL,
		}, httpClient)
	case "stooq":
		provider = stooq.NewRepository(stooq.Config{Timeout: cfg.FetchTimeout()})
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, cfg.Provider)
	}

	if rdb != nil {
		return cache.NewCachingSeriesProvider(rdb, cfg.CacheTTL(), provider, "series"), nil
	}
	return provider, nil
}

// NewQuoteProvider creates the live quote source. Quotes always come from
// Yahoo regardless of which provider serves the historical bars: it is the
// only key-less quote API wired in, and the quote strip is a cosmetic extra.
func NewQuoteProvider(cfg *config.Config) usecase.QuoteProvider {
	return yahoo.NewRepository(yahoo.Config{Timeout: cfg.FetchTimeout()})
}
