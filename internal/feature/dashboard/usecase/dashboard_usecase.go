// Package usecase composes market data retrieval with analytics into the
// payloads the dashboard shell renders. Every request carries its full input
// state, so a change of symbols, range or window on the client is simply a new
// call through this package.
package usecase

import (
	"context"
	"fmt"
	"time"

	analyticsentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
	analytics "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/usecase"
	marketdomain "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	marketentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	market "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
)

// MarketFetcher abstracts the series retrieval layer.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketFetcher interface {
	FetchBatch(ctx context.Context, symbols []string, interval marketentity.Interval, start, end time.Time) (market.BatchResult, error)
	FetchOne(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time) (marketentity.PriceSeries, error)
}

// DashboardQuery is the complete input state of one dashboard render.
type DashboardQuery struct {
	Symbols  []string
	Interval marketentity.Interval
	Start    time.Time
	End      time.Time
	Window   int // rolling volatility window in bars, 0 means configured default
}

// DashboardData is everything one dashboard render needs: per-symbol series,
// derived metrics and KPIs, the cross-symbol correlation matrix, and the
// fetch failures that kept symbols out of the rest of the payload.
type DashboardData struct {
	Symbols     []string // normalized request order, failed symbols included
	Series      map[string]marketentity.PriceSeries
	Metrics     map[string]analyticsentity.DerivedMetrics
	KPIs        map[string]analyticsentity.KPISnapshot
	Correlation analyticsentity.CorrelationMatrix
	Failures    map[string]error
	Window      int // effective volatility window
	GeneratedAt time.Time
}

// DashboardUsecase runs the fetch, derive, correlate pipeline.
type DashboardUsecase struct {
	fetcher     MarketFetcher
	transformer analytics.Transformer
	forecaster  analytics.Forecaster
	correlator  analytics.Correlator
	window      int // default volatility window from config
	horizon     int // default forecast horizon from config
	now         func() time.Time
}

// NewDashboardUsecase creates a DashboardUsecase. window and horizon are the
// configured defaults applied when a query leaves them unset; zero falls back
// to the analytics package defaults.
func NewDashboardUsecase(fetcher MarketFetcher, window, horizon int) *DashboardUsecase {
	return &DashboardUsecase{
		fetcher: fetcher,
		window:  window,
		horizon: horizon,
		now:     time.Now,
	}
}

// GetDashboard produces the full dashboard payload for one query. Per-symbol
// fetch failures are reported in DashboardData.Failures and never abort the
// request; the call errors only when the query itself is invalid or when not
// a single symbol returned data.
func (u *DashboardUsecase) GetDashboard(ctx context.Context, q DashboardQuery) (DashboardData, error) {
	batch, err := u.fetcher.FetchBatch(ctx, q.Symbols, q.Interval, q.Start, q.End)
	if err != nil {
		return DashboardData{}, err
	}

	window := u.resolveWindow(q.Window)
	data := DashboardData{
		Symbols:     batch.Symbols,
		Series:      batch.Series,
		Metrics:     make(map[string]analyticsentity.DerivedMetrics, len(batch.Series)),
		KPIs:        make(map[string]analyticsentity.KPISnapshot, len(batch.Series)),
		Failures:    batch.Failures,
		GeneratedAt: u.now().UTC(),
	}

	fetched := make([]string, 0, len(batch.Symbols))
	for _, sym := range batch.Symbols {
		series, ok := batch.Series[sym]
		if !ok {
			// Fetch failed, already recorded in Failures
			continue
		}
		m := u.transformer.Derive(series, window, analytics.DefaultPeriodsPerYear)
		data.Metrics[sym] = m
		data.KPIs[sym] = u.transformer.Snapshot(series, m)
		data.Window = m.Window
		fetched = append(fetched, sym)
	}
	if len(fetched) == 0 {
		return DashboardData{}, fmt.Errorf("%w: every requested symbol failed", marketdomain.ErrDataUnavailable)
	}

	if len(fetched) >= 2 {
		data.Correlation = u.correlator.Matrix(fetched, data.Metrics)
	}
	return data, nil
}

// GetForecast fetches one symbol's series and extends it with a linear trend
// projection. The history comes back alongside the forecast so the client can
// overlay both.
func (u *DashboardUsecase) GetForecast(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error) {
	series, err := u.fetcher.FetchOne(ctx, symbol, interval, start, end)
	if err != nil {
		return marketentity.PriceSeries{}, analyticsentity.ForecastResult{}, err
	}
	fc, err := u.forecaster.Forecast(series, u.resolveHorizon(horizon))
	if err != nil {
		return marketentity.PriceSeries{}, analyticsentity.ForecastResult{}, err
	}
	return series, fc, nil
}

func (u *DashboardUsecase) resolveWindow(window int) int {
	if window > 0 {
		return window
	}
	return u.window
}

func (u *DashboardUsecase) resolveHorizon(horizon int) int {
	if horizon > 0 {
		return horizon
	}
	return u.horizon
}
