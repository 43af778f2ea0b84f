// Package usecase implements the business logic for market data retrieval.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
)

// DefaultLookback is how far back a fetch reaches when the caller does not
// provide a start date.
const DefaultLookback = 365 * 24 * time.Hour

// SeriesProvider abstracts the upstream market data source.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SeriesProvider interface {
	// FetchSeries returns the raw bars for one symbol over [start, end].
	// A symbol with no data in the range yields an empty slice, not an error.
	FetchSeries(ctx context.Context, symbol string, interval entity.Interval, start, end time.Time) ([]entity.PriceBar, error)
	// Name identifies the provider in logs and error messages.
	Name() string
}

// BatchResult carries the outcome of a multi-symbol fetch. Failures are kept
// per symbol so one unreachable ticker never hides the data of the others.
type BatchResult struct {
	Symbols  []string // Normalized symbols in request order
	Series   map[string]entity.PriceSeries
	Failures map[string]error
}

// FetchUsecase coordinates retrieval and cleaning of price series.
type FetchUsecase struct {
	provider SeriesProvider
	now      func() time.Time
}

// NewFetchUsecase creates a new FetchUsecase backed by the given provider.
func NewFetchUsecase(provider SeriesProvider) *FetchUsecase {
	return &FetchUsecase{provider: provider, now: time.Now}
}

// FetchBatch retrieves and cleans one PriceSeries per requested symbol.
// Request-level problems (no symbols, unknown interval, inverted range) fail
// the whole call; provider failures are recorded per symbol in the result so
// the remaining symbols still come back.
func (u *FetchUsecase) FetchBatch(ctx context.Context, symbols []string, interval entity.Interval, start, end time.Time) (BatchResult, error) {
	symbols = normalizeSymbols(symbols)
	if len(symbols) == 0 {
		return BatchResult{}, domain.ErrNoSymbols
	}
	interval, start, end, err := resolveQuery(interval, start, end, u.now())
	if err != nil {
		return BatchResult{}, err
	}

	res := BatchResult{
		Symbols:  symbols,
		Series:   make(map[string]entity.PriceSeries, len(symbols)),
		Failures: make(map[string]error),
	}
	for _, sym := range symbols {
		bars, err := u.provider.FetchSeries(ctx, sym, interval, start, end)
		if err != nil {
			// One failing symbol must not abort the batch
			slog.Warn("series fetch failed", "provider", u.provider.Name(), "symbol", sym, "error", err)
			res.Failures[sym] = fmt.Errorf("%w: %s: %v", domain.ErrDataUnavailable, sym, err)
			continue
		}
		res.Series[sym] = entity.PriceSeries{
			Symbol:    sym,
			Interval:  interval,
			Bars:      cleanBars(bars),
			FetchedAt: u.now().UTC(),
		}
	}
	return res, nil
}

// FetchOne retrieves and cleans the series for a single symbol. Unlike
// FetchBatch it surfaces the provider failure directly.
func (u *FetchUsecase) FetchOne(ctx context.Context, symbol string, interval entity.Interval, start, end time.Time) (entity.PriceSeries, error) {
	symbols := normalizeSymbols([]string{symbol})
	if len(symbols) == 0 {
		return entity.PriceSeries{}, domain.ErrNoSymbols
	}
	sym := symbols[0]
	interval, start, end, err := resolveQuery(interval, start, end, u.now())
	if err != nil {
		return entity.PriceSeries{}, err
	}

	bars, err := u.provider.FetchSeries(ctx, sym, interval, start, end)
	if err != nil {
		return entity.PriceSeries{}, fmt.Errorf("%w: %s: %v", domain.ErrDataUnavailable, sym, err)
	}
	return entity.PriceSeries{
		Symbol:    sym,
		Interval:  interval,
		Bars:      cleanBars(bars),
		FetchedAt: u.now().UTC(),
	}, nil
}

// resolveQuery validates the interval and fills in missing range endpoints.
// A zero end means "now"; a zero start means one DefaultLookback before end.
func resolveQuery(interval entity.Interval, start, end, now time.Time) (entity.Interval, time.Time, time.Time, error) {
	if interval == "" {
		interval = entity.DefaultInterval
	}
	if !interval.Valid() {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, interval)
	}
	if end.IsZero() {
		end = now
	}
	if start.IsZero() {
		start = end.Add(-DefaultLookback)
	}
	if start.After(end) {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: start %s after end %s",
			domain.ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return interval, start.UTC(), end.UTC(), nil
}

// normalizeSymbols trims whitespace, uppercases and deduplicates the input
// while preserving request order. Empty entries are dropped.
func normalizeSymbols(symbols []string) []string {
	out := make([]string, 0, len(symbols))
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// cleanBars prepares raw provider bars for analytics: sorts ascending by
// timestamp, drops bars without a positive finite close, and keeps the last
// bar seen for any duplicated timestamp.
func cleanBars(bars []entity.PriceBar) []entity.PriceBar {
	out := make([]entity.PriceBar, 0, len(bars))
	for _, b := range bars {
		// The comparison rejects NaN; +Inf passes it and needs its own check
		if !(b.Close > 0) || math.IsInf(b.Close, 0) {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	dedup := out[:0]
	for _, b := range out {
		if n := len(dedup); n > 0 && dedup[n-1].Time.Equal(b.Time) {
			dedup[n-1] = b
			continue
		}
		dedup = append(dedup, b)
	}
	return dedup
}
