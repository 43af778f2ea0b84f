package yahoo

import (
	"context"
	"fmt"
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
)

// Repository fetches historical bars and real-time quotes from Yahoo Finance.
// It is the default provider because it needs no API key.
type Repository struct {
	timeout time.Duration
}

// Compile-time checks that Repository implements both provider interfaces.
var (
	_ usecase.SeriesProvider = (*Repository)(nil)
	_ usecase.QuoteProvider  = (*Repository)(nil)
)

// NewRepository creates a Yahoo Finance repository.
func NewRepository(cfg Config) *Repository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Repository{timeout: timeout}
}

// Name identifies the provider in logs and error messages.
func (r *Repository) Name() string { return "yahoo" }

// FetchSeries retrieves the bars for one symbol over [start, end] from the
// chart API. A symbol or range Yahoo has nothing for yields an empty slice.
//
// The finance-go chart iterator performs its own HTTP call without taking a
// context, so the call runs in a goroutine and is abandoned on timeout.
func (r *Repository) FetchSeries(ctx context.Context, symbol string, interval entity.Interval, start, end time.Time) ([]entity.PriceBar, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		bars []entity.PriceBar
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		bars, err := fetchChart(symbol, interval, start, end)
		ch <- result{bars: bars, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, ctx.Err())
	case res := <-ch:
		return res.bars, res.err
	}
}

// FetchQuote retrieves the latest market snapshot for one symbol.
func (r *Repository) FetchQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		q   *finance.Quote
		err error
	}
	ch := make(chan result, 1)
	go func() {
		q, err := quote.Get(symbol)
		ch <- result{q: q, err: err}
	}()

	select {
	case <-ctx.Done():
		return entity.Quote{}, fmt.Errorf("yahoo quote %s: %w", symbol, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return entity.Quote{}, fmt.Errorf("yahoo quote %s: %v", symbol, res.err)
		}
		if res.q == nil {
			return entity.Quote{}, fmt.Errorf("yahoo quote %s: empty response", symbol)
		}
		return quoteFromYahoo(res.q), nil
	}
}

func fetchChart(symbol string, interval entity.Interval, start, end time.Time) ([]entity.PriceBar, error) {
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: toYahooInterval(interval),
	})

	bars := make([]entity.PriceBar, 0, 64)
	for iter.Next() {
		if b, ok := barFromChart(iter.Bar()); ok {
			bars = append(bars, b)
		}
	}
	if err := iter.Err(); err != nil {
		if isNoData(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("yahoo chart %s: %v", symbol, err)
	}
	return bars, nil
}

// barFromChart converts one chart bar to the domain model. Bars without a
// positive close (halted sessions, padding rows) are rejected.
func barFromChart(b *finance.ChartBar) (entity.PriceBar, bool) {
	if b == nil {
		return entity.PriceBar{}, false
	}
	c := b.Close.InexactFloat64()
	if !(c > 0) {
		return entity.PriceBar{}, false
	}
	return entity.PriceBar{
		Time:   time.Unix(int64(b.Timestamp), 0).UTC(),
		Open:   b.Open.InexactFloat64(),
		High:   b.High.InexactFloat64(),
		Low:    b.Low.InexactFloat64(),
		Close:  c,
		Volume: int64(b.Volume),
	}, true
}

func quoteFromYahoo(q *finance.Quote) entity.Quote {
	return entity.Quote{
		Symbol:        q.Symbol,
		ShortName:     q.ShortName,
		Currency:      q.CurrencyID,
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		PreviousClose: q.RegularMarketPreviousClose,
		Open:          q.RegularMarketOpen,
		DayHigh:       q.RegularMarketDayHigh,
		DayLow:        q.RegularMarketDayLow,
		Volume:        int64(q.RegularMarketVolume),
		MarketState:   string(q.MarketState),
		Time:          time.Unix(int64(q.RegularMarketTime), 0).UTC(),
	}
}

// toYahooInterval maps the domain interval onto Yahoo chart intervals.
// datetime has no weekly constant, so the raw API value is used.
func toYahooInterval(interval entity.Interval) datetime.Interval {
	switch interval {
	case entity.IntervalWeekly:
		return datetime.Interval("1wk")
	case entity.IntervalMonthly:
		return datetime.OneMonth
	default:
		return datetime.OneDay
	}
}

// isNoData reports whether the chart error means "nothing to return" rather
// than a transport or provider failure. Yahoo phrases this a few ways.
func isNoData(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no data") ||
		strings.Contains(msg, "not found") ||
		strings.Contains(msg, "delisted")
}
