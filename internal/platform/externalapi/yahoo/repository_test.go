package yahoo

import (
	"errors"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
)

func TestNewRepository_DefaultTimeout(t *testing.T) {
	t.Parallel()

	repo := NewRepository(Config{})
	if repo.timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, repo.timeout)
	}
	if repo.Name() != "yahoo" {
		t.Errorf("unexpected provider name %q", repo.Name())
	}

	repo = NewRepository(Config{Timeout: 3 * time.Second})
	if repo.timeout != 3*time.Second {
		t.Errorf("expected configured timeout, got %v", repo.timeout)
	}
}

func TestBarFromChart(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

	t.Run("converts decimals and epoch timestamp", func(t *testing.T) {
		t.Parallel()

		in := &finance.ChartBar{
			Open:      decimal.NewFromFloat(150.25),
			High:      decimal.NewFromFloat(155.5),
			Low:       decimal.NewFromFloat(149.75),
			Close:     decimal.NewFromFloat(154.1),
			Volume:    1234567,
			Timestamp: int(ts.Unix()),
		}

		bar, ok := barFromChart(in)
		if !ok {
			t.Fatal("expected bar to be accepted")
		}
		want := entity.PriceBar{Time: ts, Open: 150.25, High: 155.5, Low: 149.75, Close: 154.1, Volume: 1234567}
		if bar != want {
			t.Errorf("got %+v, want %+v", bar, want)
		}
	})

	t.Run("rejects non-positive close", func(t *testing.T) {
		t.Parallel()

		if _, ok := barFromChart(&finance.ChartBar{Close: decimal.Zero}); ok {
			t.Error("zero close should be rejected")
		}
		if _, ok := barFromChart(&finance.ChartBar{Close: decimal.NewFromFloat(-1)}); ok {
			t.Error("negative close should be rejected")
		}
	})

	t.Run("rejects nil", func(t *testing.T) {
		t.Parallel()

		if _, ok := barFromChart(nil); ok {
			t.Error("nil bar should be rejected")
		}
	})
}

func TestQuoteFromYahoo(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 6, 2, 20, 0, 0, 0, time.UTC)
	q := quoteFromYahoo(&finance.Quote{
		Symbol:                     "AAPL",
		ShortName:                  "Apple Inc.",
		CurrencyID:                 "USD",
		RegularMarketPrice:         231.5,
		RegularMarketChange:        2.25,
		RegularMarketChangePercent: 0.98,
		RegularMarketPreviousClose: 229.25,
		RegularMarketOpen:          230.0,
		RegularMarketDayHigh:       232.1,
		RegularMarketDayLow:        228.9,
		RegularMarketVolume:        55000000,
		MarketState:                "REGULAR",
		RegularMarketTime:          int(ts.Unix()),
	})

	if q.Symbol != "AAPL" || q.ShortName != "Apple Inc." || q.Currency != "USD" {
		t.Errorf("identity fields not mapped: %+v", q)
	}
	if q.Price != 231.5 || q.Change != 2.25 || q.ChangePercent != 0.98 {
		t.Errorf("price fields not mapped: %+v", q)
	}
	if q.Volume != 55000000 {
		t.Errorf("expected volume 55000000, got %d", q.Volume)
	}
	if q.MarketState != "REGULAR" {
		t.Errorf("expected market state REGULAR, got %q", q.MarketState)
	}
	if !q.Time.Equal(ts) {
		t.Errorf("expected time %v, got %v", ts, q.Time)
	}
}

func TestToYahooInterval(t *testing.T) {
	t.Parallel()

	tests := []struct {
		interval entity.Interval
		expected datetime.Interval
	}{
		{entity.IntervalDaily, datetime.OneDay},
		{entity.IntervalWeekly, datetime.Interval("1wk")},
		{entity.IntervalMonthly, datetime.OneMonth},
	}

	for _, tt := range tests {
		if got := toYahooInterval(tt.interval); got != tt.expected {
			t.Errorf("toYahooInterval(%q) = %q, want %q", tt.interval, got, tt.expected)
		}
	}
}

func TestIsNoData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"delisted symbol", errors.New("No data found, symbol may be delisted"), true},
		{"not found", errors.New("remote error: Not Found"), true},
		{"plain no data", errors.New("no data in requested range"), true},
		{"network failure", errors.New("dial tcp: connection refused"), false},
		{"server error", errors.New("remote error: internal error"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isNoData(tt.err); got != tt.expected {
				t.Errorf("isNoData(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
