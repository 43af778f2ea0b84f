// Package stooq provides a market data client backed by stooq.com's CSV
// export endpoint. It needs no API key and serves as a fallback provider.
package stooq

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
)

const (
	// DefaultBaseURL is the production Stooq endpoint.
	DefaultBaseURL = "https://stooq.com"
	// DefaultTimeout bounds a single upstream call when the config does not set one.
	DefaultTimeout = 15 * time.Second
)

// Config holds configuration for the Stooq client.
type Config struct {
	BaseURL string        // Base URL; DefaultBaseURL when empty
	Timeout time.Duration // Per-request timeout; DefaultTimeout when zero
}

// Repository fetches historical price series from Stooq's CSV download API.
type Repository struct {
	client *resty.Client
}

// Compile-time check that Repository implements the SeriesProvider interface.
var _ usecase.SeriesProvider = (*Repository)(nil)

// NewRepository creates a Stooq repository with the given configuration.
func NewRepository(cfg Config) *Repository {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "text/csv")
	return &Repository{client: client}
}

// Name identifies the provider in logs and error messages.
func (r *Repository) Name() string { return "stooq" }

// FetchSeries retrieves the bars for one symbol over [start, end]. Stooq
// answers unknown symbols and empty ranges with a "No data" body, which maps
// to an empty slice.
func (r *Repository) FetchSeries(ctx context.Context, symbol string, interval entity.Interval, start, end time.Time) ([]entity.PriceBar, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"s":  toStooqSymbol(symbol),
			"d1": start.Format("20060102"),
			"d2": end.Format("20060102"),
			"i":  toStooqInterval(interval),
		}).
		Get("/q/d/l/")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("stooq http %d", resp.StatusCode())
	}
	return parseCSV(resp.Body())
}

// parseCSV turns Stooq's Date,Open,High,Low,Close,Volume export into bars.
// Columns are resolved by header name, and rows that do not parse (Stooq
// pads thin instruments with "N/D" cells) are skipped.
func parseCSV(body []byte) ([]entity.PriceBar, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || strings.HasPrefix(strings.ToLower(trimmed), "no data") {
		return nil, nil
	}

	reader := csv.NewReader(strings.NewReader(trimmed))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "open", "high", "low", "close"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv missing column %q", required)
		}
	}

	bars := make([]entity.PriceBar, 0, len(records)-1)
	for _, rec := range records[1:] {
		if bar, ok := parseRow(rec, col); ok {
			bars = append(bars, bar)
		}
	}
	return bars, nil
}

func parseRow(rec []string, col map[string]int) (entity.PriceBar, bool) {
	field := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	tm, err := time.Parse("2006-01-02", field("date"))
	if err != nil {
		return entity.PriceBar{}, false
	}
	o, errO := strconv.ParseFloat(field("open"), 64)
	h, errH := strconv.ParseFloat(field("high"), 64)
	l, errL := strconv.ParseFloat(field("low"), 64)
	c, errC := strconv.ParseFloat(field("close"), 64)
	if errO != nil || errH != nil || errL != nil || errC != nil {
		return entity.PriceBar{}, false
	}

	// Volume is absent for indices and currencies
	vol, _ := strconv.ParseInt(field("volume"), 10, 64)

	return entity.PriceBar{Time: tm.UTC(), Open: o, High: h, Low: l, Close: c, Volume: vol}, true
}

// toStooqSymbol lowercases the ticker and qualifies bare symbols with the US
// market suffix, which is what Stooq expects for NYSE/Nasdaq names.
func toStooqSymbol(symbol string) string {
	s := strings.ToLower(strings.TrimSpace(symbol))
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}

// toStooqInterval maps the domain interval onto Stooq's interval codes.
func toStooqInterval(interval entity.Interval) string {
	switch interval {
	case entity.IntervalWeekly:
		return "w"
	case entity.IntervalMonthly:
		return "m"
	default:
		return "d"
	}
}
