// Package entity defines the domain models for the marketdata feature.
package entity

import "time"

// PriceBar represents OHLCV (Open, High, Low, Close, Volume) data for one
// symbol over one aggregation period.
type PriceBar struct {
	Time   time.Time // Timestamp for the start of this bar period, UTC
	Open   float64   // Opening price
	High   float64   // Highest price during this period
	Low    float64   // Lowest price during this period
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// PriceSeries holds the cleaned bar history for one symbol.
// Bars are sorted by Time ascending and contain no duplicate timestamps;
// the fetch usecase enforces both before a series leaves that layer.
type PriceSeries struct {
	Symbol    string    // Ticker symbol (e.g., "AAPL", "7203.T")
	Interval  Interval  // Aggregation period of each bar
	Bars      []PriceBar
	FetchedAt time.Time // When this series was retrieved from the provider
}

// Len returns the number of bars in the series.
func (s PriceSeries) Len() int { return len(s.Bars) }

// Empty reports whether the series holds no bars.
func (s PriceSeries) Empty() bool { return len(s.Bars) == 0 }

// Closes returns the closing prices in bar order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

// Timestamps returns the bar timestamps in bar order.
func (s PriceSeries) Timestamps() []time.Time {
	out := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Time
	}
	return out
}
