// Package entity defines the domain models for the analytics feature.
package entity

import (
	"math"
	"time"
)

// DerivedMetrics carries the return and volatility series derived from one
// price series. All slices are aligned index-for-index with the source bars;
// entries that cannot be computed (warm-up window, missing prior close) hold
// NaN so downstream layers can render gaps instead of fake zeros.
type DerivedMetrics struct {
	Symbol            string
	Timestamps        []time.Time
	DailyReturn       []float64 // close[i]/close[i-1] - 1; NaN at index 0
	CumulativeReturn  []float64 // Compounded growth since the first bar
	RollingVolatility []float64 // Annualized stddev of returns over Window bars
	Window            int       // Rolling window actually used
}

// Defined reports whether v holds a computed value rather than the NaN
// "unavailable" marker.
func Defined(v float64) bool { return !math.IsNaN(v) }

// KPIValue is a scalar metric that may be unavailable. The zero value means
// "no data".
type KPIValue struct {
	Value float64
	Valid bool
}

// Ptr returns the value as a pointer for JSON shaping: nil when unavailable.
func (v KPIValue) Ptr() *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Value
	return &f
}

// LastDefined returns the last non-NaN entry of xs as a KPIValue.
func LastDefined(xs []float64) KPIValue {
	for i := len(xs) - 1; i >= 0; i-- {
		if Defined(xs[i]) {
			return KPIValue{Value: xs[i], Valid: true}
		}
	}
	return KPIValue{}
}

// KPISnapshot holds the latest headline values for one symbol, shown as the
// dashboard's summary cards.
type KPISnapshot struct {
	Symbol           string
	LastClose        KPIValue
	CumulativeReturn KPIValue
	Volatility       KPIValue
	Window           int
}

// ForecastResult is the fitted linear trend of a close series extrapolated
// beyond its last bar.
type ForecastResult struct {
	Symbol     string
	Timestamps []time.Time   // Future timestamps continuing the series
	Predicted  []float64     // Trend values at those timestamps
	Slope      float64       // Fitted price change per bar
	Intercept  float64       // Fitted value at bar index 0
	Step       time.Duration // Spacing used to extend the timestamps
}

// CorrelationMatrix holds the pairwise return correlations for a symbol set.
// Matrix[i][j] is the correlation between Symbols[i] and Symbols[j]; entries
// that cannot be computed hold NaN.
type CorrelationMatrix struct {
	Symbols     []string
	Matrix      [][]float64
	GeneratedAt time.Time
}

// Empty reports whether the matrix holds no symbols.
func (m CorrelationMatrix) Empty() bool { return len(m.Symbols) == 0 }
