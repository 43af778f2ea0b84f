// Package usecase implements the analytics derivations: returns, volatility,
// trend fitting and cross-symbol correlation.
package usecase

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
	mdentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultWindow is the rolling volatility window in bars.
	DefaultWindow = 20
	// MaxWindow is the largest accepted rolling window (one trading year).
	MaxWindow = 252
	// DefaultPeriodsPerYear is the annualization factor for daily bars.
	DefaultPeriodsPerYear = 252
)

// Transformer derives return and volatility series from cleaned price data.
// It is stateless; every method is a pure function of its inputs.
type Transformer struct{}

// NewTransformer creates a new Transformer.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Derive computes per-bar returns, compounded cumulative returns and rolling
// annualized volatility for one series. window and periodsPerYear fall back
// to the defaults when out of range. The returned slices are aligned with
// the source bars; entries that cannot be computed hold NaN.
func (t *Transformer) Derive(series mdentity.PriceSeries, window, periodsPerYear int) entity.DerivedMetrics {
	if window <= 0 || window > MaxWindow {
		window = DefaultWindow
	}
	if periodsPerYear <= 0 {
		periodsPerYear = DefaultPeriodsPerYear
	}

	n := series.Len()
	m := entity.DerivedMetrics{
		Symbol:            series.Symbol,
		Timestamps:        series.Timestamps(),
		DailyReturn:       nanSlice(n),
		CumulativeReturn:  nanSlice(n),
		RollingVolatility: nanSlice(n),
		Window:            window,
	}
	if n < 2 {
		return m
	}

	closes := series.Closes()
	for i := 1; i < n; i++ {
		prev := closes[i-1]
		// The prior close must be positive and finite for a meaningful return
		if !(prev > 0) || math.IsInf(prev, 0) {
			continue
		}
		m.DailyReturn[i] = closes[i]/prev - 1
	}

	// Compounded growth anchored at zero on the first bar. A NaN return
	// poisons every later entry, which is exactly the contract: once the
	// chain breaks the cumulative figure is no longer meaningful.
	m.CumulativeReturn[0] = 0
	acc := 1.0
	for i := 1; i < n; i++ {
		acc *= 1 + m.DailyReturn[i]
		m.CumulativeReturn[i] = acc - 1
	}

	// Rolling sample stddev over the trailing window of returns, annualized.
	// The first defined entry sits at index `window`: the window needs that
	// many returns and index 0 has none.
	ann := math.Sqrt(float64(periodsPerYear))
	for i := window; i < n; i++ {
		win := m.DailyReturn[i-window+1 : i+1]
		if hasNaN(win) {
			continue
		}
		m.RollingVolatility[i] = stat.StdDev(win, nil) * ann
	}
	return m
}

// Snapshot extracts the latest defined KPI values for one symbol. A metric
// with no defined entry stays unavailable rather than reading as zero.
func (t *Transformer) Snapshot(series mdentity.PriceSeries, m entity.DerivedMetrics) entity.KPISnapshot {
	snap := entity.KPISnapshot{Symbol: series.Symbol, Window: m.Window}
	if n := series.Len(); n > 0 {
		snap.LastClose = entity.KPIValue{Value: series.Bars[n-1].Close, Valid: true}
	}
	snap.CumulativeReturn = entity.LastDefined(m.CumulativeReturn)
	snap.Volatility = entity.LastDefined(m.RollingVolatility)
	return snap
}

// nanSlice returns a slice of n NaN values.
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// hasNaN reports whether xs contains any NaN entry.
func hasNaN(xs []float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}
