package usecase

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
	mdentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
)

const (
	// DefaultHorizon is the number of future bars predicted when the caller
	// does not specify one.
	DefaultHorizon = 10
	// MaxHorizon is the largest accepted forecast horizon.
	MaxHorizon = 365
)

// Forecaster fits the illustrative linear trend shown as the dashboard's
// forecast overlay. It deliberately models price against bar index, not
// wall-clock time, so weekend and holiday gaps do not warp the fit.
type Forecaster struct{}

// NewForecaster creates a new Forecaster.
func NewForecaster() *Forecaster {
	return &Forecaster{}
}

// Forecast fits close ~ index by ordinary least squares and extrapolates
// horizon future points. horizon falls back to DefaultHorizon when out of
// range. Future timestamps continue the series using its most common bar
// spacing.
func (f *Forecaster) Forecast(series mdentity.PriceSeries, horizon int) (entity.ForecastResult, error) {
	if horizon <= 0 || horizon > MaxHorizon {
		horizon = DefaultHorizon
	}
	n := series.Len()
	if n < 2 {
		return entity.ForecastResult{}, fmt.Errorf("%w: linear trend needs at least 2 bars, got %d", domain.ErrInsufficientData, n)
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	alpha, beta := stat.LinearRegression(xs, series.Closes(), nil, false)

	step := modalStep(series.Timestamps())
	res := entity.ForecastResult{
		Symbol:     series.Symbol,
		Timestamps: make([]time.Time, 0, horizon),
		Predicted:  make([]float64, 0, horizon),
		Slope:      beta,
		Intercept:  alpha,
		Step:       step,
	}
	last := series.Bars[n-1].Time
	for k := 1; k <= horizon; k++ {
		res.Timestamps = append(res.Timestamps, last.Add(time.Duration(k)*step))
		res.Predicted = append(res.Predicted, alpha+beta*float64(n-1+k))
	}
	return res, nil
}

// modalStep returns the most frequent gap between consecutive timestamps,
// preferring the smallest gap on ties. It falls back to 24h when the series
// has fewer than two bars.
func modalStep(ts []time.Time) time.Duration {
	if len(ts) < 2 {
		return 24 * time.Hour
	}
	counts := make(map[time.Duration]int, len(ts)-1)
	for i := 1; i < len(ts); i++ {
		counts[ts[i].Sub(ts[i-1])]++
	}
	var best time.Duration
	bestCount := 0
	for gap, count := range counts {
		if count > bestCount || (count == bestCount && gap < best) {
			best, bestCount = gap, count
		}
	}
	return best
}
