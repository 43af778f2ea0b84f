// Package dto defines data transfer objects for the dashboard HTTP API.
// Internally unavailable values travel as NaN, which encoding/json cannot
// represent, so every metric crosses the wire as a pointer that becomes null.
package dto

import (
	"time"

	analyticsentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/usecase"
	marketdto "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/transport/http/dto"
)

const dateLayout = "2006-01-02"

// MetricsView carries the derived series for one symbol, aligned with its
// bars. Gaps are JSON null.
type MetricsView struct {
	Timestamps        []string   `json:"timestamps"`
	DailyReturn       []*float64 `json:"daily_return"`
	CumulativeReturn  []*float64 `json:"cumulative_return"`
	RollingVolatility []*float64 `json:"rolling_volatility"`
	Window            int        `json:"window"`
}

// KPIView carries the headline numbers for one symbol's summary card.
type KPIView struct {
	Symbol           string   `json:"symbol"`
	LastClose        *float64 `json:"last_close"`
	CumulativeReturn *float64 `json:"cumulative_return"`
	Volatility       *float64 `json:"volatility"`
	Window           int      `json:"window"`
}

// CorrelationView is the symmetric correlation matrix for the heatmap.
type CorrelationView struct {
	Symbols []string     `json:"symbols"`
	Matrix  [][]*float64 `json:"matrix"`
}

// DashboardResponse is the full payload of one dashboard render.
type DashboardResponse struct {
	Symbols     []string                              `json:"symbols"`
	Series      map[string][]marketdto.CandleResponse `json:"series"`
	Metrics     map[string]MetricsView                `json:"metrics"`
	KPIs        map[string]KPIView                    `json:"kpis"`
	Correlation CorrelationView                       `json:"correlation"`
	Failures    map[string]string                     `json:"failures"`
	Window      int                                   `json:"window"`
	GeneratedAt string                                `json:"generated_at"` // RFC3339
}

// NewDashboardResponse converts the usecase payload into the wire shape.
func NewDashboardResponse(data usecase.DashboardData) DashboardResponse {
	out := DashboardResponse{
		Symbols:     data.Symbols,
		Series:      make(map[string][]marketdto.CandleResponse, len(data.Series)),
		Metrics:     make(map[string]MetricsView, len(data.Metrics)),
		KPIs:        make(map[string]KPIView, len(data.KPIs)),
		Correlation: newCorrelationView(data.Correlation),
		Failures:    make(map[string]string, len(data.Failures)),
		Window:      data.Window,
		GeneratedAt: data.GeneratedAt.UTC().Format(time.RFC3339),
	}
	if out.Symbols == nil {
		out.Symbols = []string{}
	}
	for sym, series := range data.Series {
		out.Series[sym] = marketdto.NewCandleResponses(series)
	}
	for sym, m := range data.Metrics {
		out.Metrics[sym] = newMetricsView(m)
	}
	for sym, k := range data.KPIs {
		out.KPIs[sym] = newKPIView(k)
	}
	for sym, err := range data.Failures {
		out.Failures[sym] = err.Error()
	}
	return out
}

func newMetricsView(m analyticsentity.DerivedMetrics) MetricsView {
	ts := make([]string, len(m.Timestamps))
	for i, t := range m.Timestamps {
		ts[i] = t.UTC().Format(dateLayout)
	}
	return MetricsView{
		Timestamps:        ts,
		DailyReturn:       nullable(m.DailyReturn),
		CumulativeReturn:  nullable(m.CumulativeReturn),
		RollingVolatility: nullable(m.RollingVolatility),
		Window:            m.Window,
	}
}

func newKPIView(k analyticsentity.KPISnapshot) KPIView {
	return KPIView{
		Symbol:           k.Symbol,
		LastClose:        k.LastClose.Ptr(),
		CumulativeReturn: k.CumulativeReturn.Ptr(),
		Volatility:       k.Volatility.Ptr(),
		Window:           k.Window,
	}
}

func newCorrelationView(m analyticsentity.CorrelationMatrix) CorrelationView {
	out := CorrelationView{
		Symbols: m.Symbols,
		Matrix:  make([][]*float64, len(m.Matrix)),
	}
	if out.Symbols == nil {
		out.Symbols = []string{}
	}
	for i, row := range m.Matrix {
		out.Matrix[i] = nullable(row)
	}
	return out
}

// nullable maps a metric slice to pointers, turning NaN gaps into JSON null.
func nullable(xs []float64) []*float64 {
	out := make([]*float64, len(xs))
	for i, v := range xs {
		if analyticsentity.Defined(v) {
			f := v
			out[i] = &f
		}
	}
	return out
}
