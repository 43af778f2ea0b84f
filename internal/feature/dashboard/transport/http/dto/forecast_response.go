package dto

import (
	analyticsentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
	marketentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	marketdto "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/transport/http/dto"
)

// ForecastResponse carries a symbol's history together with its linear trend
// projection so the client can overlay both on one chart.
type ForecastResponse struct {
	Symbol     string                     `json:"symbol"`
	History    []marketdto.CandleResponse `json:"history"`
	Timestamps []string                   `json:"timestamps"` // future dates continuing the series
	Predicted  []float64                  `json:"predicted"`
	Slope      float64                    `json:"slope"`     // fitted price change per bar
	Intercept  float64                    `json:"intercept"` // fitted value at the first bar
}

// NewForecastResponse converts a fetched series and its forecast into the
// wire shape.
func NewForecastResponse(series marketentity.PriceSeries, fc analyticsentity.ForecastResult) ForecastResponse {
	ts := make([]string, len(fc.Timestamps))
	for i, t := range fc.Timestamps {
		ts[i] = t.UTC().Format(dateLayout)
	}
	predicted := fc.Predicted
	if predicted == nil {
		predicted = []float64{}
	}
	return ForecastResponse{
		Symbol:     fc.Symbol,
		History:    marketdto.NewCandleResponses(series),
		Timestamps: ts,
		Predicted:  predicted,
		Slope:      fc.Slope,
		Intercept:  fc.Intercept,
	}
}
