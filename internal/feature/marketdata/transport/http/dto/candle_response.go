// Package dto defines data transfer objects for the market data HTTP API.
package dto

import "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"

// CandleResponse is one OHLCV bar as rendered to clients.
type CandleResponse struct {
	Time   string  `json:"time"` // bar date, "2006-01-02"
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// NewCandleResponses converts a cleaned price series into the wire shape.
// An empty series yields an empty array, never null.
func NewCandleResponses(series entity.PriceSeries) []CandleResponse {
	out := make([]CandleResponse, 0, len(series.Bars))
	for _, b := range series.Bars {
		out = append(out, CandleResponse{
			Time:   b.Time.UTC().Format("2006-01-02"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return out
}
