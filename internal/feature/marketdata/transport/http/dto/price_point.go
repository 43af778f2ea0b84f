package dto

import "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"

// PricePoint is one close price on the line-chart view of a series.
type PricePoint struct {
	Time  string  `json:"time"` // bar date, "2006-01-02"
	Value float64 `json:"value"`
}

// NewPricePoints converts a cleaned price series into time/close pairs.
// An empty series yields an empty array, never null.
func NewPricePoints(series entity.PriceSeries) []PricePoint {
	out := make([]PricePoint, 0, len(series.Bars))
	for _, b := range series.Bars {
		out = append(out, PricePoint{
			Time:  b.Time.UTC().Format("2006-01-02"),
			Value: b.Close,
		})
	}
	return out
}
