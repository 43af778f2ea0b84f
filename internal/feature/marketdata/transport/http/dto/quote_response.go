package dto

import (
	"time"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
)

// QuoteResponse is a live quote as rendered to clients.
type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Currency      string  `json:"currency"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	PreviousClose float64 `json:"previous_close"`
	Open          float64 `json:"open"`
	DayHigh       float64 `json:"day_high"`
	DayLow        float64 `json:"day_low"`
	Volume        int64   `json:"volume"`
	MarketState   string  `json:"market_state"`
	Time          string  `json:"time"` // RFC3339
}

// NewQuoteResponse converts a domain quote into the wire shape.
func NewQuoteResponse(q entity.Quote) QuoteResponse {
	return QuoteResponse{
		Symbol:        q.Symbol,
		Name:          q.ShortName,
		Currency:      q.Currency,
		Price:         q.Price,
		Change:        q.Change,
		ChangePercent: q.ChangePercent,
		PreviousClose: q.PreviousClose,
		Open:          q.Open,
		DayHigh:       q.DayHigh,
		DayLow:        q.DayLow,
		Volume:        q.Volume,
		MarketState:   q.MarketState,
		Time:          q.Time.UTC().Format(time.RFC3339),
	}
}
