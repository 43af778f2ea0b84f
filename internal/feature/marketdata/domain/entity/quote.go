package entity

import "time"

// Quote represents a real-time (or latest available) market snapshot for one
// symbol, as opposed to the historical bars in a PriceSeries.
type Quote struct {
	Symbol        string
	ShortName     string
	Currency      string
	Price         float64
	Change        float64 // Absolute change versus the previous close
	ChangePercent float64 // Percentage change versus the previous close
	PreviousClose float64
	Open          float64
	DayHigh       float64
	DayLow        float64
	Volume        int64
	MarketState   string    // e.g., "REGULAR", "CLOSED", "PRE"
	Time          time.Time // Provider timestamp of the snapshot, UTC
}
