// Package entity defines the domain models for the watchlist feature.
package entity

// Symbol represents a tracked ticker symbol in the watchlist.
// Entries come from the application config rather than a database,
// so identity is the code itself.
type Symbol struct {
	Code    string // ticker symbol, e.g. "AAPL"
	Name    string // display name, e.g. "Apple Inc."
	SortKey int    // display ordering, lower first
	Enabled bool   // disabled entries stay in config but are hidden
}
