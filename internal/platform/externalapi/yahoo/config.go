// Package yahoo provides a market data client backed by the public Yahoo
// Finance chart and quote APIs.
package yahoo

import "time"

// DefaultTimeout bounds a single upstream call when the config does not set one.
const DefaultTimeout = 15 * time.Second

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	Timeout time.Duration // Per-request timeout; DefaultTimeout when zero
}
