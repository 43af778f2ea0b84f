// Package domain defines domain-level errors for the marketdata feature.
package domain

import "errors"

// Domain errors for market data retrieval.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrDataUnavailable indicates that the upstream market data provider could
	// not deliver usable data for a symbol (network failure, provider error,
	// malformed payload).
	ErrDataUnavailable = errors.New("market data unavailable")

	// ErrNoSymbols indicates that a request did not name any symbol to fetch.
	ErrNoSymbols = errors.New("no symbols requested")

	// ErrInvalidInterval indicates that the requested bar interval is not one
	// of the supported values.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrInvalidRange indicates that the requested date range is malformed or
	// has a start date after its end date.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrUnknownProvider indicates that the configured provider name does not
	// match any registered market data source.
	ErrUnknownProvider = errors.New("unknown market data provider")
)
