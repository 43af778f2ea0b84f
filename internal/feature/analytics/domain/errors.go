// Package domain defines domain-level errors for the analytics feature.
package domain

import "errors"

var (
	// ErrInsufficientData indicates that a series does not hold enough bars
	// for the requested computation (e.g., fitting a trend needs at least two
	// points).
	ErrInsufficientData = errors.New("insufficient data")
)
