// Package handler provides HTTP handlers for the market data feature.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// parseRange reads the interval, start and end query parameters. Missing
// values come back as zero values and the usecase fills in its defaults.
func parseRange(c *gin.Context) (entity.Interval, time.Time, time.Time, error) {
	interval, ok := entity.ParseInterval(c.Query("interval"))
	if !ok {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, c.Query("interval"))
	}

	var start, end time.Time
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return "", time.Time{}, time.Time{}, fmt.Errorf("%w: start %q is not a %s date", domain.ErrInvalidRange, s, dateLayout)
		}
		start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return "", time.Time{}, time.Time{}, fmt.Errorf("%w: end %q is not a %s date", domain.ErrInvalidRange, s, dateLayout)
		}
		end = t
	}
	return interval, start, end, nil
}

// statusFor maps domain errors to HTTP status codes: bad input is the
// client's fault, upstream trouble is a gateway problem.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoSymbols),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
