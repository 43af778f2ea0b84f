// Package handler provides HTTP handlers for the dashboard feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	analyticsdomain "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain"
	analyticsentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/transport/http/dto"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/usecase"
	marketdomain "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	marketentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// DashboardUsecase is the interface for the render pipeline used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DashboardUsecase interface {
	GetDashboard(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error)
	GetForecast(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error)
}

// DashboardHandler handles HTTP requests for dashboard renders and forecasts.
type DashboardHandler struct {
	uc       DashboardUsecase
	defaults []string // symbols used when the request names none
}

// NewDashboardHandler creates a new DashboardHandler. defaultSymbols is the
// symbol set served when a request carries no symbols parameter.
func NewDashboardHandler(uc DashboardUsecase, defaultSymbols []string) *DashboardHandler {
	return &DashboardHandler{uc: uc, defaults: defaultSymbols}
}

// GetDashboardHandler returns the full dashboard payload: per-symbol series,
// derived metrics, KPI cards, the correlation matrix and any per-symbol fetch
// failures.
//
// Endpoint example:
// GET /api/dashboard?symbols=AAPL,MSFT&interval=1d&start=2025-01-02&end=2025-06-30&window=20
func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		symbols = h.defaults
	}
	interval, start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	window, _ := strconv.Atoi(c.DefaultQuery("window", "0"))

	data, err := h.uc.GetDashboard(c.Request.Context(), usecase.DashboardQuery{
		Symbols:  symbols,
		Interval: interval,
		Start:    start,
		End:      end,
		Window:   window,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(data))
}

// GetForecastHandler returns one symbol's history plus its linear trend
// projection.
//
// Endpoint example:
// GET /api/forecast/AAPL?interval=1d&horizon=10
func (h *DashboardHandler) GetForecastHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	interval, start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	horizon, _ := strconv.Atoi(c.DefaultQuery("horizon", "0"))

	series, fc, err := h.uc.GetForecast(c.Request.Context(), symbol, interval, start, end, horizon)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewForecastResponse(series, fc))
}

// splitSymbols turns the comma-separated symbols parameter into a slice.
// Normalization (trimming, casing, dedup) is the fetch layer's job.
func splitSymbols(q string) []string {
	if strings.TrimSpace(q) == "" {
		return nil
	}
	return strings.Split(q, ",")
}

// parseRange reads the interval, start and end query parameters. Missing
// values come back as zero values and the fetch layer fills in its defaults.
func parseRange(c *gin.Context) (marketentity.Interval, time.Time, time.Time, error) {
	interval, ok := marketentity.ParseInterval(c.Query("interval"))
	if !ok {
		return "", time.Time{}, time.Time{}, fmt.Errorf("%w: %q", marketdomain.ErrInvalidInterval, c.Query("interval"))
	}

	var start, end time.Time
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return "", time.Time{}, time.Time{}, fmt.Errorf("%w: start %q is not a %s date", marketdomain.ErrInvalidRange, s, dateLayout)
		}
		start = t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(dateLayout, s)
		if err != nil {
			return "", time.Time{}, time.Time{}, fmt.Errorf("%w: end %q is not a %s date", marketdomain.ErrInvalidRange, s, dateLayout)
		}
		end = t
	}
	return interval, start, end, nil
}

// statusFor maps domain errors to HTTP status codes: bad input is the
// client's fault, a series too short to analyze is unprocessable, upstream
// trouble is a gateway problem.
func statusFor(err error) int {
	switch {
	case errors.Is(err, marketdomain.ErrNoSymbols),
		errors.Is(err, marketdomain.ErrInvalidInterval),
		errors.Is(err, marketdomain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, analyticsdomain.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, marketdomain.ErrDataUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
