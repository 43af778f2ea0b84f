package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// CandleUsecase is the interface for series retrieval used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CandleUsecase interface {
	FetchOne(ctx context.Context, symbol string, interval entity.Interval, start, end time.Time) (entity.PriceSeries, error)
}

// CandleHandler handles HTTP requests for OHLCV bars.
type CandleHandler struct {
	uc CandleUsecase
}

// NewCandleHandler creates a new CandleHandler.
func NewCandleHandler(uc CandleUsecase) *CandleHandler {
	return &CandleHandler{uc: uc}
}

// GetCandlesHandler returns the cleaned bars for one symbol as a JSON array:
// full OHLCV records by default, time/close pairs with view=line. A symbol
// with no data in the range yields an empty array.
//
// Endpoint example:
// GET /api/candles/AAPL?interval=1d&start=2025-01-02&end=2025-06-30&view=line
func (h *CandleHandler) GetCandlesHandler(c *gin.Context) {
	symbol := c.Param("symbol")
	view := c.DefaultQuery("view", "candles")
	if view != "candles" && view != "line" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("view %q is not one of candles, line", view)})
		return
	}
	interval, start, end, err := parseRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.uc.FetchOne(c.Request.Context(), symbol, interval, start, end)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	if view == "line" {
		c.JSON(http.StatusOK, dto.NewPricePoints(series))
		return
	}
	c.JSON(http.StatusOK, dto.NewCandleResponses(series))
}
