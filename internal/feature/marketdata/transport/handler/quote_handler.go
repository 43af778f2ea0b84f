package handler

import (
	"context"
	"net/http"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// QuoteUsecase is the interface for quote lookups used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type QuoteUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// QuoteHandler handles HTTP requests for live quotes.
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuoteHandler returns the latest market snapshot for one symbol.
//
// Endpoint example:
// GET /api/quote/AAPL
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	q, err := h.uc.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}
