// Package handler provides HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"net/http"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// SymbolUsecase is the interface for watchlist operations used by the handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler handles HTTP requests for the watchlist.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List returns the enabled watchlist entries as [{code, name}].
// The dashboard shell uses this to populate its symbol picker.
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{Code: s.Code, Name: s.Name})
	}
	c.JSON(http.StatusOK, out)
}
