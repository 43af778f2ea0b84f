package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
)

// QuoteProvider abstracts real-time quote retrieval. Not every series
// provider supports quotes, so this is a separate interface.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// QuoteUsecase provides business logic for real-time quote lookups.
type QuoteUsecase struct {
	provider QuoteProvider
}

// NewQuoteUsecase creates a new QuoteUsecase backed by the given provider.
func NewQuoteUsecase(provider QuoteProvider) *QuoteUsecase {
	return &QuoteUsecase{provider: provider}
}

// GetQuote returns the latest market snapshot for one symbol.
func (u *QuoteUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return entity.Quote{}, domain.ErrNoSymbols
	}
	q, err := u.provider.FetchQuote(ctx, symbol)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("%w: %s: %v", domain.ErrDataUnavailable, symbol, err)
	}
	return q, nil
}
