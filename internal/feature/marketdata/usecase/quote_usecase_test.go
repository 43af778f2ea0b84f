package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
)

// mockQuoteProvider is a mock implementation of the QuoteProvider interface.
type mockQuoteProvider struct {
	FetchQuoteFunc func(ctx context.Context, symbol string) (entity.Quote, error)
}

func (m *mockQuoteProvider) FetchQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	if m.FetchQuoteFunc != nil {
		return m.FetchQuoteFunc(ctx, symbol)
	}
	return entity.Quote{}, errors.New("FetchQuoteFunc is not implemented")
}

func TestQuoteUsecase_GetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("success: symbol is normalized before the provider call", func(t *testing.T) {
		provider := &mockQuoteProvider{
			FetchQuoteFunc: func(ctx context.Context, symbol string) (entity.Quote, error) {
				if symbol != "AAPL" {
					t.Errorf("expected normalized symbol AAPL, got %q", symbol)
				}
				return entity.Quote{Symbol: symbol, Price: 231.5}, nil
			},
		}
		uc := usecase.NewQuoteUsecase(provider)

		q, err := uc.GetQuote(ctx, " aapl ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Price != 231.5 {
			t.Errorf("expected price 231.5, got %v", q.Price)
		}
	})

	t.Run("error: blank symbol", func(t *testing.T) {
		uc := usecase.NewQuoteUsecase(&mockQuoteProvider{})
		if _, err := uc.GetQuote(ctx, "   "); !errors.Is(err, domain.ErrNoSymbols) {
			t.Fatalf("expected ErrNoSymbols, got %v", err)
		}
	})

	t.Run("error: provider failure wraps ErrDataUnavailable", func(t *testing.T) {
		provider := &mockQuoteProvider{
			FetchQuoteFunc: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{}, errors.New("upstream 502")
			},
		}
		uc := usecase.NewQuoteUsecase(provider)

		_, err := uc.GetQuote(ctx, "AAPL")
		if !errors.Is(err, domain.ErrDataUnavailable) {
			t.Fatalf("expected ErrDataUnavailable, got %v", err)
		}
	})
}
