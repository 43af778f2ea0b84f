package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/transport/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockQuoteUsecase is a mock implementation of the QuoteUsecase interface.
type mockQuoteUsecase struct {
	GetQuoteFunc func(ctx context.Context, symbol string) (entity.Quote, error)
}

func (m *mockQuoteUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	return m.GetQuoteFunc(ctx, symbol)
}

// TestQuoteHandler_GetQuoteHandler verifies status mapping and response
// shaping of the quote endpoint.
func TestQuoteHandler_GetQuoteHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	quoteTime := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		mockGetQuote   func(ctx context.Context, symbol string) (entity.Quote, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: full quote",
			url:  "/quote/AAPL",
			mockGetQuote: func(ctx context.Context, symbol string) (entity.Quote, error) {
				assert.Equal(t, "AAPL", symbol)
				return entity.Quote{
					Symbol:        "AAPL",
					ShortName:     "Apple Inc.",
					Currency:      "USD",
					Price:         201.5,
					Change:        1.25,
					ChangePercent: 0.62,
					PreviousClose: 200.25,
					Open:          200.5,
					DayHigh:       202.75,
					DayLow:        199.8,
					Volume:        54_321_000,
					MarketState:   "REGULAR",
					Time:          quoteTime,
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"symbol":"AAPL",
				"name":"Apple Inc.",
				"currency":"USD",
				"price":201.5,
				"change":1.25,
				"change_percent":0.62,
				"previous_close":200.25,
				"open":200.5,
				"day_high":202.75,
				"day_low":199.8,
				"volume":54321000,
				"market_state":"REGULAR",
				"time":"2025-06-02T15:30:00Z"
			}`,
		},
		{
			name: "bad request: blank symbol",
			url:  "/quote/%20",
			mockGetQuote: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{}, domain.ErrNoSymbols
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"no symbols requested"}`,
		},
		{
			name: "bad gateway: provider failure",
			url:  "/quote/AAPL",
			mockGetQuote: func(ctx context.Context, symbol string) (entity.Quote, error) {
				return entity.Quote{}, fmt.Errorf("%w: AAPL: request timed out", domain.ErrDataUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"market data unavailable: AAPL: request timed out"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockQuoteUsecase{
				GetQuoteFunc: tt.mockGetQuote,
			}
			h := handler.NewQuoteHandler(mockUC)

			router := gin.New()
			router.GET("/quote/:symbol", h.GetQuoteHandler)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
