package handler_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	analyticsdomain "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain"
	analyticsentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/transport/handler"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/usecase"
	marketdomain "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain"
	marketentity "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// mockDashboardUsecase is a mock implementation of the DashboardUsecase interface.
type mockDashboardUsecase struct {
	GetDashboardFunc func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error)
	GetForecastFunc  func(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error)
}

func (m *mockDashboardUsecase) GetDashboard(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
	return m.GetDashboardFunc(ctx, q)
}

func (m *mockDashboardUsecase) GetForecast(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error) {
	return m.GetForecastFunc(ctx, symbol, interval, start, end, horizon)
}

func setupRouter(h *handler.DashboardHandler) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard", h.GetDashboardHandler)
	r.GET("/forecast/:symbol", h.GetForecastHandler)
	return r
}

// TestDashboardHandler_GetDashboardHandler verifies request parsing, status
// mapping and response shaping of the dashboard endpoint.
func TestDashboardHandler_GetDashboardHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	day := func(d int) time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}
	generated := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	fullData := usecase.DashboardData{
		Symbols: []string{"AAPL", "MSFT"},
		Series: map[string]marketentity.PriceSeries{
			"AAPL": {
				Symbol:   "AAPL",
				Interval: marketentity.IntervalDaily,
				Bars: []marketentity.PriceBar{
					{Time: day(0), Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 10},
					{Time: day(1), Open: 100.5, High: 103, Low: 100, Close: 102.51, Volume: 12},
				},
			},
		},
		Metrics: map[string]analyticsentity.DerivedMetrics{
			"AAPL": {
				Symbol:            "AAPL",
				Timestamps:        []time.Time{day(0), day(1)},
				DailyReturn:       []float64{math.NaN(), 0.02},
				CumulativeReturn:  []float64{0, 0.02},
				RollingVolatility: []float64{math.NaN(), math.NaN()},
				Window:            20,
			},
		},
		KPIs: map[string]analyticsentity.KPISnapshot{
			"AAPL": {
				Symbol:           "AAPL",
				LastClose:        analyticsentity.KPIValue{Value: 102.51, Valid: true},
				CumulativeReturn: analyticsentity.KPIValue{Value: 0.02, Valid: true},
				Volatility:       analyticsentity.KPIValue{},
				Window:           20,
			},
		},
		Failures:    map[string]error{"MSFT": fmt.Errorf("%w: MSFT: connection refused", marketdomain.ErrDataUnavailable)},
		Window:      20,
		GeneratedAt: generated,
	}

	fullBody := `{
		"symbols": ["AAPL", "MSFT"],
		"series": {
			"AAPL": [
				{"time":"2025-06-01","open":100,"high":101,"low":99,"close":100.5,"volume":10},
				{"time":"2025-06-02","open":100.5,"high":103,"low":100,"close":102.51,"volume":12}
			]
		},
		"metrics": {
			"AAPL": {
				"timestamps": ["2025-06-01", "2025-06-02"],
				"daily_return": [null, 0.02],
				"cumulative_return": [0, 0.02],
				"rolling_volatility": [null, null],
				"window": 20
			}
		},
		"kpis": {
			"AAPL": {"symbol":"AAPL","last_close":102.51,"cumulative_return":0.02,"volatility":null,"window":20}
		},
		"correlation": {"symbols": [], "matrix": []},
		"failures": {"MSFT": "market data unavailable: MSFT: connection refused"},
		"window": 20,
		"generated_at": "2025-06-15T12:00:00Z"
	}`

	tests := []struct {
		name             string
		url              string
		mockGetDashboard func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error)
		expectedStatus   int
		expectedBody     string
	}{
		{
			name: "success: full payload with per-symbol failure",
			url:  "/dashboard?symbols=AAPL,MSFT&interval=1d&start=2025-01-02&end=2025-06-30&window=20",
			mockGetDashboard: func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
				assert.Equal(t, []string{"AAPL", "MSFT"}, q.Symbols)
				assert.Equal(t, marketentity.IntervalDaily, q.Interval)
				assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), q.Start)
				assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), q.End)
				assert.Equal(t, 20, q.Window)
				return fullData, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   fullBody,
		},
		{
			name: "success: missing symbols parameter uses the configured defaults",
			url:  "/dashboard",
			mockGetDashboard: func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
				assert.Equal(t, []string{"AAPL", "MSFT", "NVDA"}, q.Symbols)
				assert.Zero(t, q.Window)
				return fullData, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   fullBody,
		},
		{
			name: "bad request: unknown interval",
			url:  "/dashboard?symbols=AAPL&interval=4h",
			mockGetDashboard: func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
				t.Fatal("usecase must not be called for an invalid interval")
				return usecase.DashboardData{}, nil
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid interval: \"4h\""}`,
		},
		{
			name: "bad request: malformed end date",
			url:  "/dashboard?symbols=AAPL&end=June",
			mockGetDashboard: func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
				t.Fatal("usecase must not be called for a malformed date")
				return usecase.DashboardData{}, nil
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid date range: end \"June\" is not a 2006-01-02 date"}`,
		},
		{
			name: "bad request: no symbols anywhere",
			url:  "/dashboard?symbols=,,",
			mockGetDashboard: func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
				return usecase.DashboardData{}, marketdomain.ErrNoSymbols
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"no symbols requested"}`,
		},
		{
			name: "bad gateway: every symbol failed",
			url:  "/dashboard?symbols=AAPL",
			mockGetDashboard: func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
				return usecase.DashboardData{}, fmt.Errorf("%w: every requested symbol failed", marketdomain.ErrDataUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"market data unavailable: every requested symbol failed"}`,
		},
		{
			name: "internal error: unclassified failure",
			url:  "/dashboard?symbols=AAPL",
			mockGetDashboard: func(ctx context.Context, q usecase.DashboardQuery) (usecase.DashboardData, error) {
				return usecase.DashboardData{}, errors.New("boom")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockDashboardUsecase{
				GetDashboardFunc: tt.mockGetDashboard,
			}
			h := handler.NewDashboardHandler(mockUC, []string{"AAPL", "MSFT", "NVDA"})
			router := setupRouter(h)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestDashboardHandler_GetForecastHandler verifies request parsing, status
// mapping and response shaping of the forecast endpoint.
func TestDashboardHandler_GetForecastHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	day := func(d int) time.Time {
		return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}

	history := marketentity.PriceSeries{
		Symbol:   "AAPL",
		Interval: marketentity.IntervalDaily,
		Bars: []marketentity.PriceBar{
			{Time: day(0), Open: 100, High: 100, Low: 100, Close: 100, Volume: 10},
			{Time: day(1), Open: 102, High: 102, Low: 102, Close: 102, Volume: 10},
		},
	}
	forecast := analyticsentity.ForecastResult{
		Symbol:     "AAPL",
		Timestamps: []time.Time{day(2), day(3)},
		Predicted:  []float64{104, 106},
		Slope:      2,
		Intercept:  100,
		Step:       24 * time.Hour,
	}

	tests := []struct {
		name            string
		url             string
		mockGetForecast func(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error)
		expectedStatus  int
		expectedBody    string
	}{
		{
			name: "success: history plus projection",
			url:  "/forecast/AAPL?interval=1d&horizon=2",
			mockGetForecast: func(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error) {
				assert.Equal(t, "AAPL", symbol)
				assert.Equal(t, marketentity.IntervalDaily, interval)
				assert.Equal(t, 2, horizon)
				return history, forecast, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"symbol": "AAPL",
				"history": [
					{"time":"2025-06-01","open":100,"high":100,"low":100,"close":100,"volume":10},
					{"time":"2025-06-02","open":102,"high":102,"low":102,"close":102,"volume":10}
				],
				"timestamps": ["2025-06-03", "2025-06-04"],
				"predicted": [104, 106],
				"slope": 2,
				"intercept": 100
			}`,
		},
		{
			name: "success: missing horizon stays zero for the usecase",
			url:  "/forecast/AAPL",
			mockGetForecast: func(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error) {
				assert.Zero(t, horizon)
				return history, forecast, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"symbol": "AAPL",
				"history": [
					{"time":"2025-06-01","open":100,"high":100,"low":100,"close":100,"volume":10},
					{"time":"2025-06-02","open":102,"high":102,"low":102,"close":102,"volume":10}
				],
				"timestamps": ["2025-06-03", "2025-06-04"],
				"predicted": [104, 106],
				"slope": 2,
				"intercept": 100
			}`,
		},
		{
			name: "bad request: malformed start date",
			url:  "/forecast/AAPL?start=yesterday",
			mockGetForecast: func(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error) {
				t.Fatal("usecase must not be called for a malformed date")
				return marketentity.PriceSeries{}, analyticsentity.ForecastResult{}, nil
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid date range: start \"yesterday\" is not a 2006-01-02 date"}`,
		},
		{
			name: "unprocessable: series too short to fit a trend",
			url:  "/forecast/NEWIPO",
			mockGetForecast: func(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error) {
				return marketentity.PriceSeries{}, analyticsentity.ForecastResult{},
					fmt.Errorf("%w: linear trend needs at least 2 bars, got 1", analyticsdomain.ErrInsufficientData)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"error":"insufficient data: linear trend needs at least 2 bars, got 1"}`,
		},
		{
			name: "bad gateway: provider failure",
			url:  "/forecast/AAPL",
			mockGetForecast: func(ctx context.Context, symbol string, interval marketentity.Interval, start, end time.Time, horizon int) (marketentity.PriceSeries, analyticsentity.ForecastResult, error) {
				return marketentity.PriceSeries{}, analyticsentity.ForecastResult{},
					fmt.Errorf("%w: AAPL: request timed out", marketdomain.ErrDataUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"market data unavailable: AAPL: request timed out"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockDashboardUsecase{
				GetForecastFunc: tt.mockGetForecast,
			}
			h := handler.NewDashboardHandler(mockUC, nil)
			router := setupRouter(h)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
