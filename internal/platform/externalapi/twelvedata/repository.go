package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/externalapi/twelvedata/dto"
)

// Repository fetches historical price series from the Twelve Data API.
type Repository struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Repository implements the SeriesProvider interface.
var _ usecase.SeriesProvider = (*Repository)(nil)

// NewRepository creates a Twelve Data repository with the given configuration
// and HTTP client.
func NewRepository(cfg Config, client *http.Client) *Repository {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Repository{cfg: cfg, client: client}
}

// Name identifies the provider in logs and error messages.
func (r *Repository) Name() string { return "twelvedata" }

// FetchSeries retrieves the bars for one symbol over [start, end] from the
// time_series endpoint. A range the provider has no data for yields an empty
// slice, not an error.
func (r *Repository) FetchSeries(ctx context.Context, symbol string, interval entity.Interval, start, end time.Time) ([]entity.PriceBar, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", toAPIInterval(interval))
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))
	q.Set("apikey", r.cfg.APIKey)

	u := fmt.Sprintf("%s/time_series?%s", r.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	var body dto.TimeSeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		// The API reports "nothing in this range" through the same error
		// envelope as real failures; only the former maps to an empty series.
		if isNoData(body.Code, body.Message) {
			return nil, nil
		}
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	bars := make([]entity.PriceBar, 0, len(body.Values))
	for _, v := range body.Values {
		tm, err := time.Parse("2006-01-02 15:04:05", v.Datetime)
		if err != nil {
			tm, err = time.Parse("2006-01-02", v.Datetime)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		vol64, err := strconv.ParseInt(v.Volume, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
		}

		bars = append(bars, entity.PriceBar{
			Time:   tm.UTC(),
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: vol64,
		})
	}
	return bars, nil
}

// toAPIInterval maps the domain interval onto Twelve Data's interval names.
func toAPIInterval(interval entity.Interval) string {
	switch interval {
	case entity.IntervalWeekly:
		return "1week"
	case entity.IntervalMonthly:
		return "1month"
	default:
		return "1day"
	}
}

// isNoData classifies the API's error envelope: 404 means the range or
// symbol has no rows, and some plans report the same condition as a 400 with
// a "no data" message.
func isNoData(code int, message string) bool {
	if code == 404 {
		return true
	}
	return strings.Contains(strings.ToLower(message), "no data")
}
