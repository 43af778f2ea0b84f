package usecase

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/analytics/domain/entity"
)

// Correlator builds pairwise return-correlation matrices across symbols.
type Correlator struct{}

// NewCorrelator creates a new Correlator.
func NewCorrelator() *Correlator {
	return &Correlator{}
}

// Matrix computes the Pearson correlation of daily returns for every symbol
// pair. Each pair is compared only over timestamps where both returns are
// defined; pairs with fewer than two overlapping observations stay NaN. The
// symbols slice fixes the axis order of the result.
func (c *Correlator) Matrix(symbols []string, metrics map[string]entity.DerivedMetrics) entity.CorrelationMatrix {
	n := len(symbols)
	mat := make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
		for j := range mat[i] {
			mat[i][j] = math.NaN()
		}
	}

	// Index each symbol's defined returns by timestamp once up front.
	byTime := make([]map[int64]float64, n)
	for i, sym := range symbols {
		m, ok := metrics[sym]
		if !ok {
			continue
		}
		idx := make(map[int64]float64, len(m.DailyReturn))
		for j, r := range m.DailyReturn {
			if entity.Defined(r) {
				idx[m.Timestamps[j].Unix()] = r
			}
		}
		byTime[i] = idx
	}

	for i := 0; i < n; i++ {
		if len(byTime[i]) >= 2 {
			mat[i][i] = 1
		}
		for j := i + 1; j < n; j++ {
			xs, ys := overlap(byTime[i], byTime[j])
			if len(xs) < 2 {
				continue
			}
			r := stat.Correlation(xs, ys, nil)
			mat[i][j], mat[j][i] = r, r
		}
	}

	return entity.CorrelationMatrix{
		Symbols:     symbols,
		Matrix:      mat,
		GeneratedAt: time.Now().UTC(),
	}
}

// overlap collects the values both maps hold for the same timestamp, in
// timestamp order.
func overlap(a, b map[int64]float64) (xs, ys []float64) {
	if a == nil || b == nil {
		return nil, nil
	}
	keys := make([]int64, 0, len(a))
	for k := range a {
		if _, ok := b[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	xs = make([]float64, len(keys))
	ys = make([]float64, len(keys))
	for i, k := range keys {
		xs[i] = a[k]
		ys[i] = b[k]
	}
	return xs, ys
}
