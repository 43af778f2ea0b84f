// Package adapters provides repository implementations for the watchlist feature.
package adapters

import (
	"context"
	"sort"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/usecase"
)

// symbolConfig serves watchlist entries loaded from the application config.
// The slice is copied and sorted once at construction, then served read-only,
// so the repository is safe for concurrent requests.
type symbolConfig struct {
	symbols []entity.Symbol
}

var _ usecase.SymbolRepository = (*symbolConfig)(nil)

// NewSymbolRepository builds a config-backed watchlist repository from the
// given entries. Disabled entries are kept so callers can reason about the
// full config, but the List methods only ever return enabled ones.
func NewSymbolRepository(symbols []entity.Symbol) *symbolConfig {
	cp := make([]entity.Symbol, len(symbols))
	copy(cp, symbols)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].SortKey < cp[j].SortKey })
	return &symbolConfig{symbols: cp}
}

// ListActive returns all enabled symbols sorted by SortKey.
func (r *symbolConfig) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]entity.Symbol, 0, len(r.symbols))
	for _, s := range r.symbols {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListActiveCodes returns only the codes of enabled symbols sorted by SortKey.
func (r *symbolConfig) ListActiveCodes(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(r.symbols))
	for _, s := range r.symbols {
		if s.Enabled {
			codes = append(codes, s.Code)
		}
	}
	return codes, nil
}
