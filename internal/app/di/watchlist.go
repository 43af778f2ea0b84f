package di

import (
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/adapters"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/domain/entity"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/usecase"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/config"
)

// NewWatchlistUsecase builds the watchlist usecase from the configured
// entries. Config order becomes display order.
func NewWatchlistUsecase(cfg *config.Config) *usecase.SymbolUsecase {
	symbols := make([]entity.Symbol, 0, len(cfg.Watchlist))
	for i, item := range cfg.Watchlist {
		symbols = append(symbols, entity.Symbol{
			Code:    item.Code,
			Name:    item.Name,
			SortKey: i,
			Enabled: !item.Disabled,
		})
	}
	return usecase.NewSymbolUsecase(adapters.NewSymbolRepository(symbols))
}
