package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"github.com/MonicaVenzor/realtime-trading-terminal/internal/app/di"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/app/router"
	dashboardhandler "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/transport/handler"
	dashboardusecase "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/usecase"
	markethandler "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/transport/handler"
	marketusecase "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/usecase"
	watchlisthandler "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/transport/handler"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/config"
	platformredis "github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Redis is optional: without it every request goes straight upstream
	var rdb *redisv9.Client
	if cfg.CacheEnabled() {
		if tmp, err := platformredis.NewClient(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Provider
	seriesProvider, err := di.NewSeriesProvider(cfg, rdb)
	if err != nil {
		log.Fatalf("[FATAL] init provider: %v", err)
	}
	log.Printf("[INFO] market data provider: %s", seriesProvider.Name())

	// Usecase
	fetchUC := marketusecase.NewFetchUsecase(seriesProvider)
	quoteUC := marketusecase.NewQuoteUsecase(di.NewQuoteProvider(cfg))
	watchlistUC := di.NewWatchlistUsecase(cfg)
	dashboardUC := dashboardusecase.NewDashboardUsecase(fetchUC,
		cfg.Analytics.VolatilityWindow, cfg.Analytics.ForecastHorizon)

	// Default symbol set: explicit config first, then the enabled watchlist
	defaults := cfg.DefaultSymbols
	if len(defaults) == 0 {
		defaults, err = watchlistUC.ActiveCodes(context.Background())
		if err != nil {
			log.Fatalf("[FATAL] load watchlist: %v", err)
		}
	}

	// Handler
	dashboardH := dashboardhandler.NewDashboardHandler(dashboardUC, defaults)
	candlesH := markethandler.NewCandleHandler(fetchUC)
	quoteH := markethandler.NewQuoteHandler(quoteUC)
	symbolsH := watchlisthandler.NewSymbolHandler(watchlistUC)

	r := router.NewRouter(dashboardH, candlesH, quoteH, symbolsH)

	log.Printf("[INFO] listening on %s", cfg.Listen)
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatal(err)
	}
}
