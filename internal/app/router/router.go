// Package router wires the HTTP surface: the JSON API under /api, the
// health probe, and the embedded dashboard shell at /.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	dashboardhandler "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/dashboard/transport/handler"
	markethandler "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/marketdata/transport/handler"
	watchlisthandler "github.com/MonicaVenzor/realtime-trading-terminal/internal/feature/watchlist/transport/handler"
	platformhandler "github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/http/handler"
	"github.com/MonicaVenzor/realtime-trading-terminal/internal/platform/web"
)

func NewRouter(dashboard *dashboardhandler.DashboardHandler, candles *markethandler.CandleHandler,
	quote *markethandler.QuoteHandler, symbols *watchlisthandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// The shell is served same-origin, but CORS keeps the JSON API usable
	// from local tooling and other frontends.
	r.Use(cors.Default())

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	api := r.Group("/api")
	{
		api.GET("/symbols", symbols.List)
		api.GET("/candles/:symbol", candles.GetCandlesHandler)
		api.GET("/quote/:symbol", quote.GetQuoteHandler)
		api.GET("/dashboard", dashboard.GetDashboardHandler)
		api.GET("/forecast/:symbol", dashboard.GetForecastHandler)
	}

	// Dashboard shell: page at /, static assets under /assets
	web.Register(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
