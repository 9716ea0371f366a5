package api

import (
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"cochera-backend/config"
	"cochera-backend/internal/mw"
	"cochera-backend/internal/store"
	"cochera-backend/internal/tariff"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store, catalog *tariff.Catalog) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, catalog, cfg.Location())

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := cfg.Server.CacheTTL()
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/tariffs", caching, handler.GetTariffs)

		api.POST("/sessions", handler.PostSession)
		api.GET("/sessions", handler.GetSessions)
		api.GET("/sessions/:id/quote", handler.GetQuote)
		api.POST("/sessions/:id/withdraw", handler.PostWithdraw)

		api.GET("/withdrawals", handler.GetWithdrawals)
		api.POST("/withdrawals/export", handler.ExportWithdrawals)
	}

	return r
}
