package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/brokerledger/internal/adapter/http/handler"
	"github.com/iho/brokerledger/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler    *handler.AccountHandler
	InstrumentHandler *handler.InstrumentHandler
	HealthHandler     *handler.HealthHandler
	Logger            zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Account
		r.Route("/account", func(r chi.Router) {
			r.Post("/deposits", cfg.AccountHandler.Deposit)
			r.Post("/orders/buy", cfg.AccountHandler.Buy)
			r.Post("/orders/sell", cfg.AccountHandler.Sell)
			r.Get("/balance", cfg.AccountHandler.Balance)
			r.Get("/holdings", cfg.AccountHandler.Holdings)
			r.Get("/transactions", cfg.AccountHandler.History)
		})

		// Instruments
		r.Route("/instruments", func(r chi.Router) {
			r.Post("/", cfg.InstrumentHandler.Create)
			r.Get("/", cfg.InstrumentHandler.List)
			r.Get("/{symbol}", cfg.InstrumentHandler.Get)
			r.Put("/{symbol}/price", cfg.InstrumentHandler.UpdatePrice)
		})
	})

	return r
}
