package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/iho/brokerledger/internal/adapter/http"
	"github.com/iho/brokerledger/internal/adapter/http/handler"
	"github.com/iho/brokerledger/internal/adapter/repository/memory"
	"github.com/iho/brokerledger/internal/infrastructure/config"
	"github.com/iho/brokerledger/internal/infrastructure/logger"
	"github.com/iho/brokerledger/internal/infrastructure/metrics"
	"github.com/iho/brokerledger/internal/infrastructure/seed"
	"github.com/iho/brokerledger/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Initialize repositories
	instrumentRepo := memory.NewInstrumentRepository()
	positionRepo := memory.NewPositionRepository()
	transactionRepo := memory.NewTransactionRepository()
	idGen := memory.NewULIDGenerator()

	m := metrics.New()

	// Initialize use cases
	catalogUC := usecase.NewCatalogUseCase(instrumentRepo, m)
	accountUC := usecase.NewAccountUseCase(instrumentRepo, positionRepo, transactionRepo, idGen, m)

	// Seed the instrument catalog
	instruments := seed.Default()
	if cfg.CatalogFile != "" {
		instruments, err = seed.Load(cfg.CatalogFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("failed to load instrument catalog")
		}
	}
	for _, instrument := range instruments {
		if _, err := catalogUC.AddInstrument(ctx, usecase.AddInstrumentInput{
			Symbol: instrument.Symbol,
			Price:  instrument.Price,
		}); err != nil {
			log.Fatal().Err(err).Str("symbol", instrument.Symbol).Msg("failed to seed instrument")
		}
	}
	log.Info().Int("instruments", len(instruments)).Msg("instrument catalog seeded")

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:    handler.NewAccountHandler(accountUC),
		InstrumentHandler: handler.NewInstrumentHandler(catalogUC),
		HealthHandler:     handler.NewHealthHandler(),
		Logger:            log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
