package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/infrastructure/metrics"
)

// CatalogUseCase handles instrument catalog business logic.
type CatalogUseCase struct {
	instrumentRepo InstrumentRepository
	metrics        *metrics.Metrics
}

// NewCatalogUseCase creates a new CatalogUseCase.
func NewCatalogUseCase(instrumentRepo InstrumentRepository, metrics *metrics.Metrics) *CatalogUseCase {
	return &CatalogUseCase{
		instrumentRepo: instrumentRepo,
		metrics:        metrics,
	}
}

// AddInstrumentInput represents input for registering an instrument.
type AddInstrumentInput struct {
	Symbol string
	Price  decimal.Decimal
}

// AddInstrument registers metadata for a symbol, overwriting the price when
// the symbol is already present. Instruments are never deleted during a
// session.
func (uc *CatalogUseCase) AddInstrument(ctx context.Context, input AddInstrumentInput) (*domain.Instrument, error) {
	if err := domain.ValidateSymbol(input.Symbol); err != nil {
		return nil, err
	}
	if err := domain.ValidatePrice(input.Price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	instrument, err := uc.instrumentRepo.GetBySymbol(ctx, input.Symbol)
	if err == nil {
		instrument.Price = input.Price
		instrument.UpdatedAt = now
	} else if err == domain.ErrUnknownInstrument {
		instrument = &domain.Instrument{
			Symbol:    input.Symbol,
			Price:     input.Price,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		return nil, err
	}

	if err := uc.instrumentRepo.Save(ctx, instrument); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.InstrumentsRegistered.Inc()
	}

	return instrument, nil
}

// GetInstrument retrieves an instrument by symbol.
func (uc *CatalogUseCase) GetInstrument(ctx context.Context, symbol string) (*domain.Instrument, error) {
	return uc.instrumentRepo.GetBySymbol(ctx, symbol)
}

// ListInstruments lists all catalog instruments. The order is stable within
// a session.
func (uc *CatalogUseCase) ListInstruments(ctx context.Context) ([]*domain.Instrument, error) {
	return uc.instrumentRepo.List(ctx)
}

// UpdatePrice sets the current market price of a catalog instrument. This is
// the entry point for an external price feed.
func (uc *CatalogUseCase) UpdatePrice(ctx context.Context, symbol string, price decimal.Decimal) (*domain.Instrument, error) {
	if err := domain.ValidatePrice(price); err != nil {
		return nil, err
	}

	instrument, err := uc.instrumentRepo.GetBySymbol(ctx, symbol)
	if err != nil {
		return nil, err
	}

	instrument.Price = price
	instrument.UpdatedAt = time.Now().UTC()

	if err := uc.instrumentRepo.Save(ctx, instrument); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PriceUpdates.Inc()
	}

	return instrument, nil
}
