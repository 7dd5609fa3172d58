package memory

import (
	"context"
	"sync"

	"github.com/iho/brokerledger/internal/domain"
)

// InstrumentRepository is an in-memory instrument catalog. Iteration order
// is insertion order, which keeps listings stable within a session.
type InstrumentRepository struct {
	mu       sync.RWMutex
	bySymbol map[string]*domain.Instrument
	order    []string
}

// NewInstrumentRepository creates an empty in-memory instrument repository.
func NewInstrumentRepository() *InstrumentRepository {
	return &InstrumentRepository{
		bySymbol: make(map[string]*domain.Instrument),
	}
}

// Save registers or overwrites an instrument. Overwriting keeps the
// symbol's original position in the listing order.
func (r *InstrumentRepository) Save(_ context.Context, instrument *domain.Instrument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySymbol[instrument.Symbol]; !ok {
		r.order = append(r.order, instrument.Symbol)
	}

	stored := *instrument
	r.bySymbol[instrument.Symbol] = &stored

	return nil
}

// GetBySymbol returns a copy of the instrument for the symbol or
// domain.ErrUnknownInstrument.
func (r *InstrumentRepository) GetBySymbol(_ context.Context, symbol string) (*domain.Instrument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instrument, ok := r.bySymbol[symbol]
	if !ok {
		return nil, domain.ErrUnknownInstrument
	}

	cp := *instrument
	return &cp, nil
}

// List returns all instruments in insertion order.
func (r *InstrumentRepository) List(_ context.Context) ([]*domain.Instrument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	instruments := make([]*domain.Instrument, 0, len(r.order))
	for _, symbol := range r.order {
		cp := *r.bySymbol[symbol]
		instruments = append(instruments, &cp)
	}

	return instruments, nil
}
