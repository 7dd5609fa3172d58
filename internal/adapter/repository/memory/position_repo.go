package memory

import (
	"context"
	"sync"

	"github.com/iho/brokerledger/internal/domain"
)

// PositionRepository is an in-memory position book keyed by symbol.
// Listing order is the order in which positions were first opened.
type PositionRepository struct {
	mu       sync.RWMutex
	bySymbol map[string]*domain.Holding
	order    []string
}

// NewPositionRepository creates an empty in-memory position repository.
func NewPositionRepository() *PositionRepository {
	return &PositionRepository{
		bySymbol: make(map[string]*domain.Holding),
	}
}

// Save creates or replaces the holding for its symbol.
func (r *PositionRepository) Save(_ context.Context, holding *domain.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySymbol[holding.Symbol]; !ok {
		r.order = append(r.order, holding.Symbol)
	}

	stored := *holding
	r.bySymbol[holding.Symbol] = &stored

	return nil
}

// GetBySymbol returns a copy of the holding for the symbol or
// domain.ErrNoSuchPosition.
func (r *PositionRepository) GetBySymbol(_ context.Context, symbol string) (*domain.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	holding, ok := r.bySymbol[symbol]
	if !ok {
		return nil, domain.ErrNoSuchPosition
	}

	cp := *holding
	return &cp, nil
}

// Delete removes the holding for the symbol. Deleting an absent symbol is a
// no-op.
func (r *PositionRepository) Delete(_ context.Context, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bySymbol[symbol]; !ok {
		return nil
	}

	delete(r.bySymbol, symbol)
	for i, s := range r.order {
		if s == symbol {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

// List returns all holdings in the order positions were opened.
func (r *PositionRepository) List(_ context.Context) ([]*domain.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	holdings := make([]*domain.Holding, 0, len(r.order))
	for _, symbol := range r.order {
		cp := *r.bySymbol[symbol]
		holdings = append(holdings, &cp)
	}

	return holdings, nil
}
