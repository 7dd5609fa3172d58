package usecase

import (
	"context"

	"github.com/iho/brokerledger/internal/domain"
)

// InstrumentRepository defines data access for the instrument catalog.
type InstrumentRepository interface {
	Save(ctx context.Context, instrument *domain.Instrument) error
	GetBySymbol(ctx context.Context, symbol string) (*domain.Instrument, error)
	List(ctx context.Context) ([]*domain.Instrument, error)
}

// PositionRepository defines data access for the position book.
type PositionRepository interface {
	Save(ctx context.Context, holding *domain.Holding) error
	GetBySymbol(ctx context.Context, symbol string) (*domain.Holding, error)
	Delete(ctx context.Context, symbol string) error
	List(ctx context.Context) ([]*domain.Holding, error)
}

// TransactionRepository defines data access for the append-only transaction ledger.
// Append never mutates prior entries; List returns the full history in
// insertion order.
type TransactionRepository interface {
	Append(ctx context.Context, record *domain.TransactionRecord) error
	List(ctx context.Context) ([]*domain.TransactionRecord, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
