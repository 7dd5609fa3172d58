package memory

import (
	"context"
	"sync"

	"github.com/iho/brokerledger/internal/domain"
)

// TransactionRepository is the in-memory append-only transaction ledger.
// Entries are immutable once appended and are never reordered.
type TransactionRepository struct {
	mu      sync.RWMutex
	records []*domain.TransactionRecord
}

// NewTransactionRepository creates an empty in-memory transaction ledger.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Append adds one record to the end of the ledger.
func (r *TransactionRepository) Append(_ context.Context, record *domain.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	r.records = append(r.records, &stored)

	return nil
}

// List returns a snapshot of the full history in insertion order. The
// snapshot is replayable; reading does not consume it.
func (r *TransactionRepository) List(_ context.Context) ([]*domain.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*domain.TransactionRecord, 0, len(r.records))
	for _, record := range r.records {
		cp := *record
		records = append(records, &cp)
	}

	return records, nil
}
