package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/brokerledger/internal/domain"
)

// MockInstrumentRepository is a mock implementation of InstrumentRepository.
type MockInstrumentRepository struct {
	mu          sync.RWMutex
	instruments map[string]*domain.Instrument
	order       []string

	SaveFunc        func(ctx context.Context, instrument *domain.Instrument) error
	GetBySymbolFunc func(ctx context.Context, symbol string) (*domain.Instrument, error)
	ListFunc        func(ctx context.Context) ([]*domain.Instrument, error)
}

func NewMockInstrumentRepository() *MockInstrumentRepository {
	return &MockInstrumentRepository{
		instruments: make(map[string]*domain.Instrument),
	}
}

func (m *MockInstrumentRepository) Save(ctx context.Context, instrument *domain.Instrument) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, instrument)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instruments[instrument.Symbol]; !ok {
		m.order = append(m.order, instrument.Symbol)
	}
	m.instruments[instrument.Symbol] = instrument
	return nil
}

func (m *MockInstrumentRepository) GetBySymbol(ctx context.Context, symbol string) (*domain.Instrument, error) {
	if m.GetBySymbolFunc != nil {
		return m.GetBySymbolFunc(ctx, symbol)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if instrument, ok := m.instruments[symbol]; ok {
		return instrument, nil
	}
	return nil, domain.ErrUnknownInstrument
}

func (m *MockInstrumentRepository) List(ctx context.Context) ([]*domain.Instrument, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var instruments []*domain.Instrument
	for _, symbol := range m.order {
		instruments = append(instruments, m.instruments[symbol])
	}
	return instruments, nil
}

// MockPositionRepository is a mock implementation of PositionRepository.
type MockPositionRepository struct {
	mu       sync.RWMutex
	holdings map[string]*domain.Holding
	order    []string

	SaveFunc        func(ctx context.Context, holding *domain.Holding) error
	GetBySymbolFunc func(ctx context.Context, symbol string) (*domain.Holding, error)
	DeleteFunc      func(ctx context.Context, symbol string) error
	ListFunc        func(ctx context.Context) ([]*domain.Holding, error)
}

func NewMockPositionRepository() *MockPositionRepository {
	return &MockPositionRepository{
		holdings: make(map[string]*domain.Holding),
	}
}

func (m *MockPositionRepository) Save(ctx context.Context, holding *domain.Holding) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, holding)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.holdings[holding.Symbol]; !ok {
		m.order = append(m.order, holding.Symbol)
	}
	m.holdings[holding.Symbol] = holding
	return nil
}

func (m *MockPositionRepository) GetBySymbol(ctx context.Context, symbol string) (*domain.Holding, error) {
	if m.GetBySymbolFunc != nil {
		return m.GetBySymbolFunc(ctx, symbol)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if holding, ok := m.holdings[symbol]; ok {
		cp := *holding
		return &cp, nil
	}
	return nil, domain.ErrNoSuchPosition
}

func (m *MockPositionRepository) Delete(ctx context.Context, symbol string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, symbol)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.holdings, symbol)
	for i, s := range m.order {
		if s == symbol {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockPositionRepository) List(ctx context.Context) ([]*domain.Holding, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var holdings []*domain.Holding
	for _, symbol := range m.order {
		holdings = append(holdings, m.holdings[symbol])
	}
	return holdings, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu      sync.RWMutex
	records []*domain.TransactionRecord

	AppendFunc func(ctx context.Context, record *domain.TransactionRecord) error
	ListFunc   func(ctx context.Context) ([]*domain.TransactionRecord, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Append(ctx context.Context, record *domain.TransactionRecord) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*domain.TransactionRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	records := make([]*domain.TransactionRecord, len(m.records))
	copy(records, m.records)
	return records, nil
}

// Len returns the number of appended records.
func (m *MockTransactionRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}
