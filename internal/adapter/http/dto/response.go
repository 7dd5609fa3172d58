package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/usecase"
)

// InstrumentResponse represents a catalog instrument in API responses.
type InstrumentResponse struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// InstrumentFromDomain converts a domain instrument to a response.
func InstrumentFromDomain(i *domain.Instrument) *InstrumentResponse {
	return &InstrumentResponse{
		Symbol:    i.Symbol,
		Price:     i.Price,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// InstrumentsFromDomain converts domain instruments to responses.
func InstrumentsFromDomain(instruments []*domain.Instrument) []*InstrumentResponse {
	result := make([]*InstrumentResponse, len(instruments))
	for i, in := range instruments {
		result[i] = InstrumentFromDomain(in)
	}
	return result
}

// ListInstrumentsResponse wraps an instrument listing.
type ListInstrumentsResponse struct {
	Instruments []*InstrumentResponse `json:"instruments"`
	Total       int64                 `json:"total"`
}

// TransactionResponse represents a ledger entry in API responses.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Symbol       string          `json:"symbol,omitempty"`
	Shares       int64           `json:"shares,omitempty"`
	Price        decimal.Decimal `json:"price"`
	GrossAmount  decimal.Decimal `json:"gross_amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction record to a response.
func TransactionFromDomain(r *domain.TransactionRecord) *TransactionResponse {
	return &TransactionResponse{
		ID:           r.ID,
		Kind:         string(r.Kind),
		Symbol:       r.Symbol,
		Shares:       r.Shares,
		Price:        r.Price,
		GrossAmount:  r.GrossAmount,
		BalanceAfter: r.BalanceAfter,
		CreatedAt:    r.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transaction records to responses.
func TransactionsFromDomain(records []*domain.TransactionRecord) []*TransactionResponse {
	result := make([]*TransactionResponse, len(records))
	for i, r := range records {
		result[i] = TransactionFromDomain(r)
	}
	return result
}

// ListTransactionsResponse wraps the transaction history.
type ListTransactionsResponse struct {
	Transactions []*TransactionResponse `json:"transactions"`
	Total        int64                  `json:"total"`
}

// HoldingResponse represents one holding joined with its instrument.
type HoldingResponse struct {
	Symbol       string          `json:"symbol"`
	Shares       int64           `json:"shares"`
	CostBasis    decimal.Decimal `json:"cost_basis"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Invested     decimal.Decimal `json:"invested"`
	MarketValue  decimal.Decimal `json:"market_value"`
}

// HoldingsReportResponse represents the portfolio snapshot with totals.
type HoldingsReportResponse struct {
	Holdings          []*HoldingResponse `json:"holdings"`
	TotalInvested     decimal.Decimal    `json:"total_invested"`
	TotalCurrentValue decimal.Decimal    `json:"total_current_value"`
	NetProfitLoss     decimal.Decimal    `json:"net_profit_loss"`
}

// HoldingsReportFromUseCase converts a holdings report to a response.
func HoldingsReportFromUseCase(report *usecase.HoldingsReport) *HoldingsReportResponse {
	holdings := make([]*HoldingResponse, len(report.Lines))
	for i, line := range report.Lines {
		holdings[i] = &HoldingResponse{
			Symbol:       line.Holding.Symbol,
			Shares:       line.Holding.Shares,
			CostBasis:    line.Holding.CostBasis,
			CurrentPrice: line.Instrument.Price,
			Invested:     line.Invested,
			MarketValue:  line.MarketValue,
		}
	}

	return &HoldingsReportResponse{
		Holdings:          holdings,
		TotalInvested:     report.TotalInvested,
		TotalCurrentValue: report.TotalCurrentValue,
		NetProfitLoss:     report.NetProfitLoss,
	}
}

// BalanceResponse represents the current cash balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
