package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/usecase"
)

// DepositRequest represents a request to add funds to the account.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// BuyOrderRequest represents a request to buy shares.
type BuyOrderRequest struct {
	Symbol string          `json:"symbol"`
	Shares int64           `json:"shares"`
	Price  decimal.Decimal `json:"price"`
}

// ToUseCaseInput converts to use case input.
func (r *BuyOrderRequest) ToUseCaseInput() usecase.BuyInput {
	return usecase.BuyInput{
		Symbol: r.Symbol,
		Shares: r.Shares,
		Price:  r.Price,
	}
}

// SellOrderRequest represents a request to sell shares.
type SellOrderRequest struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}

// ToUseCaseInput converts to use case input.
func (r *SellOrderRequest) ToUseCaseInput() usecase.SellInput {
	return usecase.SellInput{
		Symbol: r.Symbol,
		Shares: r.Shares,
	}
}

// AddInstrumentRequest represents a request to register a catalog instrument.
type AddInstrumentRequest struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// ToUseCaseInput converts to use case input.
func (r *AddInstrumentRequest) ToUseCaseInput() usecase.AddInstrumentInput {
	return usecase.AddInstrumentInput{
		Symbol: r.Symbol,
		Price:  r.Price,
	}
}

// UpdatePriceRequest represents a price update from an external feed.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}
