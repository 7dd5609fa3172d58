package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is an aggregated position in one instrument: a share count plus
// the cost-basis price recorded when the position was opened.
//
// The cost basis is the price paid on the original lot. Subsequent buys
// increase the share count but leave the cost basis untouched; see the
// catalog of account operations in usecase. A holding with zero shares must
// never exist, it is removed from the position book instead.
type Holding struct {
	Symbol    string
	Shares    int64
	CostBasis decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalInvestment returns shares times the cost-basis price.
func (h *Holding) TotalInvestment() decimal.Decimal {
	return h.CostBasis.Mul(decimal.NewFromInt(h.Shares))
}

// CurrentValue returns shares times the given market price.
func (h *Holding) CurrentValue(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(h.Shares))
}

// ValidateSell checks whether shares can be sold out of this holding.
func (h *Holding) ValidateSell(shares int64) error {
	if shares > h.Shares {
		return ErrInsufficientShares
	}
	return nil
}
