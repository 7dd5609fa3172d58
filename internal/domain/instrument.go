package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Instrument represents a tradable instrument in the catalog.
// The symbol is immutable after creation; the price tracks the current
// market price and is updated by an external price feed.
type Instrument struct {
	Symbol    string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
