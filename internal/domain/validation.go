package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidSymbol = errors.New("invalid instrument symbol")
	ErrInvalidShares = errors.New("share count must be positive")
	ErrInvalidPrice  = errors.New("price must be positive")
	ErrPriceTooLarge = errors.New("price exceeds maximum allowed")
)

// Validation constants
const (
	MaxSymbolLength = 12
	MaxPrice        = "100000000" // 100 million per share
)

// ValidateSymbol validates an instrument symbol.
func ValidateSymbol(symbol string) error {
	symbol = strings.TrimSpace(symbol)

	if symbol == "" {
		return fmt.Errorf("%w: symbol cannot be empty", ErrInvalidSymbol)
	}

	if len(symbol) > MaxSymbolLength {
		return fmt.Errorf("%w: symbol exceeds %d characters", ErrInvalidSymbol, MaxSymbolLength)
	}

	return nil
}

// ValidateShares validates a share count for a trade.
func ValidateShares(shares int64) error {
	if shares <= 0 {
		return ErrInvalidShares
	}
	return nil
}

// ValidatePrice validates a per-share price.
func ValidatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrice
	}

	maxPrice, _ := decimal.NewFromString(MaxPrice)
	if price.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: maximum price is %s", ErrPriceTooLarge, MaxPrice)
	}

	return nil
}
