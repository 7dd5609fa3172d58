package domain

import "errors"

var (
	// Buy errors
	ErrUnknownInstrument = errors.New("instrument not found in catalog")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Sell errors
	ErrNoSuchPosition     = errors.New("no position held for symbol")
	ErrInsufficientShares = errors.New("not enough shares to sell")
)
