package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateSymbol(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		wantErr bool
	}{
		{name: "valid symbol", symbol: "AAPL", wantErr: false},
		{name: "single letter", symbol: "F", wantErr: false},
		{name: "empty", symbol: "", wantErr: true},
		{name: "whitespace only", symbol: "   ", wantErr: true},
		{name: "too long", symbol: strings.Repeat("A", MaxSymbolLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSymbol(tt.symbol)
			if tt.wantErr && !errors.Is(err, ErrInvalidSymbol) {
				t.Errorf("expected ErrInvalidSymbol, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateShares(t *testing.T) {
	if err := ValidateShares(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateShares(0); !errors.Is(err, ErrInvalidShares) {
		t.Errorf("expected ErrInvalidShares, got %v", err)
	}
	if err := ValidateShares(-5); !errors.Is(err, ErrInvalidShares) {
		t.Errorf("expected ErrInvalidShares, got %v", err)
	}
}

func TestValidatePrice(t *testing.T) {
	if err := ValidatePrice(decimal.NewFromFloat(150.25)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidatePrice(decimal.Zero); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	if err := ValidatePrice(decimal.NewFromInt(-1)); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}

	huge, _ := decimal.NewFromString("100000001")
	if err := ValidatePrice(huge); !errors.Is(err, ErrPriceTooLarge) {
		t.Errorf("expected ErrPriceTooLarge, got %v", err)
	}
}
