package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/usecase"
	"github.com/iho/brokerledger/internal/usecase/mocks"
)

func TestCatalogUseCase_AddInstrument(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.AddInstrumentInput
		wantErr error
	}{
		{
			name:  "register new instrument",
			input: usecase.AddInstrumentInput{Symbol: "AAPL", Price: decimal.NewFromInt(150)},
		},
		{
			name:    "empty symbol",
			input:   usecase.AddInstrumentInput{Symbol: "", Price: decimal.NewFromInt(150)},
			wantErr: domain.ErrInvalidSymbol,
		},
		{
			name:    "non-positive price",
			input:   usecase.AddInstrumentInput{Symbol: "AAPL", Price: decimal.Zero},
			wantErr: domain.ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockInstrumentRepository()
			uc := usecase.NewCatalogUseCase(repo, nil)

			instrument, err := uc.AddInstrument(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if instrument.Symbol != tt.input.Symbol {
				t.Errorf("expected symbol %q, got %q", tt.input.Symbol, instrument.Symbol)
			}
			if !instrument.Price.Equal(tt.input.Price) {
				t.Errorf("expected price %s, got %s", tt.input.Price, instrument.Price)
			}
		})
	}
}

func TestCatalogUseCase_AddInstrumentOverwritesPrice(t *testing.T) {
	repo := mocks.NewMockInstrumentRepository()
	uc := usecase.NewCatalogUseCase(repo, nil)
	ctx := context.Background()

	if _, err := uc.AddInstrument(ctx, usecase.AddInstrumentInput{Symbol: "AAPL", Price: decimal.NewFromInt(150)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.AddInstrument(ctx, usecase.AddInstrumentInput{Symbol: "AAPL", Price: decimal.NewFromInt(175)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	instrument, err := uc.GetInstrument(ctx, "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !instrument.Price.Equal(decimal.NewFromInt(175)) {
		t.Errorf("expected price 175, got %s", instrument.Price)
	}

	all, err := uc.ListInstruments(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 instrument, got %d", len(all))
	}
}

func TestCatalogUseCase_UpdatePrice(t *testing.T) {
	repo := mocks.NewMockInstrumentRepository()
	uc := usecase.NewCatalogUseCase(repo, nil)
	ctx := context.Background()

	if _, err := uc.AddInstrument(ctx, usecase.AddInstrumentInput{Symbol: "AAPL", Price: decimal.NewFromInt(150)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.UpdatePrice(ctx, "AAPL", decimal.NewFromInt(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Price.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected price 200, got %s", updated.Price)
	}

	if _, err := uc.UpdatePrice(ctx, "NOPE", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrUnknownInstrument) {
		t.Errorf("expected ErrUnknownInstrument, got %v", err)
	}

	if _, err := uc.UpdatePrice(ctx, "AAPL", decimal.Zero); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestCatalogUseCase_GetInstrumentUnknown(t *testing.T) {
	uc := usecase.NewCatalogUseCase(mocks.NewMockInstrumentRepository(), nil)

	_, err := uc.GetInstrument(context.Background(), "NOPE")
	if !errors.Is(err, domain.ErrUnknownInstrument) {
		t.Errorf("expected ErrUnknownInstrument, got %v", err)
	}
}
