package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/adapter/http/dto"
	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/usecase"
)

type catalogServiceStub struct {
	addFn         func(ctx context.Context, input usecase.AddInstrumentInput) (*domain.Instrument, error)
	getFn         func(ctx context.Context, symbol string) (*domain.Instrument, error)
	listFn        func(ctx context.Context) ([]*domain.Instrument, error)
	updatePriceFn func(ctx context.Context, symbol string, price decimal.Decimal) (*domain.Instrument, error)
}

func (s *catalogServiceStub) AddInstrument(ctx context.Context, input usecase.AddInstrumentInput) (*domain.Instrument, error) {
	return s.addFn(ctx, input)
}

func (s *catalogServiceStub) GetInstrument(ctx context.Context, symbol string) (*domain.Instrument, error) {
	return s.getFn(ctx, symbol)
}

func (s *catalogServiceStub) ListInstruments(ctx context.Context) ([]*domain.Instrument, error) {
	return s.listFn(ctx)
}

func (s *catalogServiceStub) UpdatePrice(ctx context.Context, symbol string, price decimal.Decimal) (*domain.Instrument, error) {
	return s.updatePriceFn(ctx, symbol, price)
}

func TestInstrumentHandler_Create_Success(t *testing.T) {
	instrument := &domain.Instrument{
		Symbol: "AAPL",
		Price:  decimal.RequireFromString("150"),
	}

	var captured usecase.AddInstrumentInput
	h := NewInstrumentHandler(&catalogServiceStub{
		addFn: func(ctx context.Context, input usecase.AddInstrumentInput) (*domain.Instrument, error) {
			captured = input
			return instrument, nil
		},
	})

	body, _ := json.Marshal(dto.AddInstrumentRequest{
		Symbol: "AAPL",
		Price:  decimal.RequireFromString("150"),
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/instruments", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.Symbol != "AAPL" || !captured.Price.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.InstrumentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Symbol != "AAPL" {
		t.Fatalf("expected symbol AAPL, got %s", resp.Symbol)
	}
}

func TestInstrumentHandler_Create_InvalidJSON(t *testing.T) {
	h := NewInstrumentHandler(&catalogServiceStub{
		addFn: func(ctx context.Context, input usecase.AddInstrumentInput) (*domain.Instrument, error) {
			t.Fatal("AddInstrument should not be called for invalid payload")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/instruments", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInstrumentHandler_Create_InvalidSymbol(t *testing.T) {
	h := NewInstrumentHandler(&catalogServiceStub{
		addFn: func(ctx context.Context, input usecase.AddInstrumentInput) (*domain.Instrument, error) {
			return nil, domain.ErrInvalidSymbol
		},
	})

	body, _ := json.Marshal(dto.AddInstrumentRequest{Symbol: "", Price: decimal.RequireFromString("10")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/instruments", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInstrumentHandler_Get(t *testing.T) {
	instrument := &domain.Instrument{Symbol: "GOOGL", Price: decimal.RequireFromString("2800")}
	h := NewInstrumentHandler(&catalogServiceStub{
		getFn: func(ctx context.Context, symbol string) (*domain.Instrument, error) {
			if symbol != "GOOGL" {
				t.Fatalf("expected symbol GOOGL, got %s", symbol)
			}
			return instrument, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/instruments/GOOGL", nil)
	req = setChiURLParam(req, "symbol", "GOOGL")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestInstrumentHandler_Get_NotFound(t *testing.T) {
	h := NewInstrumentHandler(&catalogServiceStub{
		getFn: func(ctx context.Context, symbol string) (*domain.Instrument, error) {
			return nil, domain.ErrUnknownInstrument
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/instruments/ZZZZ", nil)
	req = setChiURLParam(req, "symbol", "ZZZZ")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInstrumentHandler_List(t *testing.T) {
	h := NewInstrumentHandler(&catalogServiceStub{
		listFn: func(ctx context.Context) ([]*domain.Instrument, error) {
			return []*domain.Instrument{
				{Symbol: "AAPL", Price: decimal.RequireFromString("150")},
				{Symbol: "GOOGL", Price: decimal.RequireFromString("2800")},
				{Symbol: "AMZN", Price: decimal.RequireFromString("3300")},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/instruments", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.ListInstrumentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 3 || len(resp.Instruments) != 3 {
		t.Fatalf("expected 3 instruments, got %+v", resp)
	}
	if resp.Instruments[0].Symbol != "AAPL" {
		t.Fatalf("expected registration order preserved, got %s first", resp.Instruments[0].Symbol)
	}
}

func TestInstrumentHandler_UpdatePrice(t *testing.T) {
	h := NewInstrumentHandler(&catalogServiceStub{
		updatePriceFn: func(ctx context.Context, symbol string, price decimal.Decimal) (*domain.Instrument, error) {
			if symbol != "AAPL" || !price.Equal(decimal.RequireFromString("175.5")) {
				t.Fatalf("expected AAPL@175.5, got %s@%s", symbol, price)
			}
			return &domain.Instrument{Symbol: "AAPL", Price: price}, nil
		},
	})

	body, _ := json.Marshal(dto.UpdatePriceRequest{Price: decimal.RequireFromString("175.5")})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/instruments/AAPL/price", bytes.NewReader(body))
	req = setChiURLParam(req, "symbol", "AAPL")
	rec := httptest.NewRecorder()

	h.UpdatePrice(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.InstrumentResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Price.Equal(decimal.RequireFromString("175.5")) {
		t.Fatalf("expected price 175.5, got %s", resp.Price)
	}
}

func TestInstrumentHandler_UpdatePrice_UnknownSymbol(t *testing.T) {
	h := NewInstrumentHandler(&catalogServiceStub{
		updatePriceFn: func(ctx context.Context, symbol string, price decimal.Decimal) (*domain.Instrument, error) {
			return nil, domain.ErrUnknownInstrument
		},
	})

	body, _ := json.Marshal(dto.UpdatePriceRequest{Price: decimal.RequireFromString("10")})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/instruments/ZZZZ/price", bytes.NewReader(body))
	req = setChiURLParam(req, "symbol", "ZZZZ")
	rec := httptest.NewRecorder()

	h.UpdatePrice(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}
