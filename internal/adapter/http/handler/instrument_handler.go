package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/adapter/http/dto"
	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/usecase"
)

// CatalogService defines the behavior needed by InstrumentHandler.
type CatalogService interface {
	AddInstrument(ctx context.Context, input usecase.AddInstrumentInput) (*domain.Instrument, error)
	GetInstrument(ctx context.Context, symbol string) (*domain.Instrument, error)
	ListInstruments(ctx context.Context) ([]*domain.Instrument, error)
	UpdatePrice(ctx context.Context, symbol string, price decimal.Decimal) (*domain.Instrument, error)
}

// InstrumentHandler handles instrument catalog HTTP requests.
type InstrumentHandler struct {
	catalogUC CatalogService
}

// NewInstrumentHandler creates a new InstrumentHandler.
func NewInstrumentHandler(catalogUC CatalogService) *InstrumentHandler {
	return &InstrumentHandler{catalogUC: catalogUC}
}

// Create registers a new instrument or overwrites an existing one.
func (h *InstrumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddInstrumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	instrument, err := h.catalogUC.AddInstrument(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to register instrument", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InstrumentFromDomain(instrument))
}

// Get retrieves an instrument by symbol.
func (h *InstrumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "missing instrument symbol", "")
		return
	}

	instrument, err := h.catalogUC.GetInstrument(r.Context(), symbol)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get instrument", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InstrumentFromDomain(instrument))
}

// List lists all catalog instruments.
func (h *InstrumentHandler) List(w http.ResponseWriter, r *http.Request) {
	instruments, err := h.catalogUC.ListInstruments(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list instruments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListInstrumentsResponse{
		Instruments: dto.InstrumentsFromDomain(instruments),
		Total:       int64(len(instruments)),
	})
}

// UpdatePrice sets the current market price for a symbol.
func (h *InstrumentHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "missing instrument symbol", "")
		return
	}

	var req dto.UpdatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	instrument, err := h.catalogUC.UpdatePrice(r.Context(), symbol, req.Price)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update price", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InstrumentFromDomain(instrument))
}
