package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/adapter/http/dto"
	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	Deposit(ctx context.Context, amount decimal.Decimal) (*domain.TransactionRecord, error)
	Buy(ctx context.Context, input usecase.BuyInput) (*domain.TransactionRecord, error)
	Sell(ctx context.Context, input usecase.SellInput) (*domain.TransactionRecord, error)
	Holdings(ctx context.Context) (*usecase.HoldingsReport, error)
	History(ctx context.Context) ([]*domain.TransactionRecord, error)
	Balance() decimal.Decimal
}

// AccountHandler handles brokerage account HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// Deposit adds funds to the account.
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.accountUC.Deposit(r.Context(), req.Amount)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to deposit funds", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(record))
}

// Buy executes a buy order.
func (h *AccountHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req dto.BuyOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.accountUC.Buy(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to buy shares", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(record))
}

// Sell executes a sell order.
func (h *AccountHandler) Sell(w http.ResponseWriter, r *http.Request) {
	var req dto.SellOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.accountUC.Sell(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to sell shares", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(record))
}

// Holdings returns the portfolio snapshot with totals.
func (h *AccountHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	report, err := h.accountUC.Holdings(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load holdings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldingsReportFromUseCase(report))
}

// History returns the full transaction ledger.
func (h *AccountHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.accountUC.History(r.Context())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load transaction history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.TransactionsFromDomain(records),
		Total:        int64(len(records)),
	})
}

// Balance returns the current cash balance.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.BalanceResponse{Balance: h.accountUC.Balance()})
}
