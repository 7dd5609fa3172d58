package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/infrastructure/metrics"
)

// AccountUseCase is the brokerage ledger engine. It owns the cash balance
// and orchestrates the instrument catalog, the position book, and the
// transaction ledger.
//
// Every rejected operation is a complete no-op: no balance change, no
// position change, no ledger entry. The mutex makes the check-then-mutate
// sequence of buy and sell atomic when the engine is exposed over HTTP;
// there is exactly one logical writer per account.
type AccountUseCase struct {
	mu      sync.Mutex
	balance decimal.Decimal

	instrumentRepo  InstrumentRepository
	positionRepo    PositionRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
	metrics         *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase with a zero starting balance.
func NewAccountUseCase(
	instrumentRepo InstrumentRepository,
	positionRepo PositionRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *AccountUseCase {
	return &AccountUseCase{
		balance:         decimal.Zero,
		instrumentRepo:  instrumentRepo,
		positionRepo:    positionRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		metrics:         metrics,
	}
}

// Deposit adds amount to the cash balance and records a deposit transaction.
// The sign of amount is deliberately unchecked: a negative deposit decreases
// the balance.
func (uc *AccountUseCase) Deposit(ctx context.Context, amount decimal.Decimal) (*domain.TransactionRecord, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	newBalance := uc.balance.Add(amount)

	record := &domain.TransactionRecord{
		ID:           uc.idGen.Generate(),
		Kind:         domain.TransactionDeposit,
		GrossAmount:  amount,
		BalanceAfter: newBalance,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.transactionRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	uc.balance = newBalance

	if uc.metrics != nil {
		uc.metrics.DepositsRecorded.Inc()
		uc.metrics.AccountBalance.Set(balanceGauge(uc.balance))
	}

	return record, nil
}

// BuyInput represents input for buying shares.
type BuyInput struct {
	Symbol string
	Shares int64
	Price  decimal.Decimal
}

// Buy purchases shares of a catalog instrument at the given price.
//
// Returns domain.ErrUnknownInstrument when the symbol is not in the catalog
// and domain.ErrInsufficientFunds when shares*price exceeds the balance.
// On success the balance is debited, the position book is updated (cost
// basis stays at the original lot price on repeated buys), and a buy
// transaction is recorded.
func (uc *AccountUseCase) Buy(ctx context.Context, input BuyInput) (*domain.TransactionRecord, error) {
	if err := uc.validateOrder(input.Symbol, input.Shares, &input.Price); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	instrument, err := uc.instrumentRepo.GetBySymbol(ctx, input.Symbol)
	if err != nil {
		uc.countOrderError("buy", err)
		return nil, err
	}

	totalCost := input.Price.Mul(decimal.NewFromInt(input.Shares))
	if totalCost.GreaterThan(uc.balance) {
		uc.countOrderError("buy", domain.ErrInsufficientFunds)
		return nil, domain.ErrInsufficientFunds
	}

	now := time.Now().UTC()

	holding, err := uc.positionRepo.GetBySymbol(ctx, instrument.Symbol)
	switch {
	case err == nil:
		// Repeated buy: the share count grows, the cost basis keeps the
		// original lot price.
		holding.Shares += input.Shares
		holding.UpdatedAt = now
	case err == domain.ErrNoSuchPosition:
		holding = &domain.Holding{
			Symbol:    instrument.Symbol,
			Shares:    input.Shares,
			CostBasis: input.Price,
			CreatedAt: now,
			UpdatedAt: now,
		}
	default:
		return nil, err
	}

	if err := uc.positionRepo.Save(ctx, holding); err != nil {
		return nil, err
	}

	newBalance := uc.balance.Sub(totalCost)

	record := &domain.TransactionRecord{
		ID:           uc.idGen.Generate(),
		Kind:         domain.TransactionBuy,
		Symbol:       instrument.Symbol,
		Shares:       input.Shares,
		Price:        input.Price,
		GrossAmount:  totalCost,
		BalanceAfter: newBalance,
		CreatedAt:    now,
	}

	if err := uc.transactionRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	uc.balance = newBalance

	if uc.metrics != nil {
		uc.metrics.OrdersExecuted.WithLabelValues("buy").Inc()
		uc.metrics.TradeAmount.Observe(totalCost.InexactFloat64())
		uc.metrics.AccountBalance.Set(balanceGauge(uc.balance))
	}

	return record, nil
}

// SellInput represents input for selling shares.
type SellInput struct {
	Symbol string
	Shares int64
}

// Sell sells shares out of an existing holding at the instrument's current
// catalog price, not the stored cost basis.
//
// Returns domain.ErrNoSuchPosition when no holding exists for the symbol and
// domain.ErrInsufficientShares when the requested quantity exceeds the held
// quantity. A holding that reaches exactly zero shares is removed from the
// position book.
func (uc *AccountUseCase) Sell(ctx context.Context, input SellInput) (*domain.TransactionRecord, error) {
	if err := uc.validateOrder(input.Symbol, input.Shares, nil); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	holding, err := uc.positionRepo.GetBySymbol(ctx, input.Symbol)
	if err != nil {
		uc.countOrderError("sell", err)
		return nil, err
	}

	if err := holding.ValidateSell(input.Shares); err != nil {
		uc.countOrderError("sell", err)
		return nil, err
	}

	instrument, err := uc.instrumentRepo.GetBySymbol(ctx, holding.Symbol)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	saleValue := instrument.Price.Mul(decimal.NewFromInt(input.Shares))

	holding.Shares -= input.Shares
	holding.UpdatedAt = now

	if holding.Shares == 0 {
		err = uc.positionRepo.Delete(ctx, holding.Symbol)
	} else {
		err = uc.positionRepo.Save(ctx, holding)
	}
	if err != nil {
		return nil, err
	}

	newBalance := uc.balance.Add(saleValue)

	record := &domain.TransactionRecord{
		ID:           uc.idGen.Generate(),
		Kind:         domain.TransactionSell,
		Symbol:       holding.Symbol,
		Shares:       input.Shares,
		Price:        instrument.Price,
		GrossAmount:  saleValue,
		BalanceAfter: newBalance,
		CreatedAt:    now,
	}

	if err := uc.transactionRepo.Append(ctx, record); err != nil {
		return nil, err
	}

	uc.balance = newBalance

	if uc.metrics != nil {
		uc.metrics.OrdersExecuted.WithLabelValues("sell").Inc()
		uc.metrics.TradeAmount.Observe(saleValue.InexactFloat64())
		uc.metrics.AccountBalance.Set(balanceGauge(uc.balance))
	}

	return record, nil
}

// HoldingLine is one holding joined with its catalog instrument.
type HoldingLine struct {
	Holding     *domain.Holding
	Instrument  *domain.Instrument
	Invested    decimal.Decimal
	MarketValue decimal.Decimal
}

// HoldingsReport is a point-in-time snapshot of the position book with
// portfolio totals. Totals are recomputed fresh on every call.
type HoldingsReport struct {
	Lines             []HoldingLine
	TotalInvested     decimal.Decimal
	TotalCurrentValue decimal.Decimal
	NetProfitLoss     decimal.Decimal
}

// Holdings returns a snapshot of all holdings with invested and current
// values, plus portfolio totals. Pure read, no mutation.
func (uc *AccountUseCase) Holdings(ctx context.Context) (*HoldingsReport, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	holdings, err := uc.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &HoldingsReport{
		TotalInvested:     decimal.Zero,
		TotalCurrentValue: decimal.Zero,
	}

	for _, h := range holdings {
		instrument, err := uc.instrumentRepo.GetBySymbol(ctx, h.Symbol)
		if err != nil {
			return nil, err
		}

		invested := h.TotalInvestment()
		marketValue := h.CurrentValue(instrument.Price)

		report.Lines = append(report.Lines, HoldingLine{
			Holding:     h,
			Instrument:  instrument,
			Invested:    invested,
			MarketValue: marketValue,
		})

		report.TotalInvested = report.TotalInvested.Add(invested)
		report.TotalCurrentValue = report.TotalCurrentValue.Add(marketValue)
	}

	report.NetProfitLoss = report.TotalCurrentValue.Sub(report.TotalInvested)

	return report, nil
}

// History returns the full transaction ledger in insertion order. Pure read.
func (uc *AccountUseCase) History(ctx context.Context) ([]*domain.TransactionRecord, error) {
	return uc.transactionRepo.List(ctx)
}

// Balance returns the current cash balance.
func (uc *AccountUseCase) Balance() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.balance
}

// validateOrder validates the common trade inputs. Price is only validated
// for buys, where the caller supplies it.
func (uc *AccountUseCase) validateOrder(symbol string, shares int64, price *decimal.Decimal) error {
	if err := domain.ValidateSymbol(symbol); err != nil {
		return err
	}
	if err := domain.ValidateShares(shares); err != nil {
		return err
	}
	if price != nil {
		if err := domain.ValidatePrice(*price); err != nil {
			return err
		}
	}
	return nil
}

func (uc *AccountUseCase) countOrderError(side string, err error) {
	if uc.metrics != nil {
		uc.metrics.OrderErrors.WithLabelValues(side, err.Error()).Inc()
	}
}

func balanceGauge(balance decimal.Decimal) float64 {
	return balance.InexactFloat64()
}
