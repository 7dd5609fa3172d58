package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the balance-affecting events the ledger records.
type TransactionKind string

const (
	TransactionDeposit TransactionKind = "deposit"
	TransactionBuy     TransactionKind = "buy"
	TransactionSell    TransactionKind = "sell"
)

// TransactionRecord is one immutable entry in the append-only transaction
// ledger. Symbol is empty and Shares/Price are zero for deposits.
// BalanceAfter is the account balance snapshot taken at the moment the
// record was created.
type TransactionRecord struct {
	ID           string
	Kind         TransactionKind
	Symbol       string
	Shares       int64
	Price        decimal.Decimal
	GrossAmount  decimal.Decimal
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}
