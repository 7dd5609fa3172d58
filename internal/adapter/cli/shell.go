package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/usecase"
)

// AccountService defines the account operations the shell drives.
type AccountService interface {
	Deposit(ctx context.Context, amount decimal.Decimal) (*domain.TransactionRecord, error)
	Buy(ctx context.Context, input usecase.BuyInput) (*domain.TransactionRecord, error)
	Sell(ctx context.Context, input usecase.SellInput) (*domain.TransactionRecord, error)
	Holdings(ctx context.Context) (*usecase.HoldingsReport, error)
	History(ctx context.Context) ([]*domain.TransactionRecord, error)
	Balance() decimal.Decimal
}

// CatalogService defines the catalog operations the shell drives.
type CatalogService interface {
	ListInstruments(ctx context.Context) ([]*domain.Instrument, error)
}

// Shell is the interactive menu loop over a brokerage account.
type Shell struct {
	account AccountService
	catalog CatalogService
	in      *bufio.Scanner
	out     io.Writer
}

// NewShell creates a new Shell reading commands from in and writing to out.
func NewShell(account AccountService, catalog CatalogService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		account: account,
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

const separator = "-----------------------------------------------------------------------------"

// Run drives the menu loop until the user exits or input ends.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, separator)
	fmt.Fprintln(s.out, "Welcome to the Brokerage Management System!")
	fmt.Fprintln(s.out, "You can manage your funds, buy/sell instruments, and view your holdings and transaction history.")
	fmt.Fprintln(s.out, separator)

	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "Brokerage Account Management:")
		fmt.Fprintln(s.out, "1. Add Funds")
		fmt.Fprintln(s.out, "2. Buy Instruments")
		fmt.Fprintln(s.out, "3. Sell Instruments")
		fmt.Fprintln(s.out, "4. Display Holdings")
		fmt.Fprintln(s.out, "5. Display Transaction History")
		fmt.Fprintln(s.out, "6. Exit")
		fmt.Fprint(s.out, "Choose an option: ")

		line, ok := s.readLine()
		if !ok {
			return nil
		}

		option, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
			continue
		}

		switch option {
		case 1:
			s.addFunds(ctx)
		case 2:
			s.buy(ctx)
		case 3:
			s.sell(ctx)
		case 4:
			s.displayHoldings(ctx)
		case 5:
			s.displayHistory(ctx)
		case 6:
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) addFunds(ctx context.Context) {
	amount, ok := s.promptDecimal("Enter amount to add: ")
	if !ok {
		return
	}

	record, err := s.account.Deposit(ctx, amount)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintf(s.out, "Added $%s to your account. Balance: $%s\n", amount, record.BalanceAfter)
}

func (s *Shell) buy(ctx context.Context) {
	s.displayAvailableInstruments(ctx)

	symbol, ok := s.promptString("Enter instrument symbol to buy: ")
	if !ok {
		return
	}
	shares, ok := s.promptInt("Enter number of shares: ")
	if !ok {
		return
	}
	price, ok := s.promptDecimal("Enter purchase price per share: ")
	if !ok {
		return
	}

	_, err := s.account.Buy(ctx, usecase.BuyInput{Symbol: symbol, Shares: shares, Price: price})
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintf(s.out, "Bought %d shares of %s at $%s each.\n", shares, symbol, price)
}

func (s *Shell) sell(ctx context.Context) {
	s.displayHoldings(ctx)

	symbol, ok := s.promptString("Enter instrument symbol to sell: ")
	if !ok {
		return
	}
	shares, ok := s.promptInt("Enter number of shares to sell: ")
	if !ok {
		return
	}

	record, err := s.account.Sell(ctx, usecase.SellInput{Symbol: symbol, Shares: shares})
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintf(s.out, "Sold %d shares of %s at $%s each.\n", shares, symbol, record.Price)
}

func (s *Shell) displayAvailableInstruments(ctx context.Context) {
	instruments, err := s.catalog.ListInstruments(ctx)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintln(s.out, "Available Instruments:")
	for _, instrument := range instruments {
		fmt.Fprintf(s.out, "%s ($%s)\n", instrument.Symbol, instrument.Price)
	}
}

func (s *Shell) displayHoldings(ctx context.Context) {
	report, err := s.account.Holdings(ctx)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintln(s.out, "Current Holdings:")
	for _, line := range report.Lines {
		fmt.Fprintf(s.out, "%s: %d shares @ $%s each\n", line.Holding.Symbol, line.Holding.Shares, line.Holding.CostBasis)
	}
	fmt.Fprintf(s.out, "Total Invested: $%s\n", report.TotalInvested)
	fmt.Fprintf(s.out, "Current Value: $%s\n", report.TotalCurrentValue)
	fmt.Fprintf(s.out, "Net Profit/Loss: $%s\n", report.NetProfitLoss)
}

func (s *Shell) displayHistory(ctx context.Context) {
	records, err := s.account.History(ctx)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintln(s.out, "Transaction History:")
	for _, record := range records {
		fmt.Fprintln(s.out, formatTransaction(record))
		fmt.Fprintln(s.out, "-------------------------")
	}
}

func formatTransaction(r *domain.TransactionRecord) string {
	if r.Kind == domain.TransactionDeposit {
		return fmt.Sprintf("Deposit $%s. Balance After Transaction: $%s", r.GrossAmount, r.BalanceAfter)
	}

	verb := "Buy"
	if r.Kind == domain.TransactionSell {
		verb = "Sell"
	}

	return fmt.Sprintf("%s %d shares of %s at $%s each. Total Cost: $%s. Balance After Transaction: $%s",
		verb, r.Shares, r.Symbol, r.Price, r.GrossAmount, r.BalanceAfter)
}

func (s *Shell) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownInstrument):
		fmt.Fprintln(s.out, "Instrument not found.")
	case errors.Is(err, domain.ErrInsufficientFunds):
		fmt.Fprintln(s.out, "Insufficient funds.")
	case errors.Is(err, domain.ErrNoSuchPosition):
		fmt.Fprintln(s.out, "No holdings found for this instrument.")
	case errors.Is(err, domain.ErrInsufficientShares):
		fmt.Fprintln(s.out, "Not enough shares to sell.")
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) promptString(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok || line == "" {
		return "", false
	}
	return line, true
}

func (s *Shell) promptInt(prompt string) (int64, bool) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return 0, false
	}

	value, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid number.")
		return 0, false
	}
	return value, true
}

func (s *Shell) promptDecimal(prompt string) (decimal.Decimal, bool) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(line)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid amount.")
		return decimal.Zero, false
	}
	return value, true
}
