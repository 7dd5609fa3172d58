package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iho/brokerledger/internal/adapter/cli"
	"github.com/iho/brokerledger/internal/adapter/repository/memory"
	"github.com/iho/brokerledger/internal/domain"
	"github.com/iho/brokerledger/internal/infrastructure/seed"
	"github.com/iho/brokerledger/internal/usecase"
)

var catalogFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "brokerledger",
		Short: "Interactive brokerage account shell",
		Long:  `An interactive command line shell for managing a brokerage account: deposit funds, buy and sell instruments, and review holdings and transaction history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}

	rootCmd.Flags().StringVar(&catalogFile, "catalog", "", "Path to a YAML instrument catalog (built-in catalog when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runShell(cmd *cobra.Command) error {
	instruments, err := loadCatalog()
	if err != nil {
		return err
	}

	instrumentRepo := memory.NewInstrumentRepository()
	positionRepo := memory.NewPositionRepository()
	transactionRepo := memory.NewTransactionRepository()

	catalogUC := usecase.NewCatalogUseCase(instrumentRepo, nil)
	accountUC := usecase.NewAccountUseCase(
		instrumentRepo,
		positionRepo,
		transactionRepo,
		memory.NewULIDGenerator(),
		nil,
	)

	ctx := cmd.Context()
	for _, instrument := range instruments {
		if _, err := catalogUC.AddInstrument(ctx, usecase.AddInstrumentInput{
			Symbol: instrument.Symbol,
			Price:  instrument.Price,
		}); err != nil {
			return fmt.Errorf("failed to seed instrument %s: %w", instrument.Symbol, err)
		}
	}

	shell := cli.NewShell(accountUC, catalogUC, cmd.InOrStdin(), cmd.OutOrStdout())

	return shell.Run(ctx)
}

func loadCatalog() ([]*domain.Instrument, error) {
	if catalogFile == "" {
		return seed.Default(), nil
	}
	return seed.Load(catalogFile)
}
