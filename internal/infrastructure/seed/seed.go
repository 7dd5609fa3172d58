package seed

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/iho/brokerledger/internal/domain"
)

// instrumentSpec is one catalog entry in a seed file. The price is kept as
// a string so it survives YAML decoding without float rounding.
type instrumentSpec struct {
	Symbol string `yaml:"symbol"`
	Price  string `yaml:"price"`
}

type seedFile struct {
	Instruments []instrumentSpec `yaml:"instruments"`
}

// Default returns the built-in instrument catalog used when no seed file is
// configured.
func Default() []*domain.Instrument {
	now := time.Now().UTC()

	return []*domain.Instrument{
		{Symbol: "AAPL", Price: decimal.NewFromFloat(150.0), CreatedAt: now, UpdatedAt: now},
		{Symbol: "GOOGL", Price: decimal.NewFromFloat(2800.0), CreatedAt: now, UpdatedAt: now},
		{Symbol: "AMZN", Price: decimal.NewFromFloat(3300.0), CreatedAt: now, UpdatedAt: now},
	}
}

// Load reads an instrument catalog from a YAML file. An empty path returns
// the built-in default catalog.
func Load(path string) ([]*domain.Instrument, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	now := time.Now().UTC()

	instruments := make([]*domain.Instrument, 0, len(file.Instruments))
	for _, spec := range file.Instruments {
		if err := domain.ValidateSymbol(spec.Symbol); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", spec.Symbol, err)
		}

		price, err := decimal.NewFromString(spec.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %q: invalid price %q", spec.Symbol, spec.Price)
		}
		if err := domain.ValidatePrice(price); err != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", spec.Symbol, err)
		}

		instruments = append(instruments, &domain.Instrument{
			Symbol:    spec.Symbol,
			Price:     price,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return instruments, nil
}
