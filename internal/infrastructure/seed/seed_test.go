package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaultCatalog(t *testing.T) {
	instruments, err := Load("")
	require.NoError(t, err)
	require.Len(t, instruments, 3)

	symbols := make(map[string]bool)
	for _, in := range instruments {
		symbols[in.Symbol] = true
		assert.True(t, in.Price.IsPositive())
	}
	assert.True(t, symbols["AAPL"])
	assert.True(t, symbols["GOOGL"])
	assert.True(t, symbols["AMZN"])
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `instruments:
  - symbol: MSFT
    price: 410.50
  - symbol: NVDA
    price: 120
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	instruments, err := Load(path)
	require.NoError(t, err)
	require.Len(t, instruments, 2)

	assert.Equal(t, "MSFT", instruments[0].Symbol)
	assert.Equal(t, "410.5", instruments[0].Price.String())
	assert.Equal(t, "NVDA", instruments[1].Symbol)
}

func TestLoadRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing symbol",
			content: `instruments:
  - symbol: ""
    price: 100
`,
		},
		{
			name: "non-positive price",
			content: `instruments:
  - symbol: TSLA
    price: 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
