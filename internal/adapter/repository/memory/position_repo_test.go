package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/brokerledger/internal/domain"
)

func TestPositionRepositorySaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewPositionRepository()

	require.NoError(t, repo.Save(ctx, &domain.Holding{
		Symbol:    "AAPL",
		Shares:    5,
		CostBasis: decimal.NewFromInt(150),
	}))

	got, err := repo.GetBySymbol(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Shares)
	assert.True(t, got.CostBasis.Equal(decimal.NewFromInt(150)))
}

func TestPositionRepositoryGetAbsent(t *testing.T) {
	repo := NewPositionRepository()

	_, err := repo.GetBySymbol(context.Background(), "GOOGL")
	assert.ErrorIs(t, err, domain.ErrNoSuchPosition)
}

func TestPositionRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewPositionRepository()

	require.NoError(t, repo.Save(ctx, &domain.Holding{Symbol: "AAPL", Shares: 5, CostBasis: decimal.NewFromInt(150)}))
	require.NoError(t, repo.Delete(ctx, "AAPL"))

	_, err := repo.GetBySymbol(ctx, "AAPL")
	assert.ErrorIs(t, err, domain.ErrNoSuchPosition)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Deleting again is a no-op.
	assert.NoError(t, repo.Delete(ctx, "AAPL"))
}

func TestPositionRepositoryListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPositionRepository()

	for _, s := range []string{"AAPL", "GOOGL", "AMZN"} {
		require.NoError(t, repo.Save(ctx, &domain.Holding{Symbol: s, Shares: 1, CostBasis: decimal.NewFromInt(1)}))
	}
	require.NoError(t, repo.Delete(ctx, "GOOGL"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "AAPL", all[0].Symbol)
	assert.Equal(t, "AMZN", all[1].Symbol)
}
