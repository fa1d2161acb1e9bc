package statistics

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/exchangesim/currency"
	"github.com/thrasher-corp/exchangesim/exchange"
	"github.com/thrasher-corp/exchangesim/portfolio/compliance"
)

func addEquity(t *testing.T, s *Statistic, capitals ...float64) {
	t.Helper()
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range capitals {
		err := s.AddValueForTime(i, start.Add(time.Duration(i)*time.Hour), decimal.NewFromFloat(capitals[i]))
		require.NoError(t, err)
	}
}

func TestAddValueForTime(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	addEquity(t, s, 100, 110)
	require.Len(t, s.Equity, 2)

	err := s.AddValueForTime(1, time.Now(), decimal.NewFromInt(120))
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestAddSnapshot(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	id, err := uuid.NewV4()
	require.NoError(t, err)
	s.AddSnapshot(compliance.Snapshot{
		Offset: 0,
		Orders: []compliance.SnapshotOrder{
			{
				ID:     id,
				Side:   compliance.Buy,
				Asset:  currency.NewCode("BTC"),
				Amount: decimal.NewFromFloat(0.1),
				Price:  decimal.NewFromInt(20000),
				Fee:    decimal.NewFromInt(2),
				Result: exchange.ResultOK,
			},
			{
				Side:   compliance.Sell,
				Asset:  currency.NewCode("BTC"),
				Amount: decimal.NewFromFloat(0.05),
				Price:  decimal.NewFromInt(20000),
				Fee:    decimal.NewFromInt(1),
				Result: exchange.ResultOK,
			},
			{
				Side:   compliance.Buy,
				Asset:  currency.NewCode("ETH"),
				Amount: decimal.NewFromInt(5),
				Price:  decimal.NewFromInt(1000),
				Result: exchange.ResultInsufficientFunds,
			},
		},
	})

	assert.Equal(t, int64(3), s.TotalOrders)
	assert.Equal(t, int64(1), s.TotalBuyOrders)
	assert.Equal(t, int64(1), s.TotalSellOrders)
	assert.Equal(t, int64(1), s.TotalRejectedOrders)
	assert.True(t, s.TotalFees.Equal(decimal.NewFromInt(3)))
}

func TestCalculateAllResults(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	assert.ErrorIs(t, s.CalculateAllResults(), errReceivedNoData)

	addEquity(t, s, 100, 200, 150, 400, 100)
	require.NoError(t, s.CalculateAllResults())
	assert.True(t, s.InitialCapital.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.FinalCapital.Equal(decimal.NewFromInt(100)))
	assert.True(t, s.StrategyMovement.IsZero())
	// the 400 to 100 decline outranks the 200 to 150 one
	assert.True(t, s.MaxDrawdown.DrawdownPercent.Equal(decimal.NewFromInt(-75)),
		"drawdown was %v", s.MaxDrawdown.DrawdownPercent)
	assert.True(t, s.MaxDrawdown.Highest.Value.Equal(decimal.NewFromInt(400)))
	assert.True(t, s.MaxDrawdown.Lowest.Value.Equal(decimal.NewFromInt(100)))
}

func TestCalculateAllResultsMovement(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	addEquity(t, s, 100, 125)
	require.NoError(t, s.CalculateAllResults())
	assert.True(t, s.StrategyMovement.Equal(decimal.NewFromInt(25)))
	// capital only ever rose so there is no drawdown to report
	assert.True(t, s.MaxDrawdown.DrawdownPercent.IsZero())
}

func TestCalculateAllResultsZeroInitial(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	addEquity(t, s, 0, 0)
	require.NoError(t, s.CalculateAllResults())
	assert.True(t, s.StrategyMovement.IsZero())
}

func TestPrintResult(t *testing.T) {
	t.Parallel()
	s := &Statistic{StrategyName: "rebalance"}
	assert.ErrorIs(t, s.PrintResult(), errReceivedNoData)

	addEquity(t, s, 100, 90)
	require.NoError(t, s.PrintResult())
	assert.True(t, s.FinalCapital.Equal(decimal.NewFromInt(90)))
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := &Statistic{}
	addEquity(t, s, 100)
	require.NoError(t, s.CalculateAllResults())
	s.Reset()
	assert.Empty(t, s.Equity)
	assert.False(t, s.wasProcessed)
}
