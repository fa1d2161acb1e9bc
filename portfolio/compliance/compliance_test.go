package compliance

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/exchangesim/currency"
	"github.com/thrasher-corp/exchangesim/exchange"
)

func testOrder(t *testing.T, side Side) SnapshotOrder {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return SnapshotOrder{
		ID:     id,
		Side:   side,
		Asset:  currency.NewCode("BTC"),
		Amount: decimal.NewFromFloat(0.1),
		Price:  decimal.NewFromInt(20000),
		Fee:    decimal.NewFromInt(2),
		Result: exchange.ResultOK,
	}
}

func TestAddOrder(t *testing.T) {
	t.Parallel()
	m := &Manager{}
	now := time.Now()

	m.AddOrder(0, now, testOrder(t, Buy))
	m.AddOrder(0, now, testOrder(t, Sell))
	m.AddOrder(3, now.Add(time.Hour), testOrder(t, Buy))

	require.Len(t, m.Snapshots, 2)
	assert.Len(t, m.Snapshots[0].Orders, 2)
	assert.Len(t, m.Snapshots[1].Orders, 1)
	assert.Equal(t, 3, m.Snapshots[1].Offset)
}

func TestGetSnapshotAtOffset(t *testing.T) {
	t.Parallel()
	m := &Manager{}
	m.AddOrder(1, time.Now(), testOrder(t, Buy))

	snap, err := m.GetSnapshotAtOffset(1)
	require.NoError(t, err)
	assert.Len(t, snap.Orders, 1)
	assert.Equal(t, Buy, snap.Orders[0].Side)

	_, err = m.GetSnapshotAtOffset(2)
	assert.ErrorIs(t, err, errSnapshotNotFound)
}

func TestGetLatestSnapshot(t *testing.T) {
	t.Parallel()
	m := &Manager{}
	assert.Empty(t, m.GetLatestSnapshot().Orders)

	m.AddOrder(0, time.Now(), testOrder(t, Buy))
	m.AddOrder(5, time.Now(), testOrder(t, Sell))
	assert.Equal(t, 5, m.GetLatestSnapshot().Offset)
}

func TestReset(t *testing.T) {
	t.Parallel()
	m := &Manager{}
	m.AddOrder(0, time.Now(), testOrder(t, Buy))
	m.Reset()
	assert.Empty(t, m.Snapshots)
}
