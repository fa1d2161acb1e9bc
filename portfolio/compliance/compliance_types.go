package compliance

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
	"github.com/thrasher-corp/exchangesim/exchange"
)

var errSnapshotNotFound = errors.New("snapshot not found")

// Side is the direction of a journalled order
type Side string

// Order sides
const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// SnapshotOrder is the record of one order placed against the engine,
// accepted or not
type SnapshotOrder struct {
	ID     uuid.UUID
	Side   Side
	Asset  currency.Code
	Amount decimal.Decimal
	Price  decimal.Decimal
	Fee    decimal.Decimal
	Result exchange.Result
}

// Snapshot groups the orders placed during one step
type Snapshot struct {
	Offset    int
	Timestamp time.Time
	Orders    []SnapshotOrder
}

// Manager holds the full order journal of a run, one snapshot per step
// that placed orders
type Manager struct {
	Snapshots []Snapshot
}
