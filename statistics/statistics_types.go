package statistics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAlreadyProcessed occurs when a capital value has already been
	// recorded for an offset
	ErrAlreadyProcessed = errors.New("offset has been processed already")
	errReceivedNoData   = errors.New("received no data")
)

// ValueAtTime is the total account capital observed at a step
type ValueAtTime struct {
	Offset  int             `json:"offset"`
	Time    time.Time       `json:"time"`
	Capital decimal.Decimal `json:"capital"`
}

// Iteration is one side of a peak-to-trough swing
type Iteration struct {
	Time  time.Time       `json:"time"`
	Value decimal.Decimal `json:"value"`
}

// Swing holds a peak-to-trough decline in account capital
type Swing struct {
	Highest         Iteration       `json:"highest"`
	Lowest          Iteration       `json:"lowest"`
	DrawdownPercent decimal.Decimal `json:"drawdown"`
}

// Statistic holds all statistical information for a simulation run,
// from drawdowns to fee totals
type Statistic struct {
	StrategyName        string          `json:"strategy-name"`
	Equity              []ValueAtTime   `json:"equity"`
	TotalBuyOrders      int64           `json:"total-buy-orders"`
	TotalSellOrders     int64           `json:"total-sell-orders"`
	TotalRejectedOrders int64           `json:"total-rejected-orders"`
	TotalOrders         int64           `json:"total-orders"`
	TotalFees           decimal.Decimal `json:"total-fees"`
	InitialCapital      decimal.Decimal `json:"initial-capital"`
	FinalCapital        decimal.Decimal `json:"final-capital"`
	StrategyMovement    decimal.Decimal `json:"strategy-movement"`
	MaxDrawdown         Swing           `json:"max-drawdown"`
	wasProcessed        bool
}
