package exchange

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	errFeeOutOfRange     = errors.New("fee percent must be in range [0, 100)")
	errNegativeMinimum   = errors.New("minimum order size cannot be negative")
	errNonPositiveAmount = errors.New("order amount must be positive")
)

// Result describes why an order was rejected. Rejection reasons are
// independently checked and summed, so both can be reported at once;
// zero means the order filled
type Result int

// Result flags
const (
	ResultOK                Result = 0
	ResultInsufficientFunds Result = 1
	ResultBelowMinimum      Result = 2
)

// Ok reports whether the order filled
func (r Result) Ok() bool {
	return r == ResultOK
}

// String conforms to the stringer interface
func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultInsufficientFunds:
		return "insufficient funds"
	case ResultBelowMinimum:
		return "below minimum order size"
	case ResultInsufficientFunds + ResultBelowMinimum:
		return "insufficient funds, below minimum order size"
	}
	return "unknown"
}

// Exchange executes immediate-fill orders at the current close price,
// charging a proportional fee on the gross notional and rejecting
// orders below the minimum notional
type Exchange struct {
	feeRate      decimal.Decimal
	minOrderSize decimal.Decimal
}
