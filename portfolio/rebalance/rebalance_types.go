package rebalance

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
)

// maxIterations caps the fixed-point loop. The iteration is a
// contraction for any realistic fee rate and converges within a
// handful of rounds; hitting this cap is reported instead of spinning
const maxIterations = 1000

// tolerance ends the fixed-point iteration once successive coefficient
// estimates agree this closely
var tolerance = decimal.New(1, -10)

// Weight and coefficient arithmetic rounds at decimal precision, so an
// account already on target would otherwise produce vanishingly small
// legs for every asset. Legs whose gross notional falls below
// dustThreshold, or below capital scaled by relativeDustFactor, are
// dropped from the plan
var (
	dustThreshold      = decimal.New(1, -9)
	relativeDustFactor = decimal.New(1, -12)
)

var (
	// ErrNoConvergence returned when the coefficient search hits the
	// iteration cap
	ErrNoConvergence = errors.New("portfolio value coefficient did not converge")

	errWeightLengthMismatch = errors.New("current and target weights differ in length")
	errZeroPriceTarget      = errors.New("cannot target an asset priced at zero")
)

// Trade is one rebalancing leg: a quantity of one asset to move
type Trade struct {
	Asset  currency.Code
	Amount decimal.Decimal
}

// Plan is the ordered set of trades that moves a ledger onto a target
// distribution. Sells must execute before any buy so the cash they
// free is available when needed
type Plan struct {
	Coefficient   decimal.Decimal
	TargetCapital decimal.Decimal
	TargetCash    decimal.Decimal
	Sells         []Trade
	Buys          []Trade
}

// Empty reports whether the plan moves anything
func (p *Plan) Empty() bool {
	return len(p.Sells) == 0 && len(p.Buys) == 0
}
