package simulator

import (
	"errors"

	"github.com/thrasher-corp/exchangesim/data"
	"github.com/thrasher-corp/exchangesim/exchange"
	"github.com/thrasher-corp/exchangesim/portfolio/compliance"
	"github.com/thrasher-corp/exchangesim/portfolio/holdings"
)

var (
	errNilConfig    = errors.New("nil config")
	errNilHolder    = errors.New("nil data holder")
	errAssetMissing = errors.New("data holder does not cover configured asset")
)

// StepResult reports an attempt to advance the shared step cursor
type StepResult int

// Step results
const (
	StepOK StepResult = iota
	StepEndOfData
)

// RebalanceResult aggregates the outcome of a full rebalance. The
// individual legs' failure reasons are preserved in the journal, not
// here
type RebalanceResult int

// Rebalance results
const (
	RebalanceOK RebalanceResult = iota
	RebalanceIncomplete
)

// Simulator is a single-account exchange simulation. It owns the
// ledger and the shared market cursor; all mutation goes through its
// methods. It is not safe for concurrent use
type Simulator struct {
	holder  *data.HandlerHolder
	account *holdings.Account
	engine  *exchange.Exchange
	journal compliance.Manager
	verbose bool
}
