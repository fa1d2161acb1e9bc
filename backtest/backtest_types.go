package backtest

import (
	"errors"

	"github.com/thrasher-corp/exchangesim/portfolio/holdings"
	"github.com/thrasher-corp/exchangesim/simulator"
	"github.com/thrasher-corp/exchangesim/statistics"
)

var (
	errNilConfig    = errors.New("received nil config")
	errNilSimulator = errors.New("received nil simulator")
)

// BackTest drives a constant-mix strategy over a simulator until the
// data runs out
type BackTest struct {
	sim    *simulator.Simulator
	stats  *statistics.Statistic
	target holdings.Weights
	every  int
}
