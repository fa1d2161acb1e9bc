package backtest

import (
	"fmt"

	"github.com/thrasher-corp/exchangesim/config"
	"github.com/thrasher-corp/exchangesim/data"
	"github.com/thrasher-corp/exchangesim/data/kline"
	"github.com/thrasher-corp/exchangesim/data/kline/csv"
	"github.com/thrasher-corp/exchangesim/log"
	"github.com/thrasher-corp/exchangesim/portfolio/holdings"
	"github.com/thrasher-corp/exchangesim/simulator"
	"github.com/thrasher-corp/exchangesim/statistics"
)

// New sets up a run over an existing simulator
func New(sim *simulator.Simulator, target holdings.Weights, every int) (*BackTest, error) {
	if sim == nil {
		return nil, errNilSimulator
	}
	return &BackTest{
		sim:    sim,
		stats:  &statistics.Statistic{StrategyName: "constant-mix"},
		target: target,
		every:  every,
	}, nil
}

// NewFromConfig loads candle data from the configured CSV directory and
// wires up a simulator ready to run
func NewFromConfig(cfg *config.Config) (*BackTest, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	items, err := csv.LoadAssets(cfg.Data.CSVPath, cfg.Assets)
	if err != nil {
		return nil, err
	}
	holder, err := data.NewHandlerHolder(cfg.Assets)
	if err != nil {
		return nil, err
	}
	for _, a := range cfg.Assets {
		if err = holder.SetDataForAsset(a, &kline.DataFromKline{Item: items[a]}); err != nil {
			return nil, err
		}
	}
	sim, err := simulator.New(cfg, holder)
	if err != nil {
		return nil, err
	}
	every := cfg.Strategy.RebalanceEvery
	if len(cfg.Strategy.TargetWeights) == 0 {
		// no strategy configured, just mark the account to market
		every = 0
	}
	return New(sim, targetFromConfig(cfg), every)
}

// targetFromConfig shapes the configured weight map into the account's
// asset order. Assets absent from the map hold weight zero
func targetFromConfig(cfg *config.Config) holdings.Weights {
	target := holdings.Weights{
		Cash: cfg.Strategy.TargetWeights[config.CashName],
	}
	for _, a := range cfg.Assets {
		target.Assets = append(target.Assets, holdings.AssetWeight{
			Asset:  a,
			Weight: cfg.Strategy.TargetWeights[a.String()],
		})
	}
	return target
}

// Simulator exposes the underlying simulator for inspection
func (b *BackTest) Simulator() *simulator.Simulator {
	return b.sim
}

// Statistics exposes the gathered run statistics
func (b *BackTest) Statistics() *statistics.Statistic {
	return b.stats
}

// Run steps through every candle, rebalancing onto the target mix at
// the configured cadence, and prints the final results
func (b *BackTest) Run() error {
	// equity curve timestamps follow the first configured asset's series
	first := b.sim.Assets()[0]
	for {
		step := b.sim.CurrentStep()
		capital, err := b.sim.Capital()
		if err != nil {
			return err
		}
		candles, err := b.sim.CurrentCandles()
		if err != nil {
			return err
		}
		if err = b.stats.AddValueForTime(step, candles[first].GetTime(), capital); err != nil {
			return err
		}
		if b.every > 0 && step%b.every == 0 {
			result, err := b.sim.Rebalance(b.target)
			if err != nil {
				return fmt.Errorf("rebalance at step %v: %w", step, err)
			}
			if result != simulator.RebalanceOK {
				log.Warnf("rebalance at step %v left the portfolio off target", step)
			}
		}
		if b.sim.AdvanceStep() == simulator.StepEndOfData {
			break
		}
	}
	for i := range b.sim.Journal().Snapshots {
		b.stats.AddSnapshot(b.sim.Journal().Snapshots[i])
	}
	if err := b.stats.CalculateAllResults(); err != nil {
		return err
	}
	return b.stats.PrintResult()
}
