// Package simulator exposes a single-account exchange for backtesting:
// a cash and per-asset ledger marked to market against pre-loaded
// candle series, with immediate-fill orders at each step's close price
package simulator

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/config"
	"github.com/thrasher-corp/exchangesim/currency"
	"github.com/thrasher-corp/exchangesim/data"
	"github.com/thrasher-corp/exchangesim/exchange"
	"github.com/thrasher-corp/exchangesim/log"
	"github.com/thrasher-corp/exchangesim/portfolio/compliance"
	"github.com/thrasher-corp/exchangesim/portfolio/holdings"
	"github.com/thrasher-corp/exchangesim/portfolio/rebalance"
)

// New validates the configuration, loads every candle series and
// returns a simulator positioned on the first step with the configured
// cash and no holdings
func New(cfg *config.Config, holder *data.HandlerHolder) (*Simulator, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	if holder == nil {
		return nil, errNilHolder
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	held := holder.Assets()
	for i := range cfg.Assets {
		if i >= len(held) || !held[i].Equal(cfg.Assets[i]) {
			return nil, fmt.Errorf("%w: %v", errAssetMissing, cfg.Assets[i])
		}
	}
	if err := holder.Load(); err != nil {
		return nil, err
	}
	account, err := holdings.NewAccount(cfg.InitialCash, cfg.Assets)
	if err != nil {
		return nil, err
	}
	engine, err := exchange.New(cfg.FeePercent, cfg.MinimumOrderSize)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		holder:  holder,
		account: account,
		engine:  engine,
		verbose: cfg.Verbose,
	}, nil
}

// Balance returns a copy of the current ledger, cash keyed under "cash"
func (s *Simulator) Balance() map[string]decimal.Decimal {
	return s.account.Balance()
}

// CurrentStep returns the zero-based shared step cursor
func (s *Simulator) CurrentStep() int {
	return s.holder.Offset() - 1
}

// Assets returns the configured assets in order
func (s *Simulator) Assets() []currency.Code {
	return s.holder.Assets()
}

// CurrentCandles returns the candle per asset at the current step
func (s *Simulator) CurrentCandles() (map[currency.Code]data.Event, error) {
	return s.holder.LatestCandles()
}

// Journal returns the order journal accumulated so far
func (s *Simulator) Journal() *compliance.Manager {
	return &s.journal
}

func (s *Simulator) prices() (holdings.Prices, error) {
	candles, err := s.holder.LatestCandles()
	if err != nil {
		return nil, err
	}
	prices := make(holdings.Prices, len(candles))
	for code, candle := range candles {
		prices[code] = candle.GetClosePrice()
	}
	return prices, nil
}

// Capital returns the account's mark-to-market value at the current
// step's close prices
func (s *Simulator) Capital() (decimal.Decimal, error) {
	prices, err := s.prices()
	if err != nil {
		return decimal.Zero, err
	}
	return s.account.Capital(prices)
}

// Portfolio returns the account's current weight distribution
func (s *Simulator) Portfolio() (holdings.Weights, error) {
	prices, err := s.prices()
	if err != nil {
		return holdings.Weights{}, err
	}
	return s.account.Weights(prices)
}

// Buy purchases amount of asset at the current step's close price
func (s *Simulator) Buy(asset currency.Code, amount decimal.Decimal) (exchange.Result, error) {
	return s.placeOrder(compliance.Buy, asset, amount)
}

// Sell disposes of amount of asset at the current step's close price
func (s *Simulator) Sell(asset currency.Code, amount decimal.Decimal) (exchange.Result, error) {
	return s.placeOrder(compliance.Sell, asset, amount)
}

func (s *Simulator) placeOrder(side compliance.Side, asset currency.Code, amount decimal.Decimal) (exchange.Result, error) {
	candle, err := s.holder.LatestCandle(asset)
	if err != nil {
		return exchange.ResultOK, err
	}
	price := candle.GetClosePrice()

	var result exchange.Result
	if side == compliance.Buy {
		result, err = s.engine.Buy(s.account, asset, amount, price)
	} else {
		result, err = s.engine.Sell(s.account, asset, amount, price)
	}
	if err != nil {
		return result, err
	}

	s.journalOrder(side, asset, amount, price, candle.GetTime(), result)
	if s.verbose {
		log.Debugf("step %v %v %v %v @ %v: %v",
			s.CurrentStep(), side, amount, asset, price, result)
	}
	return result, nil
}

func (s *Simulator) journalOrder(side compliance.Side, asset currency.Code, amount, price decimal.Decimal, timestamp time.Time, result exchange.Result) {
	var fee decimal.Decimal
	if result.Ok() {
		fee = s.engine.Fee(price.Mul(amount))
	}
	id, err := uuid.NewV4()
	if err != nil {
		log.Errorf("could not generate order id: %v", err)
		return
	}
	s.journal.AddOrder(s.CurrentStep(), timestamp, compliance.SnapshotOrder{
		ID:     id,
		Side:   side,
		Asset:  asset,
		Amount: amount,
		Price:  price,
		Fee:    fee,
		Result: result,
	})
}

// AdvanceStep moves the shared cursor one step forward. At the final
// step it reports StepEndOfData and leaves the cursor unchanged, so
// repeated calls at the boundary are harmless
func (s *Simulator) AdvanceStep() StepResult {
	if !s.holder.Next() {
		if s.verbose {
			log.Debugf("step %v: end of data", s.CurrentStep())
		}
		return StepEndOfData
	}
	return StepOK
}

// Rebalance restructures holdings onto the target weight distribution,
// selling every excess before buying any deficit so freed cash is
// available when needed. Legs keep executing after an individual
// rejection; any rejection makes the aggregate RebalanceIncomplete. A
// zero-capital account rebalances trivially
func (s *Simulator) Rebalance(target holdings.Weights) (RebalanceResult, error) {
	prices, err := s.prices()
	if err != nil {
		return RebalanceIncomplete, err
	}
	plan, err := rebalance.Build(s.account, target, prices, s.engine.FeeRate())
	if err != nil {
		return RebalanceIncomplete, err
	}
	if s.verbose && !plan.Empty() {
		log.Debugf("step %v rebalance: coefficient %v, target capital %v, %v sells, %v buys",
			s.CurrentStep(), plan.Coefficient, plan.TargetCapital, len(plan.Sells), len(plan.Buys))
	}

	accumulated := exchange.ResultOK
	for i := range plan.Sells {
		result, err := s.Sell(plan.Sells[i].Asset, plan.Sells[i].Amount)
		if err != nil {
			return RebalanceIncomplete, err
		}
		accumulated += result
	}
	for i := range plan.Buys {
		result, err := s.Buy(plan.Buys[i].Asset, plan.Buys[i].Amount)
		if err != nil {
			return RebalanceIncomplete, err
		}
		accumulated += result
	}
	if !accumulated.Ok() {
		return RebalanceIncomplete, nil
	}
	return RebalanceOK, nil
}
