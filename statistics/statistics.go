package statistics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/log"
	"github.com/thrasher-corp/exchangesim/portfolio/compliance"
)

// Reset returns the struct to defaults
func (s *Statistic) Reset() {
	*s = Statistic{}
}

// AddValueForTime records the account capital at a step so results can
// be calculated once the run completes
func (s *Statistic) AddValueForTime(offset int, t time.Time, capital decimal.Decimal) error {
	for i := len(s.Equity) - 1; i >= 0; i-- {
		if s.Equity[i].Offset == offset {
			return fmt.Errorf("%w: offset %v", ErrAlreadyProcessed, offset)
		}
	}
	s.Equity = append(s.Equity, ValueAtTime{
		Offset:  offset,
		Time:    t,
		Capital: capital,
	})
	return nil
}

// AddSnapshot tallies the orders held in a compliance snapshot
func (s *Statistic) AddSnapshot(snap compliance.Snapshot) {
	for i := range snap.Orders {
		s.TotalOrders++
		if !snap.Orders[i].Result.Ok() {
			s.TotalRejectedOrders++
			continue
		}
		switch snap.Orders[i].Side {
		case compliance.Buy:
			s.TotalBuyOrders++
		case compliance.Sell:
			s.TotalSellOrders++
		}
		s.TotalFees = s.TotalFees.Add(snap.Orders[i].Fee)
	}
}

// CalculateAllResults computes capital movement and the biggest
// drawdown across the recorded equity curve
func (s *Statistic) CalculateAllResults() error {
	if len(s.Equity) == 0 {
		return errReceivedNoData
	}
	s.InitialCapital = s.Equity[0].Capital
	s.FinalCapital = s.Equity[len(s.Equity)-1].Capital
	if s.InitialCapital.IsPositive() {
		s.StrategyMovement = s.FinalCapital.Sub(s.InitialCapital).
			Div(s.InitialCapital).
			Mul(decimal.NewFromInt(100))
	}
	s.MaxDrawdown = calculateMaxDrawdown(s.Equity)
	s.wasProcessed = true
	return nil
}

// calculateMaxDrawdown finds the deepest peak-to-trough decline in the
// equity curve
func calculateMaxDrawdown(equity []ValueAtTime) Swing {
	var result Swing
	peak := equity[0]
	trough := equity[0]
	for i := range equity {
		if equity[i].Capital.GreaterThan(peak.Capital) {
			peak = equity[i]
			trough = equity[i]
			continue
		}
		if equity[i].Capital.GreaterThanOrEqual(trough.Capital) {
			continue
		}
		trough = equity[i]
		if peak.Capital.IsZero() {
			continue
		}
		drawdown := trough.Capital.Sub(peak.Capital).
			Div(peak.Capital).
			Mul(decimal.NewFromInt(100))
		if drawdown.LessThan(result.DrawdownPercent) {
			result = Swing{
				Highest: Iteration{
					Time:  peak.Time,
					Value: peak.Capital,
				},
				Lowest: Iteration{
					Time:  trough.Time,
					Value: trough.Capital,
				},
				DrawdownPercent: drawdown,
			}
		}
	}
	return result
}

// PrintResult outputs a summary of the run via the logger
func (s *Statistic) PrintResult() error {
	if !s.wasProcessed {
		if err := s.CalculateAllResults(); err != nil {
			return err
		}
	}
	log.Info("------------------Simulation Results-------------------------")
	if s.StrategyName != "" {
		log.Infof("Strategy: %v", s.StrategyName)
	}
	log.Infof("Steps processed: %v", len(s.Equity))
	log.Infof("Initial capital: %v", s.InitialCapital.Round(8))
	log.Infof("Final capital: %v", s.FinalCapital.Round(8))
	log.Infof("Capital movement: %v%%", s.StrategyMovement.Round(4))
	log.Infof("Total orders placed: %v", s.TotalOrders)
	log.Infof("Buy orders: %v", s.TotalBuyOrders)
	log.Infof("Sell orders: %v", s.TotalSellOrders)
	log.Infof("Rejected orders: %v", s.TotalRejectedOrders)
	log.Infof("Fees paid: %v", s.TotalFees.Round(8))
	if !s.MaxDrawdown.DrawdownPercent.IsZero() {
		log.Infof("Biggest drawdown: %v%% from %v at %v to %v at %v",
			s.MaxDrawdown.DrawdownPercent.Round(4),
			s.MaxDrawdown.Highest.Value.Round(8),
			s.MaxDrawdown.Highest.Time.Format(time.RFC3339),
			s.MaxDrawdown.Lowest.Value.Round(8),
			s.MaxDrawdown.Lowest.Time.Format(time.RFC3339))
	}
	return nil
}
