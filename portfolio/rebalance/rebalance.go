// Package rebalance computes the trades that move an account from its
// current weight distribution to a target one. Fees paid along the way
// shrink total capital, which in turn changes how much of the target is
// reachable, so the surviving fraction of capital is found as a fixed
// point rather than in closed form
package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/portfolio/holdings"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)
)

// Solve finds the portfolio value coefficient: the fraction of current
// capital that survives the fees of trading onto the target. Only the
// assets being net-sold at a candidate coefficient pay the round-trip
// fee term, hence the clamped excess inside the sum:
//
//	pvc = (1 - f*current[cash] - (2f - f²) * Σ max(current[i] - pvc*target[i], 0)) / (1 - f*target[cash])
//
// Iteration starts from 1 - 2f + f² and stops once successive estimates
// agree within 1e-10
func Solve(current, target holdings.Weights, feeRate decimal.Decimal) (decimal.Decimal, error) {
	if len(current.Assets) != len(target.Assets) {
		return decimal.Zero, errWeightLengthMismatch
	}

	feeSquared := feeRate.Mul(feeRate)
	sellCost := two.Mul(feeRate).Sub(feeSquared)
	numeratorBase := one.Sub(feeRate.Mul(current.Cash))
	denominator := one.Sub(feeRate.Mul(target.Cash))

	pvc0 := one
	pvc1 := one.Sub(two.Mul(feeRate)).Add(feeSquared)
	for i := 0; pvc1.Sub(pvc0).Abs().GreaterThan(tolerance); i++ {
		if i >= maxIterations {
			return decimal.Zero, fmt.Errorf("%w after %v iterations", ErrNoConvergence, maxIterations)
		}
		pvc0 = pvc1
		sold := decimal.Zero
		for j := range current.Assets {
			excess := current.Assets[j].Weight.Sub(pvc1.Mul(target.Assets[j].Weight))
			if excess.GreaterThan(decimal.Zero) {
				sold = sold.Add(excess)
			}
		}
		pvc1 = numeratorBase.Sub(sellCost.Mul(sold)).Div(denominator)
	}
	return pvc1, nil
}

// Build validates the target against the account, solves the value
// coefficient and derives the sell and buy legs required to reach the
// post-fee target balances. Assets already at target produce no leg. A
// zero-capital account has nothing to move and yields an empty plan
func Build(acc *holdings.Account, target holdings.Weights, prices holdings.Prices, feeRate decimal.Decimal) (*Plan, error) {
	if err := target.Validate(acc); err != nil {
		return nil, err
	}

	capital, err := acc.Capital(prices)
	if err != nil {
		return nil, err
	}
	if capital.IsZero() {
		return &Plan{Coefficient: one}, nil
	}

	current, err := acc.Weights(prices)
	if err != nil {
		return nil, err
	}
	pvc, err := Solve(current, target, feeRate)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Coefficient:   pvc,
		TargetCapital: capital.Mul(pvc),
	}
	plan.TargetCash = plan.TargetCapital.Mul(target.Cash)

	dust := dustThreshold
	if relative := capital.Mul(relativeDustFactor); relative.GreaterThan(dust) {
		dust = relative
	}

	assets := acc.Assets()
	for i := range assets {
		held, err := acc.Amount(assets[i])
		if err != nil {
			return nil, err
		}
		weight := target.Assets[i].Weight
		price := prices[assets[i]]
		if price.IsZero() {
			// a worthless holding contributes no capital and cannot
			// be meaningfully traded at this step
			if weight.GreaterThan(decimal.Zero) {
				return nil, fmt.Errorf("%w: %v", errZeroPriceTarget, assets[i])
			}
			continue
		}
		targetAmount := plan.TargetCapital.Mul(weight).Div(price)
		diff := held.Sub(targetAmount)
		if diff.Abs().Mul(price).LessThanOrEqual(dust) {
			continue
		}
		switch {
		case diff.GreaterThan(decimal.Zero):
			plan.Sells = append(plan.Sells, Trade{Asset: assets[i], Amount: diff})
		case diff.LessThan(decimal.Zero):
			plan.Buys = append(plan.Buys, Trade{Asset: assets[i], Amount: diff.Neg()})
		}
	}
	capBuysToCash(plan, acc.Cash(), prices, feeRate, dust)
	return plan, nil
}

// capBuysToCash sizes the buy legs against the cash projected to
// remain when each executes. The division sizing a leg rounds half up,
// so on an all-in target a buy can ask for a hair more cash than the
// sells free and the engine would reject the whole leg; shortfalls
// inside the dust allowance are clamped to what is actually there
func capBuysToCash(plan *Plan, cash decimal.Decimal, prices holdings.Prices, feeRate, dust decimal.Decimal) {
	for i := range plan.Sells {
		gross := plan.Sells[i].Amount.Mul(prices[plan.Sells[i].Asset])
		cash = cash.Add(gross.Sub(gross.Mul(feeRate)))
	}
	unitFee := one.Add(feeRate)
	kept := plan.Buys[:0]
	for i := range plan.Buys {
		price := prices[plan.Buys[i].Asset]
		cost := plan.Buys[i].Amount.Mul(price).Mul(unitFee)
		if cost.GreaterThan(cash) && cost.Sub(cash).LessThanOrEqual(dust) {
			plan.Buys[i].Amount = affordableAmount(cash, price.Mul(unitFee))
			cost = plan.Buys[i].Amount.Mul(price.Mul(unitFee))
			if plan.Buys[i].Amount.Mul(price).LessThanOrEqual(dust) {
				continue
			}
		}
		kept = append(kept, plan.Buys[i])
		cash = cash.Sub(cost)
	}
	plan.Buys = kept
}

// affordableAmount returns the largest amount purchasable with cash
// when one unit costs unitCost. Division rounds half up, so the result
// is floored and then verified with exact multiplication
func affordableAmount(cash, unitCost decimal.Decimal) decimal.Decimal {
	amount := cash.DivRound(unitCost, 17).RoundDown(16)
	if amount.Mul(unitCost).GreaterThan(cash) {
		amount = amount.Sub(decimal.New(1, -16))
	}
	return amount
}
