package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
	"github.com/thrasher-corp/exchangesim/portfolio/holdings"
)

var oneHundred = decimal.NewFromInt(100)

// New returns an order engine. feePercent is the proportional cost in
// percent applied to every buy and sell; minOrderSize the smallest
// gross notional, in cash terms, an order may have
func New(feePercent, minOrderSize decimal.Decimal) (*Exchange, error) {
	if feePercent.IsNegative() || feePercent.GreaterThanOrEqual(oneHundred) {
		return nil, fmt.Errorf("%w: %v", errFeeOutOfRange, feePercent)
	}
	if minOrderSize.IsNegative() {
		return nil, fmt.Errorf("%w: %v", errNegativeMinimum, minOrderSize)
	}
	return &Exchange{
		feeRate:      feePercent.Div(oneHundred),
		minOrderSize: minOrderSize,
	}, nil
}

// FeeRate returns the proportional fee as a fraction
func (e *Exchange) FeeRate() decimal.Decimal {
	return e.feeRate
}

// MinOrderSize returns the smallest accepted gross notional
func (e *Exchange) MinOrderSize() decimal.Decimal {
	return e.minOrderSize
}

// Fee returns the fee charged on a gross notional
func (e *Exchange) Fee(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(e.feeRate)
}

// Buy purchases amount of asset at closePrice, adding the fee on top of
// the gross notional. An economic rejection is reported through the
// Result flags; an error means the call itself is malformed, an unknown
// asset or a non-positive amount. The ledger is only touched when every
// check passes, so a rejected order leaves it bit-exact
func (e *Exchange) Buy(acc *holdings.Account, asset currency.Code, amount, closePrice decimal.Decimal) (Result, error) {
	if !amount.IsPositive() {
		return ResultOK, fmt.Errorf("%w: %v", errNonPositiveAmount, amount)
	}
	if _, err := acc.Amount(asset); err != nil {
		return ResultOK, err
	}

	gross := closePrice.Mul(amount)
	cost := gross.Add(e.Fee(gross))

	result := ResultOK
	if cost.GreaterThan(acc.Cash()) {
		result += ResultInsufficientFunds
	}
	if gross.LessThan(e.minOrderSize) {
		result += ResultBelowMinimum
	}
	if !result.Ok() {
		return result, nil
	}

	if err := acc.ReduceCash(cost); err != nil {
		return ResultOK, err
	}
	if err := acc.IncreaseAsset(asset, amount); err != nil {
		return ResultOK, err
	}
	return ResultOK, nil
}

// Sell disposes of amount of asset at closePrice, deducting the fee
// from the gross notional before the proceeds are credited
func (e *Exchange) Sell(acc *holdings.Account, asset currency.Code, amount, closePrice decimal.Decimal) (Result, error) {
	if !amount.IsPositive() {
		return ResultOK, fmt.Errorf("%w: %v", errNonPositiveAmount, amount)
	}
	held, err := acc.Amount(asset)
	if err != nil {
		return ResultOK, err
	}

	gross := closePrice.Mul(amount)
	proceeds := gross.Sub(e.Fee(gross))

	result := ResultOK
	if amount.GreaterThan(held) {
		result += ResultInsufficientFunds
	}
	if gross.LessThan(e.minOrderSize) {
		result += ResultBelowMinimum
	}
	if !result.Ok() {
		return result, nil
	}

	if err := acc.ReduceAsset(asset, amount); err != nil {
		return ResultOK, err
	}
	if err := acc.IncreaseCash(proceeds); err != nil {
		return ResultOK, err
	}
	return ResultOK, nil
}
