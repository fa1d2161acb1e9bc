package holdings

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
)

// weightsSumTolerance bounds how far a target's weights may drift from
// summing to exactly 1 before being rejected
var weightsSumTolerance = decimal.New(1, -9)

// NewAccount returns a ledger holding initialCash and a zero amount for
// every asset in the supplied order
func NewAccount(initialCash decimal.Decimal, assets []currency.Code) (*Account, error) {
	if initialCash.IsNegative() {
		return nil, fmt.Errorf("%w: %v", errNegativeCash, initialCash)
	}
	if len(assets) == 0 {
		return nil, errNoAssets
	}
	a := &Account{
		cash:    initialCash,
		amounts: make(map[currency.Code]decimal.Decimal, len(assets)),
		order:   make([]currency.Code, len(assets)),
	}
	for i := range assets {
		if _, ok := a.amounts[assets[i]]; ok {
			return nil, fmt.Errorf("%w: %v", errDuplicateAsset, assets[i])
		}
		a.amounts[assets[i]] = decimal.Zero
		a.order[i] = assets[i]
	}
	return a, nil
}

// Cash returns the current cash balance
func (a *Account) Cash() decimal.Decimal {
	return a.cash
}

// Amount returns the held quantity of one asset
func (a *Account) Amount(asset currency.Code) (decimal.Decimal, error) {
	amount, ok := a.amounts[asset]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrAssetNotFound, asset)
	}
	return amount, nil
}

// Assets returns the ledger's assets in configured order
func (a *Account) Assets() []currency.Code {
	resp := make([]currency.Code, len(a.order))
	copy(resp, a.order)
	return resp
}

// Balance returns a copy of the full ledger, cash keyed under "cash"
func (a *Account) Balance() map[string]decimal.Decimal {
	resp := make(map[string]decimal.Decimal, len(a.order)+1)
	resp[CashName] = a.cash
	for i := range a.order {
		resp[a.order[i].String()] = a.amounts[a.order[i]]
	}
	return resp
}

// Capital returns cash plus every asset valued at its close price. It
// ignores the fee cost of liquidating, so it is an upper bound rather
// than a realisable exit value
func (a *Account) Capital(prices Prices) (decimal.Decimal, error) {
	capital := a.cash
	for i := range a.order {
		price, ok := prices[a.order[i]]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %v", errMissingPrice, a.order[i])
		}
		capital = capital.Add(a.amounts[a.order[i]].Mul(price))
	}
	return capital, nil
}

// Weights returns each entry's share of capital, cash first then assets
// in configured order. A zero-capital account has no meaningful
// distribution and reports all-zero weights
func (a *Account) Weights(prices Prices) (Weights, error) {
	capital, err := a.Capital(prices)
	if err != nil {
		return Weights{}, err
	}
	w := Weights{Assets: make([]AssetWeight, len(a.order))}
	for i := range a.order {
		w.Assets[i].Asset = a.order[i]
	}
	if capital.IsZero() {
		return w, nil
	}
	w.Cash = a.cash.Div(capital)
	for i := range a.order {
		w.Assets[i].Weight = a.amounts[a.order[i]].Mul(prices[a.order[i]]).Div(capital)
	}
	return w, nil
}

// IncreaseCash credits the cash balance
func (a *Account) IncreaseCash(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %v", errNegativeAmount, amount)
	}
	a.cash = a.cash.Add(amount)
	return nil
}

// ReduceCash debits the cash balance, refusing to go negative
func (a *Account) ReduceCash(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %v", errNegativeAmount, amount)
	}
	if amount.GreaterThan(a.cash) {
		return fmt.Errorf("%w: cash %v < %v", errInsufficient, a.cash, amount)
	}
	a.cash = a.cash.Sub(amount)
	return nil
}

// IncreaseAsset credits an asset's held quantity
func (a *Account) IncreaseAsset(asset currency.Code, amount decimal.Decimal) error {
	held, ok := a.amounts[asset]
	if !ok {
		return fmt.Errorf("%w: %v", ErrAssetNotFound, asset)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: %v", errNegativeAmount, amount)
	}
	a.amounts[asset] = held.Add(amount)
	return nil
}

// ReduceAsset debits an asset's held quantity, refusing to go negative
func (a *Account) ReduceAsset(asset currency.Code, amount decimal.Decimal) error {
	held, ok := a.amounts[asset]
	if !ok {
		return fmt.Errorf("%w: %v", ErrAssetNotFound, asset)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: %v", errNegativeAmount, amount)
	}
	if amount.GreaterThan(held) {
		return fmt.Errorf("%w: %v %v < %v", errInsufficient, asset, held, amount)
	}
	a.amounts[asset] = held.Sub(amount)
	return nil
}

// Weight returns the weight recorded for one asset
func (w *Weights) Weight(asset currency.Code) (decimal.Decimal, error) {
	for i := range w.Assets {
		if w.Assets[i].Asset.Equal(asset) {
			return w.Assets[i].Weight, nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: %v", ErrAssetNotFound, asset)
}

// Validate checks a caller-supplied target distribution against the
// account it is meant for: entries must match the ledger's asset set in
// order, no entry may be negative and the total must be 1
func (w *Weights) Validate(a *Account) error {
	if len(w.Assets) != len(a.order) {
		return errWeightMismatch
	}
	sum := w.Cash
	if w.Cash.IsNegative() {
		return fmt.Errorf("%w: cash %v", errNegativeWeight, w.Cash)
	}
	for i := range w.Assets {
		if !w.Assets[i].Asset.Equal(a.order[i]) {
			return fmt.Errorf("%w: %v at index %v", errWeightMismatch, w.Assets[i].Asset, i)
		}
		if w.Assets[i].Weight.IsNegative() {
			return fmt.Errorf("%w: %v %v", errNegativeWeight, w.Assets[i].Asset, w.Assets[i].Weight)
		}
		sum = sum.Add(w.Assets[i].Weight)
	}
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(weightsSumTolerance) {
		return fmt.Errorf("%w, got %v", errWeightsSum, sum)
	}
	return nil
}
