package config

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
)

var (
	errNoAssets           = errors.New("no assets provided")
	errDuplicateAsset     = errors.New("duplicate asset")
	errReservedAssetName  = errors.New("asset name is reserved for cash")
	errNegativeCash       = errors.New("initial cash cannot be negative")
	errNegativeMinimum    = errors.New("minimum order size cannot be negative")
	errFeeOutOfRange      = errors.New("fee percent must be in range [0, 100)")
	errUnknownWeightAsset = errors.New("target weight references unknown asset")
	errBadRebalanceEvery  = errors.New("rebalance interval must be positive")
)

// CashName is the reserved balance key for the base currency
const CashName = "cash"

// DataSettings describes where candle data is loaded from. One CSV file
// per asset is expected under CSVPath, named after the lower-cased code
type DataSettings struct {
	CSVPath string `json:"csvPath"`
}

// StrategySettings configures the constant-mix driver. TargetWeights is
// keyed by asset code plus the reserved cash name and must sum to 1
type StrategySettings struct {
	TargetWeights  map[string]decimal.Decimal `json:"targetWeights"`
	RebalanceEvery int                        `json:"rebalanceEvery"`
}

// Config defines a simulation run
type Config struct {
	InitialCash      decimal.Decimal  `json:"initialCash"`
	FeePercent       decimal.Decimal  `json:"feePercent"`
	MinimumOrderSize decimal.Decimal  `json:"minimumOrderSize"`
	Assets           []currency.Code  `json:"assets"`
	Data             DataSettings     `json:"data"`
	Strategy         StrategySettings `json:"strategy"`
	Verbose          bool             `json:"verbose"`
}
