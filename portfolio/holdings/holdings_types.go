package holdings

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
)

var (
	// ErrAssetNotFound returned when an asset is not part of the ledger
	ErrAssetNotFound = errors.New("asset not found in ledger")

	errNoAssets       = errors.New("no assets provided")
	errDuplicateAsset = errors.New("duplicate asset")
	errNegativeCash   = errors.New("initial cash cannot be negative")
	errNegativeAmount = errors.New("amount cannot be negative")
	errInsufficient   = errors.New("insufficient holdings")
	errWeightMismatch = errors.New("weights do not cover the ledger's asset set")
	errNegativeWeight = errors.New("weights cannot be negative")
	errWeightsSum     = errors.New("weights must sum to 1")
	errMissingPrice   = errors.New("no price for asset")
)

// CashName is the reserved balance key for the base currency
const CashName = "cash"

// Prices holds the close price per asset for one step. Cash is a
// pseudo-asset always priced at 1 and is never keyed here
type Prices map[currency.Code]decimal.Decimal

// Account is the single ledger of a simulation: a dedicated cash entry
// plus one non-negative amount per configured asset, held in the fixed
// configured order. Mutation goes through the guarded methods only
type Account struct {
	cash    decimal.Decimal
	amounts map[currency.Code]decimal.Decimal
	order   []currency.Code
}

// AssetWeight is one asset's fraction of total capital
type AssetWeight struct {
	Asset  currency.Code
	Weight decimal.Decimal
}

// Weights is a capital distribution over cash and assets. Cash is held
// apart and first, matching its privileged index in the rebalancing
// formulas; assets follow in the ledger's configured order
type Weights struct {
	Cash   decimal.Decimal
	Assets []AssetWeight
}
