package holdings

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/exchangesim/currency"
)

var (
	btc = currency.NewCode("BTC")
	eth = currency.NewCode("ETH")
)

func testAccount(t *testing.T) *Account {
	t.Helper()
	a, err := NewAccount(decimal.NewFromInt(10000), []currency.Code{btc, eth})
	require.NoError(t, err)
	return a
}

func testPrices() Prices {
	return Prices{
		btc: decimal.NewFromInt(20000),
		eth: decimal.NewFromInt(1000),
	}
}

func TestNewAccount(t *testing.T) {
	t.Parallel()
	_, err := NewAccount(decimal.NewFromInt(-1), []currency.Code{btc})
	assert.ErrorIs(t, err, errNegativeCash)

	_, err = NewAccount(decimal.Zero, nil)
	assert.ErrorIs(t, err, errNoAssets)

	_, err = NewAccount(decimal.Zero, []currency.Code{btc, btc})
	assert.ErrorIs(t, err, errDuplicateAsset)

	a := testAccount(t)
	assert.True(t, a.Cash().Equal(decimal.NewFromInt(10000)))
	amount, err := a.Amount(btc)
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
	assert.Equal(t, []currency.Code{btc, eth}, a.Assets())
}

func TestBalance(t *testing.T) {
	t.Parallel()
	a := testAccount(t)
	b := a.Balance()
	require.Len(t, b, 3)
	assert.True(t, b[CashName].Equal(decimal.NewFromInt(10000)))
	assert.True(t, b["BTC"].IsZero())

	// mutating the copy must not touch the ledger
	b[CashName] = decimal.Zero
	assert.True(t, a.Cash().Equal(decimal.NewFromInt(10000)))
}

func TestAmountUnknownAsset(t *testing.T) {
	t.Parallel()
	a := testAccount(t)
	_, err := a.Amount(currency.NewCode("XRP"))
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestCapital(t *testing.T) {
	t.Parallel()
	a := testAccount(t)
	capital, err := a.Capital(testPrices())
	require.NoError(t, err)
	assert.True(t, capital.Equal(decimal.NewFromInt(10000)))

	require.NoError(t, a.IncreaseAsset(btc, decimal.NewFromFloat(0.5)))
	capital, err = a.Capital(testPrices())
	require.NoError(t, err)
	assert.True(t, capital.Equal(decimal.NewFromInt(20000)))

	_, err = a.Capital(Prices{btc: decimal.NewFromInt(20000)})
	assert.ErrorIs(t, err, errMissingPrice)
}

func TestWeights(t *testing.T) {
	t.Parallel()
	a := testAccount(t)
	require.NoError(t, a.IncreaseAsset(btc, decimal.NewFromFloat(0.5)))

	w, err := a.Weights(testPrices())
	require.NoError(t, err)
	assert.True(t, w.Cash.Equal(decimal.NewFromFloat(0.5)))
	bw, err := w.Weight(btc)
	require.NoError(t, err)
	assert.True(t, bw.Equal(decimal.NewFromFloat(0.5)))
	ew, err := w.Weight(eth)
	require.NoError(t, err)
	assert.True(t, ew.IsZero())
}

func TestWeightsZeroCapital(t *testing.T) {
	t.Parallel()
	a, err := NewAccount(decimal.Zero, []currency.Code{btc})
	require.NoError(t, err)
	w, err := a.Weights(testPrices())
	require.NoError(t, err)
	assert.True(t, w.Cash.IsZero())
	require.Len(t, w.Assets, 1)
	assert.True(t, w.Assets[0].Weight.IsZero())
}

func TestCashMutation(t *testing.T) {
	t.Parallel()
	a := testAccount(t)
	assert.ErrorIs(t, a.IncreaseCash(decimal.NewFromInt(-1)), errNegativeAmount)
	assert.ErrorIs(t, a.ReduceCash(decimal.NewFromInt(10001)), errInsufficient)
	require.NoError(t, a.ReduceCash(decimal.NewFromInt(10000)))
	assert.True(t, a.Cash().IsZero())
	require.NoError(t, a.IncreaseCash(decimal.NewFromInt(5)))
	assert.True(t, a.Cash().Equal(decimal.NewFromInt(5)))
}

func TestAssetMutation(t *testing.T) {
	t.Parallel()
	a := testAccount(t)
	xrp := currency.NewCode("XRP")
	assert.ErrorIs(t, a.IncreaseAsset(xrp, decimal.NewFromInt(1)), ErrAssetNotFound)
	assert.ErrorIs(t, a.ReduceAsset(xrp, decimal.NewFromInt(1)), ErrAssetNotFound)
	assert.ErrorIs(t, a.IncreaseAsset(btc, decimal.NewFromInt(-1)), errNegativeAmount)
	assert.ErrorIs(t, a.ReduceAsset(btc, decimal.NewFromInt(1)), errInsufficient)

	require.NoError(t, a.IncreaseAsset(btc, decimal.NewFromInt(2)))
	require.NoError(t, a.ReduceAsset(btc, decimal.NewFromInt(2)))
	amount, err := a.Amount(btc)
	require.NoError(t, err)
	assert.True(t, amount.IsZero())
}

func TestWeightsValidate(t *testing.T) {
	t.Parallel()
	a := testAccount(t)

	valid := Weights{
		Cash: decimal.NewFromFloat(0.2),
		Assets: []AssetWeight{
			{Asset: btc, Weight: decimal.NewFromFloat(0.5)},
			{Asset: eth, Weight: decimal.NewFromFloat(0.3)},
		},
	}
	assert.NoError(t, valid.Validate(a))

	short := Weights{Cash: decimal.NewFromInt(1)}
	assert.ErrorIs(t, short.Validate(a), errWeightMismatch)

	misordered := Weights{
		Cash: decimal.NewFromFloat(0.2),
		Assets: []AssetWeight{
			{Asset: eth, Weight: decimal.NewFromFloat(0.3)},
			{Asset: btc, Weight: decimal.NewFromFloat(0.5)},
		},
	}
	assert.ErrorIs(t, misordered.Validate(a), errWeightMismatch)

	negative := valid
	negative.Cash = decimal.NewFromFloat(-0.2)
	assert.ErrorIs(t, negative.Validate(a), errNegativeWeight)

	overAllocated := Weights{
		Cash: decimal.NewFromFloat(0.5),
		Assets: []AssetWeight{
			{Asset: btc, Weight: decimal.NewFromFloat(0.5)},
			{Asset: eth, Weight: decimal.NewFromFloat(0.3)},
		},
	}
	assert.ErrorIs(t, overAllocated.Validate(a), errWeightsSum)
}
