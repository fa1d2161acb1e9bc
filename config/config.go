package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/exchangesim/currency"
)

var oneHundred = decimal.NewFromInt(100)

// ReadConfigFromFile will take a config from a path
func ReadConfigFromFile(path string) (*Config, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(fileData)
}

// LoadConfig unmarshals byte data into a config struct
func LoadConfig(data []byte) (*Config, error) {
	var resp *Config
	err := json.Unmarshal(data, &resp)
	return resp, err
}

// Validate checks all config settings, failing fast on anything that
// would otherwise surface mid-simulation
func (c *Config) Validate() error {
	if c.InitialCash.IsNegative() {
		return fmt.Errorf("%w: %v", errNegativeCash, c.InitialCash)
	}
	if c.MinimumOrderSize.IsNegative() {
		return fmt.Errorf("%w: %v", errNegativeMinimum, c.MinimumOrderSize)
	}
	if c.FeePercent.IsNegative() || c.FeePercent.GreaterThanOrEqual(oneHundred) {
		return fmt.Errorf("%w: %v", errFeeOutOfRange, c.FeePercent)
	}
	if err := c.validateAssets(); err != nil {
		return err
	}
	return c.validateStrategy()
}

func (c *Config) validateAssets() error {
	if len(c.Assets) == 0 {
		return errNoAssets
	}
	seen := make(map[currency.Code]bool, len(c.Assets))
	for i := range c.Assets {
		a := currency.NewCode(c.Assets[i].String())
		if a.IsEmpty() {
			return fmt.Errorf("%w at index %v", errNoAssets, i)
		}
		if a.Lower() == CashName {
			return fmt.Errorf("%w: %v", errReservedAssetName, a)
		}
		if seen[a] {
			return fmt.Errorf("%w: %v", errDuplicateAsset, a)
		}
		seen[a] = true
	}
	return nil
}

func (c *Config) validateStrategy() error {
	if len(c.Strategy.TargetWeights) == 0 {
		return nil
	}
	if c.Strategy.RebalanceEvery <= 0 {
		return fmt.Errorf("%w: %v", errBadRebalanceEvery, c.Strategy.RebalanceEvery)
	}
	for name := range c.Strategy.TargetWeights {
		if name == CashName {
			continue
		}
		if !c.hasAsset(currency.NewCode(name)) {
			return fmt.Errorf("%w: %v", errUnknownWeightAsset, name)
		}
	}
	return nil
}

func (c *Config) hasAsset(a currency.Code) bool {
	for i := range c.Assets {
		if c.Assets[i].Equal(a) {
			return true
		}
	}
	return false
}
