// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import "github.com/luxfi/precompiles/precompileconfig"

var (
	_ precompileconfig.Config = (*VerifyConfig)(nil)
	_ precompileconfig.Config = (*AggregateConfig)(nil)
)

// VerifyConfig implements the precompileconfig.Config interface for the BLS
// verification precompile. The precompile keeps no state, so the config only
// carries the activation timestamp.
type VerifyConfig struct {
	precompileconfig.Upgrade
}

// AggregateConfig is the analogous config for the aggregation precompile.
type AggregateConfig struct {
	precompileconfig.Upgrade
}

// NewVerifyConfig returns a config activating the verification precompile at
// blockTimestamp.
func NewVerifyConfig(blockTimestamp *uint64) *VerifyConfig {
	return &VerifyConfig{
		Upgrade: precompileconfig.Upgrade{BlockTimestamp: blockTimestamp},
	}
}

// NewAggregateConfig returns a config activating the aggregation precompile
// at blockTimestamp.
func NewAggregateConfig(blockTimestamp *uint64) *AggregateConfig {
	return &AggregateConfig{
		Upgrade: precompileconfig.Upgrade{BlockTimestamp: blockTimestamp},
	}
}

func (*VerifyConfig) Key() string {
	return VerifyConfigKey
}

func (*VerifyConfig) Verify() error {
	return nil
}

func (c *VerifyConfig) Equal(cfg precompileconfig.Config) bool {
	other, ok := cfg.(*VerifyConfig)
	if !ok {
		return false
	}
	return c.Upgrade.Equal(&other.Upgrade)
}

func (*AggregateConfig) Key() string {
	return AggregateConfigKey
}

func (*AggregateConfig) Verify() error {
	return nil
}

func (c *AggregateConfig) Equal(cfg precompileconfig.Config) bool {
	other, ok := cfg.(*AggregateConfig)
	if !ok {
		return false
	}
	return c.Upgrade.Equal(&other.Upgrade)
}
