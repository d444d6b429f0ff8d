// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package frost

import "github.com/luxfi/precompiles/precompileconfig"

var _ precompileconfig.Config = (*Config)(nil)

// Config implements the precompileconfig.Config interface for the
// Schnorr-threshold precompile.
type Config struct {
	precompileconfig.Upgrade
}

func NewConfig(blockTimestamp *uint64) *Config {
	return &Config{
		Upgrade: precompileconfig.Upgrade{BlockTimestamp: blockTimestamp},
	}
}

func (*Config) Key() string {
	return ConfigKey
}

func (*Config) Verify() error {
	return nil
}

func (c *Config) Equal(cfg precompileconfig.Config) bool {
	other, ok := cfg.(*Config)
	if !ok {
		return false
	}
	return c.Upgrade.Equal(&other.Upgrade)
}
