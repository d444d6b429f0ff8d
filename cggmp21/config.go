// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cggmp21

import "github.com/luxfi/precompiles/precompileconfig"

var _ precompileconfig.Config = (*Config)(nil)

// Config implements the precompileconfig.Config interface for the
// ECDSA-threshold precompile. The precompile keeps no state, so the config
// only carries the activation timestamp.
type Config struct {
	precompileconfig.Upgrade
}

// NewConfig returns a config activating the precompile at blockTimestamp.
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
