// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package precompileconfig defines the configuration surface shared by all
// precompile modules. Configs are parsed from the chain's upgrade JSON and
// must be uniquely keyed across precompiles.
package precompileconfig

// Config is implemented by each precompile's config struct.
type Config interface {
	// Key returns the unique key used in json config files to specify this
	// precompile config.
	Key() string
	// Verify checks the config is well formed at chain startup.
	Verify() error
	// Equal returns true if the given config is equivalent to this one.
	Equal(Config) bool
}

// Configurator is implemented by each precompile module to construct its
// config type for unmarshalling.
type Configurator interface {
	MakeConfig() Config
}

// Upgrade is embedded by precompile configs to carry the activation timestamp.
type Upgrade struct {
	BlockTimestamp *uint64 `json:"blockTimestamp,omitempty"`
}

// Timestamp returns the timestamp this network upgrade goes into effect.
func (u *Upgrade) Timestamp() *uint64 {
	return u.BlockTimestamp
}

// Equal returns true iff the Upgrades carry the same activation timestamp.
func (u *Upgrade) Equal(other *Upgrade) bool {
	if other == nil {
		return false
	}
	if u.BlockTimestamp == nil || other.BlockTimestamp == nil {
		return u.BlockTimestamp == other.BlockTimestamp
	}
	return *u.BlockTimestamp == *other.BlockTimestamp
}
