// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ringtail

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/precompiles/modules"
	"github.com/luxfi/precompiles/precompileconfig"
)

var _ precompileconfig.Configurator = (*configurator)(nil)

// ConfigKey is the key used in json config files to specify this precompile
// config. Must be unique across all precompiles.
const ConfigKey = "ringtailConfig"

// ContractAddress is the fixed address of the lattice-threshold verification
// precompile.
var ContractAddress = common.HexToAddress("0x0300000000000000000000000000000000000003")

// Module is the precompile module. It is used to register the precompile
// contract.
var Module = modules.Module{
	ConfigKey:    ConfigKey,
	Address:      ContractAddress,
	Contract:     VerifyPrecompile,
	Configurator: &configurator{},
}

type configurator struct{}

func init() {
	if err := modules.RegisterModule(Module); err != nil {
		panic(err)
	}
}

// MakeConfig returns a new precompile config instance.
func (*configurator) MakeConfig() precompileconfig.Config {
	return new(Config)
}
