// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"github.com/luxfi/geth/common"

	"github.com/luxfi/precompiles/modules"
	"github.com/luxfi/precompiles/precompileconfig"
)

var (
	_ precompileconfig.Configurator = (*verifyConfigurator)(nil)
	_ precompileconfig.Configurator = (*aggregateConfigurator)(nil)
)

// Config keys used in json config files to specify these precompile configs.
// Must be unique across all precompiles.
const (
	VerifyConfigKey    = "blsVerifyConfig"
	AggregateConfigKey = "blsAggregateConfig"
)

// Fixed addresses of the two BLS precompiles. They are part of the wire
// contract and must not shift between implementations.
var (
	VerifyAddress    = common.HexToAddress("0x0300000000000000000000000000000000000006")
	AggregateAddress = common.HexToAddress("0x0300000000000000000000000000000000000007")
)

// VerifyModule and AggregateModule register the two BLS precompile
// contracts. The package hosts both because they share the curve library and
// the signature wire format.
var (
	VerifyModule = modules.Module{
		ConfigKey:    VerifyConfigKey,
		Address:      VerifyAddress,
		Contract:     VerifyPrecompile,
		Configurator: &verifyConfigurator{},
	}
	AggregateModule = modules.Module{
		ConfigKey:    AggregateConfigKey,
		Address:      AggregateAddress,
		Contract:     AggregatePrecompile,
		Configurator: &aggregateConfigurator{},
	}
)

type (
	verifyConfigurator    struct{}
	aggregateConfigurator struct{}
)

func init() {
	// Each precompile contract registers itself through [RegisterModule].
	for _, module := range []modules.Module{VerifyModule, AggregateModule} {
		if err := modules.RegisterModule(module); err != nil {
			panic(err)
		}
	}
}

// MakeConfig returns a new precompile config instance. This is required to
// Marshal/Unmarshal the precompile config.
func (*verifyConfigurator) MakeConfig() precompileconfig.Config {
	return new(VerifyConfig)
}

func (*aggregateConfigurator) MakeConfig() precompileconfig.Config {
	return new(AggregateConfig)
}
