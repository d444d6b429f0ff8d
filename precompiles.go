// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package precompiles exposes the registered precompile set to an embedding
// EVM. The scheme packages register themselves at init; this package only
// reads the module table.
package precompiles

import (
	"github.com/luxfi/geth/common"
	"github.com/luxfi/log"

	"github.com/luxfi/precompiles/contract"
	"github.com/luxfi/precompiles/modules"
	_ "github.com/luxfi/precompiles/registry"
)

// ActivePrecompiles returns the full address-to-contract table. The map is
// freshly built on each call; callers may mutate their copy.
func ActivePrecompiles() map[common.Address]contract.Precompile {
	registered := modules.RegisteredModules()
	active := make(map[common.Address]contract.Precompile, len(registered))
	for _, module := range registered {
		active[module.Address] = module.Contract
	}
	return active
}

// Initialize logs the registered precompile set. It is optional; the module
// table is already populated by package init.
func Initialize(logger log.Logger) {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	for _, module := range modules.RegisteredModules() {
		logger.Info("registered precompile",
			log.String("configKey", module.ConfigKey),
			log.Stringer("address", module.Address),
		)
	}
}
