// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package modules

import (
	"fmt"
	"sort"

	"github.com/luxfi/geth/common"
)

var (
	// registeredModules is sorted by address and is only appended to from
	// init functions, before the node starts serving calls. Every node must
	// agree on the same address to scheme binding for consensus, so the table
	// is never mutated afterwards.
	registeredModules = make([]Module, 0)

	registeredAddresses  = make(map[common.Address]struct{})
	registeredConfigKeys = make(map[string]struct{})
)

// RegisterModule registers a precompile module. It errors if the address or
// config key is already taken. Modules register themselves from init, so a
// conflict is a programming error and callers typically panic on it.
func RegisterModule(m Module) error {
	if _, ok := registeredAddresses[m.Address]; ok {
		return fmt.Errorf("address %s already used by a registered precompile", m.Address)
	}
	if _, ok := registeredConfigKeys[m.ConfigKey]; ok {
		return fmt.Errorf("config key %s already used by a registered precompile", m.ConfigKey)
	}

	registeredAddresses[m.Address] = struct{}{}
	registeredConfigKeys[m.ConfigKey] = struct{}{}

	registeredModules = append(registeredModules, m)
	sort.Sort(moduleArray(registeredModules))
	return nil
}

// GetPrecompileModuleByAddress returns the module registered at the given
// address. ok is false when no precompile occupies the address; the host then
// falls through to regular contract code, this is not an error.
func GetPrecompileModuleByAddress(address common.Address) (Module, bool) {
	for _, m := range registeredModules {
		if m.Address == address {
			return m, true
		}
	}
	return Module{}, false
}

// GetPrecompileModule returns the module registered under the given config
// key.
func GetPrecompileModule(key string) (Module, bool) {
	for _, m := range registeredModules {
		if m.ConfigKey == key {
			return m, true
		}
	}
	return Module{}, false
}

// RegisteredModules returns the registered modules in ascending address
// order. The returned slice is a copy; the registry itself stays immutable.
func RegisteredModules() []Module {
	modules := make([]Module, len(registeredModules))
	copy(modules, registeredModules)
	return modules
}
