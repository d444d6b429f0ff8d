// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package modules is the process-wide table from fixed precompile address to
// dispatcher instance. It is populated once by each precompile's init
// function at node startup and read-only for the remainder of the process
// lifetime, so lookups need no locking.
package modules

import (
	"bytes"

	"github.com/luxfi/geth/common"

	"github.com/luxfi/precompiles/contract"
	"github.com/luxfi/precompiles/precompileconfig"
)

// Module binds one fixed address to a precompile contract and its config
// machinery.
type Module struct {
	// ConfigKey is the unique key used in json config files to specify this
	// precompile config.
	ConfigKey string
	// Address is the address where the precompile is accessible.
	Address common.Address
	// Contract is the precompile contract bound at Address.
	Contract contract.Precompile
	// Configurator builds the module's config type for unmarshalling.
	Configurator precompileconfig.Configurator
}

type moduleArray []Module

func (m moduleArray) Len() int {
	return len(m)
}

func (m moduleArray) Swap(i, j int) {
	m[i], m[j] = m[j], m[i]
}

func (m moduleArray) Less(i, j int) bool {
	return bytes.Compare(m[i].Address.Bytes(), m[j].Address.Bytes()) < 0
}
