// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract defines the uniform seam between the EVM host and the
// cryptographic verification precompiles: a fixed address, a gas quote
// computed before any work runs, and a Run method that charges gas, decodes
// the input, and invokes the scheme's verification engine.
package contract

import (
	"github.com/luxfi/geth/common"
)

// Precompile is the contract the host calls for every precompiled address.
// Implementations are stateless: no field is written after construction, so a
// single instance is shared by all transaction-execution workers without
// locking.
type Precompile interface {
	// Address returns the fixed address this precompile is bound to. Constant
	// per instance, never recomputed.
	Address() common.Address

	// RequiredGas returns the gas quote for the given input. It must not
	// mutate state and must not panic on malformed input: when the declared
	// size fields cannot be read the quote degrades to the scheme's base
	// cost.
	RequiredGas(input []byte) uint64

	// Run executes the precompile. Gas is checked first: if suppliedGas is
	// less than RequiredGas(input) the call fails with ErrOutOfGas before any
	// decoding or verification happens. On a format error the error is
	// returned with the gas for the attempt already charged. The readOnly
	// flag is accepted and ignored; verification precompiles mutate no state
	// and are legitimately callable from staticcall contexts.
	Run(input []byte, suppliedGas uint64, readOnly bool) (ret []byte, remainingGas uint64, err error)
}

// RunFunc decodes an input buffer and runs the scheme's verification engine.
// It returns the encoded boolean result, or a format error.
type RunFunc func(input []byte) ([]byte, error)

// GasFunc computes the gas quote from an input buffer's declared sizes.
type GasFunc func(input []byte) uint64

// statelessPrecompile binds one fixed address to a (gas meter, codec+engine)
// pair and enforces the charge-before-work ordering.
type statelessPrecompile struct {
	address     common.Address
	requiredGas GasFunc
	run         RunFunc
	metrics     *Metrics
}

// NewStatelessPrecompile returns a Precompile dispatching to the given gas
// meter and run function. metrics may be nil.
func NewStatelessPrecompile(address common.Address, requiredGas GasFunc, run RunFunc, metrics *Metrics) Precompile {
	return &statelessPrecompile{
		address:     address,
		requiredGas: requiredGas,
		run:         run,
		metrics:     metrics,
	}
}

func (p *statelessPrecompile) Address() common.Address {
	return p.address
}

func (p *statelessPrecompile) RequiredGas(input []byte) uint64 {
	return p.requiredGas(input)
}

func (p *statelessPrecompile) Run(input []byte, suppliedGas uint64, _ bool) ([]byte, uint64, error) {
	gasCost := p.requiredGas(input)
	if suppliedGas < gasCost {
		// Underpriced calls are rejected before the engine sees the input;
		// verification must never run for free.
		return nil, 0, ErrOutOfGas
	}
	remainingGas := suppliedGas - gasCost

	p.metrics.IncRun()
	ret, err := p.run(input)
	if err != nil {
		// Format error. Gas consumed up to the point of detection stays
		// charged.
		p.metrics.IncFormatError()
		return nil, remainingGas, err
	}
	return ret, remainingGas, nil
}

// StatefulPrecompiledContract is the coreth-facing interface for executing a
// precompiled contract within a message call.
type StatefulPrecompiledContract interface {
	Run(caller common.Address, addr common.Address, input []byte, suppliedGas uint64, readOnly bool) (ret []byte, remainingGas uint64, err error)
}

// statefulAdapter wraps a Precompile for hosts that dispatch through the
// stateful interface. The verification precompiles touch no chain state, so
// caller and addr are accepted and unused.
type statefulAdapter struct {
	inner Precompile
}

// WrapStateful adapts a Precompile to the coreth StatefulPrecompiledContract
// interface.
func WrapStateful(p Precompile) StatefulPrecompiledContract {
	return &statefulAdapter{inner: p}
}

func (a *statefulAdapter) Run(_ common.Address, _ common.Address, input []byte, suppliedGas uint64, readOnly bool) ([]byte, uint64, error) {
	return a.inner.Run(input, suppliedGas, readOnly)
}
