// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verkle implements the compressed-witness precompile. The input is
// a fixed 44-byte witness carrying truncated commitment and proof material
// plus metadata produced off-chain by the aggregation pipeline.
//
// This precompile performs structural validation only: it checks the witness
// version, the threshold-met flag, and that the commitment, proof, and
// validator bitmap are non-degenerate. It does NOT re-run the polynomial
// commitment opening; the 16-byte truncations do not carry enough
// information for that, and callers must treat a true result as "the witness
// is well-formed and claims success", a strictly weaker statement than
// cryptographic verification.
package verkle

import (
	"fmt"

	"github.com/luxfi/precompiles/codec"
	"github.com/luxfi/precompiles/contract"
)

const (
	commitmentLen    = 16
	proofLen         = 16
	metadataLen      = 8
	validatorBitsLen = 4

	inputLen = commitmentLen + proofLen + metadataLen + validatorBitsLen // 44

	// witnessVersion is the only version byte this implementation accepts.
	witnessVersion = 0x01

	// thresholdMetBit in metadata[1] records whether the off-chain
	// aggregation reached its signer threshold.
	thresholdMetBit = 0x01

	// CheckGas is flat: the input is fixed-size and the work is byte
	// inspection.
	CheckGas = 3_000
)

type CheckFunc func(commitment, proof, metadata, validatorBits []byte) bool

// CheckPrecompile validates a 44-byte compressed witness. Input
// [commitment:16][proof:16][metadata:8][validatorBits:4], output a boolean
// byte.
var CheckPrecompile = newPrecompile(checkWitness)

var metrics = contract.NewMetrics("verkle")

func newPrecompile(check CheckFunc) contract.Precompile {
	run := func(input []byte) ([]byte, error) {
		r := codec.NewReader(input)
		commitment, err := r.Fixed(commitmentLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
		}
		proof, err := r.Fixed(proofLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
		}
		metadata, err := r.Fixed(metadataLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
		}
		validatorBits, err := r.Fixed(validatorBitsLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
		}
		if err := r.Done(); err != nil {
			return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
		}
		if metadata[0] != witnessVersion {
			return nil, fmt.Errorf("%w: witness version 0x%02x, want 0x%02x",
				contract.ErrInvalidInput, metadata[0], witnessVersion)
		}
		return contract.BoolByte(check(commitment, proof, metadata, validatorBits)), nil
	}
	return contract.NewStatelessPrecompile(ContractAddress, requiredGas, run, metrics)
}

func requiredGas([]byte) uint64 {
	return CheckGas
}

func checkWitness(commitment, proof, metadata, validatorBits []byte) bool {
	if metadata[1]&thresholdMetBit == 0 {
		return false
	}
	return !isZero(commitment) && !isZero(proof) && !isZero(validatorBits)
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
