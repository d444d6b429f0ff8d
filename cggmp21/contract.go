// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cggmp21 implements the ECDSA-threshold verification precompile.
// CGGMP21 signing produces a standard secp256k1 ECDSA signature, so the
// precompile verifies one (r,s,v) signature and additionally recovers the
// signer from it, requiring the recovered key to match the key supplied in
// the call.
package cggmp21

import (
	"bytes"
	"fmt"

	"github.com/luxfi/crypto"

	"github.com/luxfi/precompiles/codec"
	"github.com/luxfi/precompiles/contract"
)

// Input layout: [t:4][n:4][pubkey:65][msgHash:32][sig:65], output a 32-byte
// boolean word.
const (
	thresholdParamsLen = 8
	publicKeyLen       = 65
	msgHashLen         = 32
	signatureLen       = 65

	// VerifyBaseGas is charged for every call; GasPerParty scales with the
	// declared total signer count n.
	VerifyBaseGas = 50_000
	GasPerParty   = 10_000
)

// VerifyFunc checks an ECDSA signature over a 32-byte hash against a 65-byte
// uncompressed public key.
type VerifyFunc func(pubKey, msgHash, sig []byte) bool

// VerifyPrecompile is the ECDSA-threshold precompile bound at
// ContractAddress.
var VerifyPrecompile = newPrecompile(verifyECDSA)

var metrics = contract.NewMetrics("cggmp21")

type verifier struct {
	verify VerifyFunc
}

func newPrecompile(verify VerifyFunc) contract.Precompile {
	v := &verifier{verify: verify}
	return contract.NewStatelessPrecompile(ContractAddress, requiredGas, v.run, metrics)
}

// requiredGas quotes from the declared signer count alone. A buffer too short
// to carry the threshold header degrades to the base cost.
func requiredGas(input []byte) uint64 {
	n, ok := codec.PeekUint32(input, 4)
	if !ok {
		return VerifyBaseGas
	}
	return contract.LinearGas(VerifyBaseGas, GasPerParty, uint64(n))
}

func (v *verifier) run(input []byte) ([]byte, error) {
	r := codec.NewReader(input)

	t, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	n, err := r.Uint32()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	if t == 0 || t > n {
		return nil, fmt.Errorf("%w: threshold %d of %d parties", contract.ErrInvalidInput, t, n)
	}

	pubKey, err := r.Fixed(publicKeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	msgHash, err := r.Fixed(msgHashLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	sig, err := r.Fixed(signatureLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	if err := r.Done(); err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	if pubKey[0] != 0x04 {
		return nil, fmt.Errorf("%w: public key is not an uncompressed point", contract.ErrInvalidInput)
	}

	return contract.BoolWord(v.verify(pubKey, msgHash, sig)), nil
}

func verifyECDSA(pubKey, msgHash, sig []byte) bool {
	recovered, err := crypto.Ecrecover(msgHash, sig)
	if err != nil {
		return false
	}
	// A signature that verifies under some other valid key than the one
	// claimed is rejected here; plain ECDSA verify alone would accept it.
	if !bytes.Equal(recovered, pubKey) {
		return false
	}
	return crypto.VerifySignature(pubKey, msgHash, sig[:64])
}
