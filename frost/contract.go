// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package frost implements the Schnorr-threshold verification precompile.
// FROST signing sessions emit one compact 64-byte Ed25519 signature, verified
// directly against the 32-byte group public key. Schnorr has no recovery
// ambiguity, so unlike the ECDSA-threshold precompile there is no
// recover-and-compare step.
package frost

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/luxfi/precompiles/codec"
	"github.com/luxfi/precompiles/contract"
)

// Input layout: [t:4][n:4][pubkey:32][msgLen:2][message][sig:64], output a
// 32-byte boolean word. An empty message is legal.
const (
	publicKeyLen = ed25519.PublicKeySize
	signatureLen = ed25519.SignatureSize

	VerifyBaseGas = 30_000
	GasPerParty   = 10_000
)

type VerifyFunc func(pubKey, message, sig []byte) bool

var VerifyPrecompile = newPrecompile(verifyEd25519)

var metrics = contract.NewMetrics("frost")

type verifier struct {
	verify VerifyFunc
}

func newPrecompile(verify VerifyFunc) contract.Precompile {
	v := &verifier{verify: verify}
	return contract.NewStatelessPrecompile(ContractAddress, requiredGas, v.run, metrics)
}

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
	message, err := r.Bytes16()
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

	return contract.BoolWord(v.verify(pubKey, message, sig)), nil
}

func verifyEd25519(pubKey, message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pubKey), message, sig)
}
