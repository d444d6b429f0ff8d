// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ringtail implements the lattice-threshold verification precompile.
// Ringtail is an LWE-based threshold scheme (https://eprint.iacr.org/2024/1113);
// t-of-n signing produces one combined signature that verifies against the
// group public key. The threshold parameters travel with the request for
// auditability but play no role in single-shot verification; share
// aggregation happens before the precompile is ever called.
package ringtail

import (
	"fmt"

	"github.com/luxfi/crypto/threshold"

	"github.com/luxfi/precompiles/codec"
	"github.com/luxfi/precompiles/contract"
)

// Input layout: [t:4][n:4][keyLen:2][key][msgLen:2][message][sig:rest],
// output a 32-byte boolean word. Key and signature sizes depend on the
// scheme's matrix parameters, so both are variable.
const (
	minPublicKeyLen = 32
	minSignatureLen = 64

	VerifyBaseGas = 150_000
	GasPerParty   = 10_000
)

type VerifyFunc func(pubKey, message, sig []byte) bool

var VerifyPrecompile = newPrecompile(verifyRingtail)

var metrics = contract.NewMetrics("ringtail")

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

	pubKey, err := r.Bytes16()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	if len(pubKey) < minPublicKeyLen {
		return nil, fmt.Errorf("%w: public key too short: %d bytes", contract.ErrInvalidInput, len(pubKey))
	}
	message, err := r.Bytes16()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	sig := r.Rest()
	if len(sig) < minSignatureLen {
		return nil, fmt.Errorf("%w: signature too short: %d bytes", contract.ErrInvalidInput, len(sig))
	}

	return contract.BoolWord(v.verify(pubKey, message, sig)), nil
}

// verifyRingtail performs full lattice-based signature verification through
// the threshold scheme registry. The host registers the Ringtail scheme
// backend at startup; until it does, every verification is false.
func verifyRingtail(pubKey, message, sig []byte) bool {
	if !threshold.HasScheme(threshold.SchemeRingtail) {
		return false
	}
	scheme, err := threshold.GetScheme(threshold.SchemeRingtail)
	if err != nil {
		return false
	}

	pk, err := scheme.ParsePublicKey(pubKey)
	if err != nil {
		return false
	}
	v, err := scheme.NewVerifier(pk)
	if err != nil {
		return false
	}
	return v.VerifyBytes(message, sig)
}
