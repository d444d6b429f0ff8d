// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package slhdsa implements the SLH-DSA (FIPS 205) verification precompile.
// Stateless Hash-Based Digital Signature Algorithm, formerly SPHINCS+. All
// six parameter sets live behind one address, selected by the leading mode
// byte; the mode is validated against the enum before any size table lookup,
// never inferred from the buffer length.
package slhdsa

import (
	"fmt"

	slhdsacrypto "github.com/luxfi/crypto/slhdsa"

	"github.com/luxfi/precompiles/codec"
	"github.com/luxfi/precompiles/contract"
)

// Input layout: [mode:1][pubKeyLen:2][pubKey][msgLen:2][message][sig:rest],
// output a single boolean byte.
const (
	// Mode bytes for the FIPS 205 parameter sets.
	Mode128s byte = 0
	Mode128f byte = 1
	Mode192s byte = 2
	Mode192f byte = 3
	Mode256s byte = 4
	Mode256f byte = 5

	VerifyBaseGas = 100_000
	GasPerMsgByte = 10
)

// params holds the fixed key and signature sizes of one parameter set
// (FIPS 205).
type params struct {
	mode         slhdsacrypto.Mode
	publicKeyLen int
	signatureLen int
}

var paramSets = map[byte]params{
	Mode128s: {slhdsacrypto.SHA2_128s, 32, 7856},
	Mode128f: {slhdsacrypto.SHA2_128f, 32, 17088},
	Mode192s: {slhdsacrypto.SHA2_192s, 48, 16224},
	Mode192f: {slhdsacrypto.SHA2_192f, 48, 35664},
	Mode256s: {slhdsacrypto.SHA2_256s, 64, 29792},
	Mode256f: {slhdsacrypto.SHA2_256f, 64, 49856},
}

type VerifyFunc func(mode slhdsacrypto.Mode, pubKey, message, sig []byte) bool

var VerifyPrecompile = newPrecompile(verifySLHDSA)

var metrics = contract.NewMetrics("slhdsa")

type verifier struct {
	verify VerifyFunc
}

func newPrecompile(verify VerifyFunc) contract.Precompile {
	v := &verifier{verify: verify}
	return contract.NewStatelessPrecompile(ContractAddress, requiredGas, v.run, metrics)
}

// requiredGas scales with the declared message length. Reaching the message
// length prefix requires skipping the declared public key; if either prefix
// is unreadable the quote degrades to the base cost.
func requiredGas(input []byte) uint64 {
	pubKeyLen, ok := codec.PeekUint16(input, 1)
	if !ok {
		return VerifyBaseGas
	}
	msgLen, ok := codec.PeekUint16(input, 1+2+int(pubKeyLen))
	if !ok {
		return VerifyBaseGas
	}
	return contract.LinearGas(VerifyBaseGas, GasPerMsgByte, uint64(msgLen))
}

func (v *verifier) run(input []byte) ([]byte, error) {
	r := codec.NewReader(input)

	mode, err := r.Byte()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	set, ok := paramSets[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %#02x", contract.ErrUnknownMode, mode)
	}

	pubKey, err := r.Bytes16()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	if len(pubKey) != set.publicKeyLen {
		return nil, fmt.Errorf("%w: public key is %d bytes, mode %#02x requires %d",
			contract.ErrInvalidInput, len(pubKey), mode, set.publicKeyLen)
	}

	message, err := r.Bytes16()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}

	sig := r.Rest()
	if len(sig) != set.signatureLen {
		return nil, fmt.Errorf("%w: signature is %d bytes, mode %#02x requires %d",
			contract.ErrInvalidInput, len(sig), mode, set.signatureLen)
	}

	return contract.BoolByte(v.verify(set.mode, pubKey, message, sig)), nil
}

func verifySLHDSA(mode slhdsacrypto.Mode, pubKey, message, sig []byte) bool {
	pub, err := slhdsacrypto.PublicKeyFromBytes(pubKey, mode)
	if err != nil {
		return false
	}
	return pub.Verify(message, sig, nil)
}
