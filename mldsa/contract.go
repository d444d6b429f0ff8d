// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package mldsa implements the ML-DSA (FIPS 204) verification precompile.
// Module-Lattice Digital Signature Algorithm, formerly CRYSTALS-Dilithium.
// The three security levels share one address behind a leading mode byte,
// mirroring the SLH-DSA precompile's wire structure.
package mldsa

import (
	"fmt"

	mldsacrypto "github.com/luxfi/crypto/mldsa"

	"github.com/luxfi/precompiles/codec"
	"github.com/luxfi/precompiles/contract"
)

// Input layout: [mode:1][pubKeyLen:2][pubKey][msgLen:2][message][sig:rest],
// output a single boolean byte.
const (
	Mode44 byte = 0 // NIST Level 2
	Mode65 byte = 1 // NIST Level 3
	Mode87 byte = 2 // NIST Level 5

	VerifyBaseGas = 75_000
	GasPerMsgByte = 10
)

// params holds the fixed key and signature sizes of one security level
// (FIPS 204).
type params struct {
	mode         mldsacrypto.Mode
	publicKeyLen int
	signatureLen int
}

var paramSets = map[byte]params{
	Mode44: {mldsacrypto.MLDSA44, 1312, 2420},
	Mode65: {mldsacrypto.MLDSA65, 1952, 3309},
	Mode87: {mldsacrypto.MLDSA87, 2592, 4627},
}

type VerifyFunc func(mode mldsacrypto.Mode, pubKey, message, sig []byte) bool

var VerifyPrecompile = newPrecompile(verifyMLDSA)

var metrics = contract.NewMetrics("mldsa")

type verifier struct {
	verify VerifyFunc
}

func newPrecompile(verify VerifyFunc) contract.Precompile {
	v := &verifier{verify: verify}
	return contract.NewStatelessPrecompile(ContractAddress, requiredGas, v.run, metrics)
}

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

func verifyMLDSA(mode mldsacrypto.Mode, pubKey, message, sig []byte) bool {
	pub, err := mldsacrypto.PublicKeyFromBytes(pubKey, mode)
	if err != nil {
		return false
	}
	return pub.VerifySignature(message, sig)
}
