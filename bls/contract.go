// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bls implements the BLS precompiles: single-signature verification
// and signature aggregation. Two addresses, one package; both wrap
// github.com/luxfi/crypto/bls.
package bls

import (
	"fmt"

	luxbls "github.com/luxfi/crypto/bls"

	"github.com/luxfi/precompiles/codec"
	"github.com/luxfi/precompiles/contract"
)

const (
	publicKeyLen = luxbls.PublicKeyLen // 48, compressed G1
	messageLen   = 32
	signatureLen = luxbls.SignatureLen // 96, compressed G2

	verifyInputLen = publicKeyLen + messageLen + signatureLen

	// VerifyGas is flat: the pairing dominates and the message is a fixed 32
	// bytes.
	VerifyGas = 150_000

	AggregateBaseGas   = 1_000
	AggregateGasPerSig = 1_500
)

type VerifyFunc func(pubKey, message, sig []byte) bool

// AggregateFunc combines N concatenated 96-byte signatures into one. It
// returns a complete 96-byte aggregate or an error; never a partial result.
type AggregateFunc func(sigs [][]byte) ([]byte, error)

var (
	// VerifyPrecompile checks one signature over one 32-byte message.
	// Input [pubkey:48][message:32][signature:96], output a boolean byte.
	VerifyPrecompile = newVerifyPrecompile(verifyBLS)

	// AggregatePrecompile combines signatures. Input [sig:96]*N, output the
	// 96-byte aggregate. Not a boolean verify.
	AggregatePrecompile = newAggregatePrecompile(aggregateBLS)
)

var (
	verifyMetrics    = contract.NewMetrics("bls_verify")
	aggregateMetrics = contract.NewMetrics("bls_aggregate")
)

func newVerifyPrecompile(verify VerifyFunc) contract.Precompile {
	run := func(input []byte) ([]byte, error) {
		r := codec.NewReader(input)
		pubKey, err := r.Fixed(publicKeyLen)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
		}
		message, err := r.Fixed(messageLen)
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
		return contract.BoolByte(verify(pubKey, message, sig)), nil
	}
	return contract.NewStatelessPrecompile(VerifyAddress, verifyRequiredGas, run, verifyMetrics)
}

func verifyRequiredGas([]byte) uint64 {
	return VerifyGas
}

func verifyBLS(pubKey, message, sig []byte) bool {
	pk, err := luxbls.PublicKeyFromCompressedBytes(pubKey)
	if err != nil {
		return false
	}
	signature, err := luxbls.SignatureFromBytes(sig)
	if err != nil {
		return false
	}
	return luxbls.Verify(pk, signature, message)
}

func newAggregatePrecompile(aggregate AggregateFunc) contract.Precompile {
	run := func(input []byte) ([]byte, error) {
		if len(input) == 0 || len(input)%signatureLen != 0 {
			return nil, fmt.Errorf("%w: aggregate input is %d bytes, want a non-zero multiple of %d",
				contract.ErrInvalidInput, len(input), signatureLen)
		}
		sigs := make([][]byte, 0, len(input)/signatureLen)
		for off := 0; off < len(input); off += signatureLen {
			sigs = append(sigs, input[off:off+signatureLen])
		}
		return aggregate(sigs)
	}
	return contract.NewStatelessPrecompile(AggregateAddress, aggregateRequiredGas, run, aggregateMetrics)
}

func aggregateRequiredGas(input []byte) uint64 {
	return contract.LinearGas(AggregateBaseGas, AggregateGasPerSig, uint64(len(input)/signatureLen))
}

func aggregateBLS(sigBytes [][]byte) ([]byte, error) {
	sigs := make([]*luxbls.Signature, len(sigBytes))
	for i, b := range sigBytes {
		sig, err := luxbls.SignatureFromBytes(b)
		if err != nil {
			// Undecodable point bytes are a format failure of the whole
			// call, not a false result.
			return nil, fmt.Errorf("%w: signature %d: %w", contract.ErrInvalidInput, i, err)
		}
		sigs[i] = sig
	}
	agg, err := luxbls.AggregateSignatures(sigs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contract.ErrInvalidInput, err)
	}
	return luxbls.SignatureToBytes(agg), nil
}
