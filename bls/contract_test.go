// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"testing"

	luxbls "github.com/luxfi/crypto/bls"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/precompiles/contract"
)

func buildVerifyInput(t testing.TB, pubKey, message, sig []byte) []byte {
	t.Helper()

	input := make([]byte, 0, verifyInputLen)
	input = append(input, pubKey...)
	input = append(input, message...)
	input = append(input, sig...)
	return input
}

func signedInput(t testing.TB, message []byte) []byte {
	t.Helper()
	require := require.New(t)
	require.Len(message, messageLen)

	sk, err := luxbls.NewSecretKey()
	require.NoError(err)

	sig, err := sk.Sign(message)
	require.NoError(err)
	pubKey := luxbls.PublicKeyToCompressedBytes(sk.PublicKey())

	return buildVerifyInput(t, pubKey, message, luxbls.SignatureToBytes(sig))
}

func message32(fill byte) []byte {
	msg := make([]byte, messageLen)
	for i := range msg {
		msg[i] = fill
	}
	return msg
}

func TestVerifyValidSignature(t *testing.T) {
	require := require.New(t)

	input := signedInput(t, message32(0xab))
	require.Len(input, verifyInputLen)

	gas := VerifyPrecompile.RequiredGas(input)
	require.Equal(uint64(VerifyGas), gas)

	ret, remaining, err := VerifyPrecompile.Run(input, gas, false)
	require.NoError(err)
	require.Zero(remaining)
	require.Equal(contract.BoolByte(true), ret)
}

func TestVerifyNegative(t *testing.T) {
	require := require.New(t)

	input := signedInput(t, message32(0xab))

	// Same signature over a different message.
	tampered := append([]byte{}, input...)
	tampered[publicKeyLen] ^= 0x01
	ret, _, err := VerifyPrecompile.Run(tampered, VerifyPrecompile.RequiredGas(tampered), false)
	require.NoError(err)
	require.Equal(contract.BoolByte(false), ret)

	// Wrong key for the signature.
	otherSK, err := luxbls.NewSecretKey()
	require.NoError(err)
	wrongKey := append([]byte{}, input...)
	copy(wrongKey, luxbls.PublicKeyToCompressedBytes(otherSK.PublicKey()))
	ret, _, err = VerifyPrecompile.Run(wrongKey, VerifyPrecompile.RequiredGas(wrongKey), false)
	require.NoError(err)
	require.Equal(contract.BoolByte(false), ret)
}

func TestVerifyUndecodablePoint(t *testing.T) {
	require := require.New(t)

	// All-zero bytes are not a valid compressed point. The buffer itself is
	// well-formed, so this is a negative result, not a format error.
	input := make([]byte, verifyInputLen)
	ret, _, err := VerifyPrecompile.Run(input, VerifyPrecompile.RequiredGas(input), false)
	require.NoError(err)
	require.Equal(contract.BoolByte(false), ret)
}

func TestVerifyFormatErrors(t *testing.T) {
	valid := signedInput(t, message32(0x01))

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"truncated", valid[:verifyInputLen-1]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x00)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			ret, _, err := VerifyPrecompile.Run(tt.input, VerifyPrecompile.RequiredGas(tt.input), false)
			require.ErrorIs(err, contract.ErrInvalidInput)
			require.Nil(ret)
		})
	}
}

func TestAggregateSingleSignature(t *testing.T) {
	require := require.New(t)

	sk, err := luxbls.NewSecretKey()
	require.NoError(err)
	sig, err := sk.Sign(message32(0x02))
	require.NoError(err)
	sigBytes := luxbls.SignatureToBytes(sig)

	// Aggregating one signature round-trips it through the group: the result
	// is the same point.
	ret, _, err := AggregatePrecompile.Run(sigBytes, AggregatePrecompile.RequiredGas(sigBytes), false)
	require.NoError(err)
	require.Equal(sigBytes, ret)
}

func TestAggregateVerifiesUnderAggregateKey(t *testing.T) {
	require := require.New(t)

	message := message32(0x03)

	const signers = 4
	input := make([]byte, 0, signers*signatureLen)
	pks := make([]*luxbls.PublicKey, signers)
	for i := range pks {
		sk, err := luxbls.NewSecretKey()
		require.NoError(err)
		pks[i] = sk.PublicKey()
		sig, err := sk.Sign(message)
		require.NoError(err)
		input = append(input, luxbls.SignatureToBytes(sig)...)
	}

	gas := AggregatePrecompile.RequiredGas(input)
	require.Equal(uint64(AggregateBaseGas+signers*AggregateGasPerSig), gas)

	ret, remaining, err := AggregatePrecompile.Run(input, gas, false)
	require.NoError(err)
	require.Zero(remaining)
	require.Len(ret, signatureLen)

	aggPK, err := luxbls.AggregatePublicKeys(pks)
	require.NoError(err)
	aggSig, err := luxbls.SignatureFromBytes(ret)
	require.NoError(err)
	require.True(luxbls.Verify(aggPK, aggSig, message))

	// The aggregate also feeds back into the verify precompile.
	verifyInput := buildVerifyInput(t, luxbls.PublicKeyToCompressedBytes(aggPK), message, ret)
	verifyRet, _, err := VerifyPrecompile.Run(verifyInput, VerifyPrecompile.RequiredGas(verifyInput), false)
	require.NoError(err)
	require.Equal(contract.BoolByte(true), verifyRet)
}

func TestAggregateAssociative(t *testing.T) {
	require := require.New(t)

	message := message32(0x04)
	sigs := make([][]byte, 3)
	for i := range sigs {
		sk, err := luxbls.NewSecretKey()
		require.NoError(err)
		sig, err := sk.Sign(message)
		require.NoError(err)
		sigs[i] = luxbls.SignatureToBytes(sig)
	}

	run := func(input []byte) []byte {
		ret, _, err := AggregatePrecompile.Run(input, AggregatePrecompile.RequiredGas(input), false)
		require.NoError(err)
		return ret
	}

	// agg(agg(s0, s1), s2) == agg(s0, agg(s1, s2)), byte for byte.
	left := run(append(run(append(append([]byte{}, sigs[0]...), sigs[1]...)), sigs[2]...))
	right := run(append(append([]byte{}, sigs[0]...), run(append(append([]byte{}, sigs[1]...), sigs[2]...))...))
	require.Equal(left, right)
}

func TestAggregateFormatErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"not a multiple of the signature size", make([]byte, signatureLen+1)},
		{"single short signature", make([]byte, signatureLen-1)},
		{"undecodable signature bytes", make([]byte, 2*signatureLen)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			ret, _, err := AggregatePrecompile.Run(tt.input, AggregatePrecompile.RequiredGas(tt.input), false)
			require.ErrorIs(err, contract.ErrInvalidInput)
			require.Nil(ret)
		})
	}
}
