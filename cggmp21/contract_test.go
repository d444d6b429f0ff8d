// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cggmp21

import (
	"encoding/binary"
	"testing"

	"github.com/luxfi/crypto"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/precompiles/contract"
)

func buildInput(t testing.TB, threshold, parties uint32, pubKey, msgHash, sig []byte) []byte {
	t.Helper()

	input := make([]byte, 0, thresholdParamsLen+len(pubKey)+len(msgHash)+len(sig))
	input = binary.BigEndian.AppendUint32(input, threshold)
	input = binary.BigEndian.AppendUint32(input, parties)
	input = append(input, pubKey...)
	input = append(input, msgHash...)
	input = append(input, sig...)
	return input
}

// signedInput produces an input whose signature genuinely verifies under the
// embedded key.
func signedInput(t testing.TB, threshold, parties uint32) []byte {
	t.Helper()
	require := require.New(t)

	key, err := crypto.GenerateKey()
	require.NoError(err)

	msgHash := crypto.Keccak256([]byte("hello"))
	sig, err := crypto.Sign(msgHash, key)
	require.NoError(err)
	require.Len(sig, signatureLen)

	pubKey := crypto.FromECDSAPub(&key.PublicKey)
	require.Len(pubKey, publicKeyLen)

	return buildInput(t, threshold, parties, pubKey, msgHash, sig)
}

func TestVerifyValidSignature(t *testing.T) {
	require := require.New(t)

	input := signedInput(t, 2, 3)
	gas := VerifyPrecompile.RequiredGas(input)
	require.Equal(uint64(VerifyBaseGas+3*GasPerParty), gas)

	ret, remaining, err := VerifyPrecompile.Run(input, gas, false)
	require.NoError(err)
	require.Zero(remaining)
	require.Equal(contract.BoolWord(true), ret)
}

func TestVerifyCorruptedSignature(t *testing.T) {
	require := require.New(t)

	input := signedInput(t, 2, 3)
	// Flip one bit inside r. The buffer stays well-formed, so this is a
	// negative result, not an error.
	input[thresholdParamsLen+publicKeyLen+msgHashLen] ^= 0x01

	ret, _, err := VerifyPrecompile.Run(input, VerifyPrecompile.RequiredGas(input), false)
	require.NoError(err)
	require.Equal(contract.BoolWord(false), ret)
}

func TestVerifyWrongKey(t *testing.T) {
	require := require.New(t)

	input := signedInput(t, 2, 3)

	otherKey, err := crypto.GenerateKey()
	require.NoError(err)
	copy(input[thresholdParamsLen:], crypto.FromECDSAPub(&otherKey.PublicKey))

	ret, _, err := VerifyPrecompile.Run(input, VerifyPrecompile.RequiredGas(input), false)
	require.NoError(err)
	require.Equal(contract.BoolWord(false), ret)
}

func TestVerifyFormatErrors(t *testing.T) {
	valid := signedInput(t, 2, 3)

	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"truncated header", valid[:10]},
		{"truncated signature", valid[:len(valid)-1]},
		{"trailing bytes", append(append([]byte{}, valid...), 0x00)},
		{"zero threshold", buildInput(t, 0, 3, valid[8:8+publicKeyLen], valid[73:105], valid[105:])},
		{"threshold exceeds parties", buildInput(t, 4, 3, valid[8:8+publicKeyLen], valid[73:105], valid[105:])},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			gas := VerifyPrecompile.RequiredGas(tt.input)
			ret, _, err := VerifyPrecompile.Run(tt.input, gas, false)
			require.ErrorIs(err, contract.ErrInvalidInput)
			require.Nil(ret)
		})
	}
}

func TestVerifyCompressedKeyRejected(t *testing.T) {
	require := require.New(t)

	input := signedInput(t, 2, 3)
	input[thresholdParamsLen] = 0x02 // compressed point prefix

	_, _, err := VerifyPrecompile.Run(input, VerifyPrecompile.RequiredGas(input), false)
	require.ErrorIs(err, contract.ErrInvalidInput)
}

func TestRequiredGas(t *testing.T) {
	require := require.New(t)

	// Too short to read n: quote degrades to the base cost.
	require.Equal(uint64(VerifyBaseGas), VerifyPrecompile.RequiredGas(nil))
	require.Equal(uint64(VerifyBaseGas), VerifyPrecompile.RequiredGas([]byte{0x01, 0x02}))

	// Monotonic in the declared party count.
	prev := uint64(0)
	for _, n := range []uint32{1, 2, 10, 1000} {
		gas := VerifyPrecompile.RequiredGas(buildInput(t, 1, n, nil, nil, nil))
		require.Greater(gas, prev)
		prev = gas
	}
}

func TestOutOfGasBeforeVerification(t *testing.T) {
	require := require.New(t)

	engineCalls := 0
	p := newPrecompile(func(_, _, _ []byte) bool {
		engineCalls++
		return true
	})

	input := signedInput(t, 2, 3)
	ret, remaining, err := p.Run(input, p.RequiredGas(input)-1, false)
	require.ErrorIs(err, contract.ErrOutOfGas)
	require.Nil(ret)
	require.Zero(remaining)
	require.Zero(engineCalls)

	_, _, err = p.Run(input, p.RequiredGas(input), false)
	require.NoError(err)
	require.Equal(1, engineCalls)
}
