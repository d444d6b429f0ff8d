// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import "github.com/luxfi/geth/common"

// Verification results carry no partial or error information: a call that
// completes returns only a boolean, encoded per scheme as either a 32-byte
// big-endian word or a single byte.

// BoolWord encodes v as a 32-byte word: 0x00..01 for true, 0x00..00 for
// false.
func BoolWord(v bool) []byte {
	if v {
		return common.LeftPadBytes([]byte{1}, 32)
	}
	return make([]byte, 32)
}

// BoolByte encodes v as a single byte: 0x01 for true, 0x00 for false.
func BoolByte(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}
