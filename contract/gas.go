// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"math"
	"math/bits"
)

// LinearGas returns base + perUnit*units, saturating at MaxUint64. Saturation
// keeps the quote monotonic in input size: doubling a declared length can
// never wrap the multiplication around to a cheaper quote.
func LinearGas(base, perUnit, units uint64) uint64 {
	hi, lo := bits.Mul64(perUnit, units)
	if hi != 0 {
		return math.MaxUint64
	}
	sum, carry := bits.Add64(base, lo, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
