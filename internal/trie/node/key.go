// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"math/bits"

	"github.com/ChainSafe/merbinner/lib/common"
)

// KeyBits is the number of bits in a tree key.
const KeyBits = common.HashLength * 8

// KeyBit returns the bit of the key at the given depth,
// where depth 0 is the most significant bit of the first
// key byte. Bit 0 routes to the left child and bit 1 to
// the right child.
func KeyBit(key common.Hash, depth int) (bit byte) {
	return (key[depth/8] >> (7 - depth%8)) & 1
}

// FirstDivergentBit returns the depth of the first bit at
// which the two keys differ, or KeyBits if they are equal.
func FirstDivergentBit(keyA, keyB common.Hash) (depth int) {
	for i := 0; i < common.HashLength; i++ {
		diff := keyA[i] ^ keyB[i]
		if diff != 0 {
			return i*8 + bits.LeadingZeros8(diff)
		}
	}
	return KeyBits
}
