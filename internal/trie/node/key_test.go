// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"testing"

	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/stretchr/testify/assert"
)

func Test_KeyBit(t *testing.T) {
	t.Parallel()

	key := common.Hash{0b1010_0000, 0b0000_0001}

	testCases := map[string]struct {
		depth int
		bit   byte
	}{
		"first bit":           {depth: 0, bit: 1},
		"second bit":          {depth: 1, bit: 0},
		"third bit":           {depth: 2, bit: 1},
		"last bit first byte": {depth: 7, bit: 0},
		"last bit second byte": {
			depth: 15,
			bit:   1,
		},
		"zero byte": {depth: 100, bit: 0},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			bit := KeyBit(key, testCase.depth)

			assert.Equal(t, testCase.bit, bit)
		})
	}
}

func Test_FirstDivergentBit(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		keyA  common.Hash
		keyB  common.Hash
		depth int
	}{
		"equal keys": {
			keyA:  common.Hash{1, 2, 3},
			keyB:  common.Hash{1, 2, 3},
			depth: KeyBits,
		},
		"first bit differs": {
			keyA:  common.Hash{0b1000_0000},
			keyB:  common.Hash{0b0000_0000},
			depth: 0,
		},
		"last bit of first byte differs": {
			keyA:  common.Hash{0b0000_0001},
			keyB:  common.Hash{0b0000_0000},
			depth: 7,
		},
		"second byte differs": {
			keyA:  common.Hash{1, 0b0100_0000},
			keyB:  common.Hash{1, 0b0000_0000},
			depth: 9,
		},
		"last bit differs": {
			keyA: common.Hash{31: 0b0000_0001},
			keyB: common.Hash{},
			depth: KeyBits - 1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			depth := FirstDivergentBit(testCase.keyA, testCase.keyB)

			assert.Equal(t, testCase.depth, depth)
		})
	}
}
