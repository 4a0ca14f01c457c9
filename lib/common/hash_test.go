// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Blake2bHash(t *testing.T) {
	t.Parallel()

	digest, err := Blake2bHash([]byte("abc"))
	require.NoError(t, err)

	// blake2b-256 of "abc"
	expected := MustHexToHash("0xbddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319")
	assert.Equal(t, expected, digest)

	again, err := Blake2bHash([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, digest, again)
}

func Test_Hash_String(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		hash  Hash
		s     string
		short string
	}{
		"empty hash": {
			hash:  Hash{},
			s:     "0x0000000000000000000000000000000000000000000000000000000000000000",
			short: "0x00000000...00000000",
		},
		"one filled hash": {
			hash: Hash{
				1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
				1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			s:     "0x0101010101010101010101010101010101010101010101010101010101010101",
			short: "0x01010101...01010101",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.s, testCase.hash.String())
			assert.Equal(t, testCase.short, testCase.hash.Short())
		})
	}
}

func Test_HexToHash(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		hash       Hash
		errWrapped error
	}{
		"no 0x prefix": {
			s:          "ab",
			errWrapped: ErrNoPrefix,
		},
		"bad length": {
			s:          "0xabcd",
			errWrapped: ErrHashLength,
		},
		"valid hash": {
			s: "0x0102030000000000000000000000000000000000000000000000000000000000",
			hash: Hash{
				0x01, 0x02, 0x03,
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			hash, err := HexToHash(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.hash, hash)
		})
	}
}

func Test_NewHash(t *testing.T) {
	t.Parallel()

	hash := NewHash([]byte{1, 2, 3})
	assert.Equal(t, Hash{0x01, 0x02, 0x03}, hash)
	assert.False(t, hash.IsEmpty())
	assert.True(t, Hash{}.IsEmpty())
}
