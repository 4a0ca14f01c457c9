// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"math/rand"
	"testing"

	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/stretchr/testify/require"
)

// keyFromBytes pads the bytes given into a key, so test keys
// can be written out by their leading bits.
func keyFromBytes(firstBytes ...byte) (key common.Hash) {
	copy(key[:], firstBytes)
	return key
}

// generateItems generates deterministic pseudo random items
// from the seed given.
func generateItems(n int, seed int64) (items []Item) {
	generator := rand.New(rand.NewSource(seed)) //skipcq: GSC-G404
	items = make([]Item, n)
	for i := range items {
		_, _ = generator.Read(items[i].Key[:])
		value := make([]byte, 1+generator.Intn(40))
		_, _ = generator.Read(value)
		items[i].Value = value
	}
	return items
}

func buildTrie(t *testing.T, items []Item) *Trie {
	t.Helper()
	builtTrie, err := Build(items)
	require.NoError(t, err)
	return builtTrie
}

func putAll(t *testing.T, targetTrie *Trie, items []Item) *Trie {
	t.Helper()
	var err error
	for _, item := range items {
		targetTrie, err = targetTrie.Put(item.Key, item.Value)
		require.NoError(t, err)
	}
	return targetTrie
}
