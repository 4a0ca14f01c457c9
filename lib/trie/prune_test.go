// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"testing"

	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Trie_Prune_preserves_root_hash(t *testing.T) {
	t.Parallel()

	items := generateItems(50, 13)
	testTrie := buildTrie(t, items)

	keys := []common.Hash{items[0].Key, items[1].Key, items[2].Key}
	prunedTrie, err := testTrie.Prune(keys)
	require.NoError(t, err)

	assert.Equal(t, testTrie.Hash(), prunedTrie.Hash())
}

func Test_Trie_Prune_keeps_proven_values(t *testing.T) {
	t.Parallel()

	items := generateItems(50, 14)
	testTrie := buildTrie(t, items)

	keys := []common.Hash{items[0].Key, items[1].Key}
	prunedTrie, err := testTrie.Prune(keys)
	require.NoError(t, err)

	for _, item := range items[:2] {
		value, err := prunedTrie.Get(item.Key)
		require.NoError(t, err)
		assert.Equal(t, item.Value, value)
	}
}

func Test_Trie_Prune_reduces_off_path_leaves(t *testing.T) {
	t.Parallel()

	keyA := keyFromBytes(0x00)
	keyB := keyFromBytes(0x80)

	testTrie := buildTrie(t, []Item{
		{Key: keyA, Value: []byte("a")},
		{Key: keyB, Value: []byte("b")},
	})

	prunedTrie, err := testTrie.Prune([]common.Hash{keyA})
	require.NoError(t, err)

	// keyB's leaf is kept as absence witness but loses
	// its value
	_, err = prunedTrie.Get(keyB)
	assert.ErrorIs(t, err, ErrValuePruned)

	// a key routed to keyB's position is proven absent by
	// the digest only leaf
	_, err = prunedTrie.Get(keyFromBytes(0x81))
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func Test_Trie_Prune_non_membership(t *testing.T) {
	t.Parallel()

	items := generateItems(20, 15)
	testTrie := buildTrie(t, items)

	absentKey := keyFromBytes(0xfe, 0xdc, 0xba)
	prunedTrie, err := testTrie.Prune([]common.Hash{absentKey})
	require.NoError(t, err)

	assert.Equal(t, testTrie.Hash(), prunedTrie.Hash())

	// the pruned tree can still prove the key absent
	_, err = prunedTrie.Get(absentKey)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func Test_Trie_Prune_no_keys(t *testing.T) {
	t.Parallel()

	items := generateItems(20, 16)
	testTrie := buildTrie(t, items)

	prunedTrie, err := testTrie.Prune(nil)
	require.NoError(t, err)

	assert.Equal(t, testTrie.Hash(), prunedTrie.Hash())
	_, err = prunedTrie.Get(items[0].Key)
	assert.ErrorIs(t, err, ErrPruned)
}

func Test_Trie_Prune_twice(t *testing.T) {
	t.Parallel()

	items := generateItems(20, 17)
	testTrie := buildTrie(t, items)

	keys := []common.Hash{items[0].Key, items[1].Key}
	prunedOnce, err := testTrie.Prune(keys)
	require.NoError(t, err)

	// pruning to a subset of the already proven keys works
	// on an already pruned tree
	prunedTwice, err := prunedOnce.Prune(keys[:1])
	require.NoError(t, err)

	assert.Equal(t, testTrie.Hash(), prunedTwice.Hash())
	value, err := prunedTwice.Get(items[0].Key)
	require.NoError(t, err)
	assert.Equal(t, items[0].Value, value)
}
