// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"testing"

	"github.com/ChainSafe/merbinner/internal/database"
	"github.com/ChainSafe/merbinner/internal/database/badger"
	"github.com/ChainSafe/merbinner/internal/database/memory"
	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Trie_Store_Load(t *testing.T) {
	t.Parallel()

	items := generateItems(50, 27)
	testTrie := buildTrie(t, items)

	db := memory.New()
	err := testTrie.Store(db)
	require.NoError(t, err)

	loadedTrie, err := Load(db, testTrie.Hash())
	require.NoError(t, err)

	assert.Equal(t, testTrie.Hash(), loadedTrie.Hash())
	assert.Equal(t, testTrie.Entries(), loadedTrie.Entries())
}

func Test_Trie_Store_Load_backends(t *testing.T) {
	t.Parallel()

	items := generateItems(50, 33)
	testTrie := buildTrie(t, items)

	testCases := map[string]struct {
		makeDatabase func(t *testing.T) database.Database
	}{
		"memory": {
			makeDatabase: func(t *testing.T) database.Database {
				return memory.New()
			},
		},
		"pebble": {
			makeDatabase: func(t *testing.T) database.Database {
				db, err := database.NewPebble(t.TempDir(), true)
				require.NoError(t, err)
				t.Cleanup(func() {
					err := db.Close()
					require.NoError(t, err)
				})
				return db
			},
		},
		"badger": {
			makeDatabase: func(t *testing.T) database.Database {
				inMemory := true
				db, err := badger.New(badger.Settings{InMemory: &inMemory})
				require.NoError(t, err)
				t.Cleanup(func() {
					err := db.Close()
					require.NoError(t, err)
				})
				return db
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			db := testCase.makeDatabase(t)

			err := testTrie.Store(db)
			require.NoError(t, err)

			loadedTrie, err := Load(db, testTrie.Hash())
			require.NoError(t, err)

			assert.Equal(t, testTrie.Hash(), loadedTrie.Hash())
			assert.Equal(t, testTrie.Entries(), loadedTrie.Entries())
		})
	}
}

func Test_Trie_Store_Load_single_leaf(t *testing.T) {
	t.Parallel()

	testTrie, err := NewEmptyTrie().Put(keyFromBytes(0x01), []byte("value"))
	require.NoError(t, err)

	db := memory.New()
	err = testTrie.Store(db)
	require.NoError(t, err)

	loadedTrie, err := Load(db, testTrie.Hash())
	require.NoError(t, err)

	value, err := loadedTrie.Get(keyFromBytes(0x01))
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), value)
}

func Test_Load_empty_tree(t *testing.T) {
	t.Parallel()

	loadedTrie, err := Load(memory.New(), EmptyHash)
	require.NoError(t, err)

	assert.Equal(t, EmptyHash, loadedTrie.Hash())
}

func Test_Load_missing_nodes_are_pruned(t *testing.T) {
	t.Parallel()

	items := generateItems(20, 28)
	testTrie := buildTrie(t, items)

	// nothing stored: the whole tree loads as a single
	// pruned inner node with the right root hash
	loadedTrie, err := Load(memory.New(), testTrie.Hash())
	require.NoError(t, err)

	assert.Equal(t, testTrie.Hash(), loadedTrie.Hash())
	_, err = loadedTrie.Get(items[0].Key)
	assert.ErrorIs(t, err, ErrPruned)
}

func Test_Trie_Store_pruned_tree(t *testing.T) {
	t.Parallel()

	items := generateItems(20, 29)
	testTrie := buildTrie(t, items)

	prunedTrie, err := testTrie.Prune([]common.Hash{items[0].Key})
	require.NoError(t, err)

	db := memory.New()
	err = prunedTrie.Store(db)
	require.NoError(t, err)

	loadedTrie, err := Load(db, prunedTrie.Hash())
	require.NoError(t, err)

	assert.Equal(t, testTrie.Hash(), loadedTrie.Hash())
	value, err := loadedTrie.Get(items[0].Key)
	require.NoError(t, err)
	assert.Equal(t, items[0].Value, value)
}

func Test_Load_corrupted_node(t *testing.T) {
	t.Parallel()

	testTrie, err := NewEmptyTrie().Put(keyFromBytes(0x01), []byte("value"))
	require.NoError(t, err)
	otherTrie, err := NewEmptyTrie().Put(keyFromBytes(0x02), []byte("other"))
	require.NoError(t, err)

	db := memory.New()
	err = testTrie.Store(db)
	require.NoError(t, err)
	err = otherTrie.Store(db)
	require.NoError(t, err)

	// overwrite the root node with another valid encoding
	rootHash := testTrie.Hash()
	otherHash := otherTrie.Hash()
	otherEncoding, err := db.Get(otherHash[:])
	require.NoError(t, err)
	err = db.Put(rootHash[:], otherEncoding)
	require.NoError(t, err)

	_, err = Load(db, rootHash)
	assert.ErrorIs(t, err, ErrHashMismatch)
}
