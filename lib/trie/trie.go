// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package trie implements a merbinner tree, a merklized binary
// radix tree over fixed width keys. Trees are persistent: every
// mutating operation returns a new tree sharing unchanged
// subtrees with its source, so a tree value can be read from
// any number of goroutines concurrently.
package trie

import (
	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
)

// EmptyHash is the root hash of the empty tree.
var EmptyHash = NewEmptyTrie().Hash()

// Trie is a merbinner tree.
type Trie struct {
	root    node.Node
	metrics Metrics
}

// NewEmptyTrie creates a tree with the empty node as root.
func NewEmptyTrie() *Trie {
	return NewTrie(node.EmptyNode())
}

// NewTrie creates a tree with an existing root node.
func NewTrie(root node.Node) *Trie {
	return &Trie{
		root:    root,
		metrics: noopMetrics{},
	}
}

// SetMetrics sets the metrics listener for this tree.
// Trees derived from this tree inherit it.
func (t *Trie) SetMetrics(metrics Metrics) {
	t.metrics = metrics
}

// derive wraps a root node in a new tree inheriting
// the metrics listener of the receiver.
func (t *Trie) derive(root node.Node) *Trie {
	return &Trie{
		root:    root,
		metrics: t.metrics,
	}
}

// Hash returns the root hash of the tree. It is computed
// when nodes are created so this does not do any hashing.
func (t *Trie) Hash() common.Hash {
	return t.root.MerkleValue()
}

// RootNode returns the root node of the tree.
func (t *Trie) RootNode() node.Node {
	return t.root
}

// Entries returns all the keys with their full value.
// Leaves reduced to their value digest and pruned subtrees
// are skipped.
func (t *Trie) Entries() (keyValues map[common.Hash][]byte) {
	keyValues = make(map[common.Hash][]byte)
	walkLeaves(t.root, func(leaf *node.Leaf) {
		if !leaf.HasValue() {
			return
		}
		value := make([]byte, len(leaf.Value))
		copy(value, leaf.Value)
		keyValues[leaf.Key] = value
	})
	return keyValues
}

// Keys returns the keys of all the leaves in ascending order,
// including leaves reduced to their value digest. Keys inside
// pruned subtrees are not included.
func (t *Trie) Keys() (keys []common.Hash) {
	walkLeaves(t.root, func(leaf *node.Leaf) {
		keys = append(keys, leaf.Key)
	})
	return keys
}

// walkLeaves visits the leaves of the subtree left to right,
// which is ascending key order.
func walkLeaves(n node.Node, visit func(leaf *node.Leaf)) {
	switch n := n.(type) {
	case *node.Leaf:
		visit(n)
	case *node.Inner:
		walkLeaves(n.Left, visit)
		walkLeaves(n.Right, visit)
	}
}
