// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
)

// Item is a key value pair to build a tree from.
type Item struct {
	Key   common.Hash
	Value []byte
}

// Build creates a tree from the items given in a single pass.
// The same items always produce the same tree, whatever their
// order. It returns the wrapped error ErrDuplicateKey if two
// items share the same key.
func Build(items []Item) (builtTrie *Trie, err error) {
	keyedNodes := make([]keyedNode, len(items))
	for i, item := range items {
		keyedNodes[i] = keyedNode{
			key:  item.Key,
			node: node.NewLeaf(item.Key, item.Value),
		}
	}

	root, err := buildSubtrees(keyedNodes)
	if err != nil {
		return nil, err
	}
	return NewTrie(root), nil
}

type keyedNode struct {
	key  common.Hash
	node node.Node
}

// buildSubtrees sorts the keyed nodes, rejects duplicates and
// builds the tree recursively by partitioning on key bits. The
// recursion depth is bounded by the key bit length.
func buildSubtrees(keyedNodes []keyedNode) (root node.Node, err error) {
	sort.Slice(keyedNodes, func(i, j int) bool {
		return bytes.Compare(keyedNodes[i].key[:], keyedNodes[j].key[:]) < 0
	})

	for i := 1; i < len(keyedNodes); i++ {
		if keyedNodes[i].key == keyedNodes[i-1].key {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, keyedNodes[i].key.Short())
		}
	}

	return buildSubtree(keyedNodes, 0), nil
}

// buildSubtree builds the subtree at the depth given from the
// keyed nodes, which are sorted and distinct so they partition
// cleanly at every bit.
func buildSubtree(keyedNodes []keyedNode, depth int) (subtreeRoot node.Node) {
	switch len(keyedNodes) {
	case 0:
		return node.EmptyNode()
	case 1:
		return keyedNodes[0].node
	}

	// Sorted keys have all bit zero keys before all bit one
	// keys at any depth where the keys share their prefix.
	firstRightIndex := sort.Search(len(keyedNodes), func(i int) bool {
		return node.KeyBit(keyedNodes[i].key, depth) == 1
	})

	left := buildSubtree(keyedNodes[:firstRightIndex], depth+1)
	right := buildSubtree(keyedNodes[firstRightIndex:], depth+1)
	return node.NewInner(left, right)
}
