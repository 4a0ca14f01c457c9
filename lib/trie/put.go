// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
)

// Put inserts the key value pair into the tree, replacing the
// value if the key is already present. It returns a new tree
// sharing unchanged subtrees with the receiver, which is left
// untouched. It returns ErrPruned if the key path reaches a
// pruned subtree.
func (t *Trie) Put(key common.Hash, value []byte) (newTrie *Trie, err error) {
	return t.put(node.NewLeaf(key, value))
}

// PutValueDigest inserts the key with the digest of its value
// only, without the value itself. The resulting tree has the
// same root hash as if the full value had been inserted.
func (t *Trie) PutValueDigest(key, valueDigest common.Hash) (newTrie *Trie, err error) {
	return t.put(node.NewLeafDigest(key, valueDigest))
}

func (t *Trie) put(leaf *node.Leaf) (newTrie *Trie, err error) {
	key := leaf.Key
	var ancestors []*node.Inner
	currentNode := t.root
	var newSubtree node.Node
	var nodesCreated uint32

descent:
	for depth := 0; ; depth++ {
		switch n := currentNode.(type) {
		case *node.Empty:
			newSubtree = leaf
			nodesCreated++
			break descent
		case *node.Leaf:
			if n.Key == key {
				newSubtree = leaf
				nodesCreated++
				break descent
			}
			var created uint32
			newSubtree, created = forkLeaves(n, leaf, depth)
			nodesCreated += created
			break descent
		case *node.Inner:
			ancestors = append(ancestors, n)
			currentNode = n.Child(node.KeyBit(key, depth))
		case *node.PrunedInner:
			return nil, fmt.Errorf("%w: at depth %d for key %s",
				ErrPruned, depth, key.Short())
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, currentNode)
		}
	}

	// Rebuild the inner nodes along the key path. The ancestor
	// at index i sits at depth i since every inner node routes
	// exactly one key bit.
	newNode := newSubtree
	for i := len(ancestors) - 1; i >= 0; i-- {
		parent := ancestors[i]
		if node.KeyBit(key, i) == 0 {
			newNode = node.NewInner(newNode, parent.Right)
		} else {
			newNode = node.NewInner(parent.Left, newNode)
		}
		nodesCreated++
	}

	t.metrics.NodesAdd(nodesCreated)
	return t.derive(newNode), nil
}

// forkLeaves builds the subtree replacing an existing leaf when
// a new leaf with a different key lands on it at the depth
// given. The two leaves share their key bits down to their
// first divergent bit, where a branching inner node splits
// them; the shared bits in between each get a one sided inner
// node so that depth always equals key bit position.
func forkLeaves(existingLeaf, newLeaf *node.Leaf, depth int) (
	subtreeRoot node.Node, nodesCreated uint32) {
	divergentBit := node.FirstDivergentBit(existingLeaf.Key, newLeaf.Key)

	if node.KeyBit(newLeaf.Key, divergentBit) == 0 {
		subtreeRoot = node.NewInner(newLeaf, existingLeaf)
	} else {
		subtreeRoot = node.NewInner(existingLeaf, newLeaf)
	}
	nodesCreated = 2 // new leaf and branching inner node

	for d := divergentBit - 1; d >= depth; d-- {
		if node.KeyBit(newLeaf.Key, d) == 0 {
			subtreeRoot = node.NewInner(subtreeRoot, node.EmptyNode())
		} else {
			subtreeRoot = node.NewInner(node.EmptyNode(), subtreeRoot)
		}
		nodesCreated++
	}

	return subtreeRoot, nodesCreated
}
