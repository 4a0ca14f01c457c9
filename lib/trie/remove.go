// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
)

// Remove removes the key from the tree and returns a new tree
// sharing unchanged subtrees with the receiver. Removing a key
// absent from the tree returns the receiver unchanged. It
// returns ErrPruned if the key path reaches a pruned subtree.
func (t *Trie) Remove(key common.Hash) (newTrie *Trie, err error) {
	var ancestors []*node.Inner
	currentNode := t.root

descent:
	for depth := 0; ; depth++ {
		switch n := currentNode.(type) {
		case *node.Empty:
			return t, nil
		case *node.Leaf:
			if n.Key != key {
				return t, nil
			}
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

	// Rebuild the inner nodes along the key path, collapsing
	// the ones left with a single leaf or nothing at all.
	var newNode node.Node = node.EmptyNode()
	var nodesCreated, nodesRemoved uint32
	nodesRemoved = 1 // the removed leaf
	for i := len(ancestors) - 1; i >= 0; i-- {
		parent := ancestors[i]
		var rebuilt node.Node
		if node.KeyBit(key, i) == 0 {
			rebuilt = joinChildren(newNode, parent.Right)
		} else {
			rebuilt = joinChildren(parent.Left, newNode)
		}
		if rebuilt.Type() == node.InnerType {
			nodesCreated++
		} else {
			nodesRemoved++
		}
		newNode = rebuilt
	}

	t.metrics.NodesAdd(nodesCreated)
	t.metrics.NodesSub(nodesRemoved)
	return t.derive(newNode), nil
}

// joinChildren rebuilds an inner node from its two children.
// An inner node holding a single leaf and nothing else becomes
// that leaf, and one holding nothing becomes the empty node.
// Children that are inner or pruned inner nodes keep their
// parent since their leaf count is at least two, or unknown.
func joinChildren(left, right node.Node) node.Node {
	leftType := left.Type()
	rightType := right.Type()
	switch {
	case leftType == node.EmptyType && rightType == node.EmptyType:
		return node.EmptyNode()
	case leftType == node.EmptyType && rightType == node.LeafType:
		return right
	case rightType == node.EmptyType && leftType == node.LeafType:
		return left
	default:
		return node.NewInner(left, right)
	}
}
