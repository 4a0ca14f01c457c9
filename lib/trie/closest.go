// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
)

// Closest returns the leaf whose key shares the longest bit
// prefix with the key given, following the key bits down the
// tree and falling back to the sibling subtree wherever the
// key side is empty. It returns ErrKeyNotFound on an empty
// tree and ErrPruned if the descent reaches a pruned subtree.
func (t *Trie) Closest(key common.Hash) (closest *Leaf, err error) {
	currentNode := t.root
	for depth := 0; ; depth++ {
		switch n := currentNode.(type) {
		case *node.Empty:
			return nil, fmt.Errorf("%w: tree is empty", ErrKeyNotFound)
		case *node.Leaf:
			return n, nil
		case *node.Inner:
			child := n.Child(node.KeyBit(key, depth))
			if child.Type() == node.EmptyType {
				child = n.Sibling(node.KeyBit(key, depth))
			}
			currentNode = child
		case *node.PrunedInner:
			return nil, fmt.Errorf("%w: at depth %d for key %s",
				ErrPruned, depth, key.Short())
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, currentNode)
		}
	}
}
