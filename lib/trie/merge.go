// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/merbinner/internal/trie/node"
)

// Merge combines two trees with the same root hash into one,
// replacing pruned parts of either tree with the matching
// unpruned parts of the other. A part pruned in both trees
// stays pruned. It returns the wrapped error ErrConflict if
// the two root hashes differ.
func Merge(a, b *Trie) (merged *Trie, err error) {
	if a.Hash() != b.Hash() {
		return nil, fmt.Errorf("%w: %s and %s",
			ErrConflict, a.Hash().Short(), b.Hash().Short())
	}

	mergedRoot, err := mergeNodes(a.root, b.root)
	if err != nil {
		return nil, err
	}

	if mergedRoot.MerkleValue() != a.Hash() {
		return nil, fmt.Errorf("%w: merged root hash %s does not match %s",
			ErrConflict, mergedRoot.MerkleValue().Short(), a.Hash().Short())
	}

	return a.derive(mergedRoot), nil
}

// mergeNodes merges two nodes known to have the same merkle
// value, keeping the more informative variant at every level.
func mergeNodes(a, b node.Node) (merged node.Node, err error) {
	switch a := a.(type) {
	case *node.Empty:
		return a, nil
	case *node.PrunedInner:
		if b.Type() == node.PrunedInnerType {
			return a, nil
		}
		// let the unpruned side lead
		return mergeNodes(b, a)
	case *node.Leaf:
		if a.HasValue() {
			return a, nil
		}
		if bLeaf, ok := b.(*node.Leaf); ok && bLeaf.HasValue() {
			return bLeaf, nil
		}
		return a, nil
	case *node.Inner:
		bInner, ok := b.(*node.Inner)
		if !ok {
			// b is pruned at this level so it cannot
			// contribute anything below it
			return a, nil
		}
		left, err := mergeNodes(a.Left, bInner.Left)
		if err != nil {
			return nil, err
		}
		right, err := mergeNodes(a.Right, bInner.Right)
		if err != nil {
			return nil, err
		}
		return node.NewInner(left, right), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, a)
	}
}
