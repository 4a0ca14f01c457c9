// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"fmt"

	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
)

// NewPatch builds a patch tree from the upserts and deletions
// given, for use with Update. Deletions appear in the patch as
// deletion markers, distinct from plain absence, so applying
// the patch removes those keys from the target tree. It returns
// the wrapped error ErrDuplicateKey if a key appears twice
// across the upserts and deletions.
func NewPatch(upserts []Item, deletions []common.Hash) (patch *Trie, err error) {
	keyedNodes := make([]keyedNode, 0, len(upserts)+len(deletions))
	for _, item := range upserts {
		keyedNodes = append(keyedNodes, keyedNode{
			key:  item.Key,
			node: node.NewLeaf(item.Key, item.Value),
		})
	}
	for _, key := range deletions {
		keyedNodes = append(keyedNodes, keyedNode{
			key:  key,
			node: node.NewDeletion(key),
		})
	}

	root, err := buildSubtrees(keyedNodes)
	if err != nil {
		return nil, err
	}
	return NewTrie(root), nil
}

// Update applies the patch tree onto the receiver and returns
// a new tree: each leaf of the patch inserts or replaces the
// value for its key and each deletion marker removes its key.
// Deleting a key absent from the receiver is a no-op. Pruned
// parts of the patch carry no changes and must match the
// receiver's subtree hash, else the wrapped error ErrConflict
// is returned. It returns ErrPruned if a change touches a
// pruned subtree of the receiver.
func (t *Trie) Update(patch *Trie) (newTrie *Trie, err error) {
	newRoot, err := updateNode(t.root, patch.root, 0)
	if err != nil {
		return nil, err
	}
	return t.derive(newRoot), nil
}

func updateNode(target, patch node.Node, depth int) (updated node.Node, err error) {
	switch patch := patch.(type) {
	case *node.Empty:
		return target, nil
	case *node.Leaf:
		return upsertNode(target, patch, depth)
	case *node.Deletion:
		return deleteNode(target, patch.Key, depth)
	case *node.PrunedInner:
		// a pruned part of the patch carries no changes, but its
		// hash must still match the target subtree
		if patch.MerkleValue() != target.MerkleValue() {
			return nil, fmt.Errorf("%w: patch pruned to %s but tree has %s at depth %d",
				ErrConflict, patch.MerkleValue().Short(),
				target.MerkleValue().Short(), depth)
		}
		return target, nil
	case *node.Inner:
		targetLeft, targetRight, err := expandChildren(target, depth)
		if err != nil {
			return nil, err
		}
		newLeft, err := updateNode(targetLeft, patch.Left, depth+1)
		if err != nil {
			return nil, err
		}
		newRight, err := updateNode(targetRight, patch.Right, depth+1)
		if err != nil {
			return nil, err
		}
		return joinChildren(newLeft, newRight), nil
	default:
		return nil, fmt.Errorf("%w: %T in patch tree", ErrUnsupportedNodeType, patch)
	}
}

// expandChildren views the target node as an inner node at the
// depth given: a leaf counts as an inner node with the leaf on
// its key bit side, and the empty node as one with two empty
// children.
func expandChildren(target node.Node, depth int) (left, right node.Node, err error) {
	switch target := target.(type) {
	case *node.Empty:
		return node.EmptyNode(), node.EmptyNode(), nil
	case *node.Leaf:
		if node.KeyBit(target.Key, depth) == 0 {
			return target, node.EmptyNode(), nil
		}
		return node.EmptyNode(), target, nil
	case *node.Inner:
		return target.Left, target.Right, nil
	case *node.PrunedInner:
		return nil, nil, fmt.Errorf("%w: at depth %d", ErrPruned, depth)
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, target)
	}
}

// upsertNode inserts the leaf into the target subtree rooted at
// the depth given, replacing any existing value for its key.
func upsertNode(target node.Node, leaf *node.Leaf, depth int) (
	updated node.Node, err error) {
	switch target := target.(type) {
	case *node.Empty:
		return leaf, nil
	case *node.Leaf:
		if target.Key == leaf.Key {
			// keep the full value over a digest only leaf
			// committing to the same value
			if !leaf.HasValue() && target.ValueDigest == leaf.ValueDigest {
				return target, nil
			}
			return leaf, nil
		}
		forked, _ := forkLeaves(target, leaf, depth)
		return forked, nil
	case *node.Inner:
		bit := node.KeyBit(leaf.Key, depth)
		newChild, err := upsertNode(target.Child(bit), leaf, depth+1)
		if err != nil {
			return nil, err
		}
		if bit == 0 {
			return node.NewInner(newChild, target.Right), nil
		}
		return node.NewInner(target.Left, newChild), nil
	case *node.PrunedInner:
		return nil, fmt.Errorf("%w: at depth %d for key %s",
			ErrPruned, depth, leaf.Key.Short())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, target)
	}
}

// deleteNode removes the key from the target subtree rooted at
// the depth given, collapsing inner nodes left with a single
// leaf.
func deleteNode(target node.Node, key common.Hash, depth int) (
	updated node.Node, err error) {
	switch target := target.(type) {
	case *node.Empty:
		return target, nil
	case *node.Leaf:
		if target.Key == key {
			return node.EmptyNode(), nil
		}
		return target, nil
	case *node.Inner:
		bit := node.KeyBit(key, depth)
		newChild, err := deleteNode(target.Child(bit), key, depth+1)
		if err != nil {
			return nil, err
		}
		if bit == 0 {
			return joinChildren(newChild, target.Right), nil
		}
		return joinChildren(target.Left, newChild), nil
	case *node.PrunedInner:
		return nil, fmt.Errorf("%w: at depth %d for key %s",
			ErrPruned, depth, key.Short())
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, target)
	}
}
