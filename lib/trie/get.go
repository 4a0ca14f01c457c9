// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
)

// Get returns the value for the key given.
// It returns the wrapped error ErrKeyNotFound if no leaf has
// the key, ErrValuePruned if the leaf only holds the digest of
// its value, and ErrPruned if the lookup reaches a pruned
// subtree and cannot conclude either way.
func (t *Trie) Get(key common.Hash) (value []byte, err error) {
	leaf, err := t.getLeaf(key)
	if err != nil {
		return nil, err
	}
	if !leaf.HasValue() {
		return nil, fmt.Errorf("%w: for key %s", ErrValuePruned, key.Short())
	}
	value = make([]byte, len(leaf.Value))
	copy(value, leaf.Value)
	return value, nil
}

// GetValueDigest returns the digest of the value for the key
// given, whether or not the leaf still holds the full value.
func (t *Trie) GetValueDigest(key common.Hash) (valueDigest common.Hash, err error) {
	leaf, err := t.getLeaf(key)
	if err != nil {
		return common.Hash{}, err
	}
	return leaf.ValueDigest, nil
}

// Has returns true if the tree has a leaf for the key given,
// with or without its full value. It returns ErrPruned if the
// key path reaches a pruned subtree.
func (t *Trie) Has(key common.Hash) (has bool, err error) {
	_, err = t.getLeaf(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (t *Trie) getLeaf(key common.Hash) (leaf *node.Leaf, err error) {
	currentNode := t.root
	for depth := 0; ; depth++ {
		switch n := currentNode.(type) {
		case *node.Empty:
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key.Short())
		case *node.Leaf:
			if n.Key != key {
				return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key.Short())
			}
			return n, nil
		case *node.Inner:
			currentNode = n.Child(node.KeyBit(key, depth))
		case *node.PrunedInner:
			return nil, fmt.Errorf("%w: at depth %d for key %s",
				ErrPruned, depth, key.Short())
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, currentNode)
		}
	}
}
