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

// Prune returns a tree with the same root hash as the receiver
// but containing only what is needed to prove the presence or
// absence of the keys given. Leaves for the keys keep their
// full value, other leaves are reduced to their value digest,
// and inner subtrees no key path goes through are replaced by
// pruned inner nodes.
func (t *Trie) Prune(keys []common.Hash) (newTrie *Trie, err error) {
	sortedKeys := make([]common.Hash, len(keys))
	copy(sortedKeys, keys)
	sort.Slice(sortedKeys, func(i, j int) bool {
		return bytes.Compare(sortedKeys[i][:], sortedKeys[j][:]) < 0
	})

	prunedRoot, err := pruneNode(t.root, sortedKeys, 0)
	if err != nil {
		return nil, err
	}
	return t.derive(prunedRoot), nil
}

func pruneNode(n node.Node, sortedKeys []common.Hash, depth int) (
	pruned node.Node, err error) {
	switch n := n.(type) {
	case *node.Empty:
		// the empty node proves absence on its own
		return n, nil
	case *node.Leaf:
		for _, key := range sortedKeys {
			if key == n.Key {
				return n, nil
			}
		}
		// off path leaves witness the absence of the keys
		// routed to them, which only needs the value digest
		return n.WithoutValue(), nil
	case *node.Inner:
		if len(sortedKeys) == 0 {
			return node.NewPrunedInner(n.MerkleValue()), nil
		}
		firstRightIndex := sort.Search(len(sortedKeys), func(i int) bool {
			return node.KeyBit(sortedKeys[i], depth) == 1
		})
		left, err := pruneNode(n.Left, sortedKeys[:firstRightIndex], depth+1)
		if err != nil {
			return nil, err
		}
		right, err := pruneNode(n.Right, sortedKeys[firstRightIndex:], depth+1)
		if err != nil {
			return nil, err
		}
		return node.NewInner(left, right), nil
	case *node.PrunedInner:
		if len(sortedKeys) > 0 {
			return nil, fmt.Errorf("%w: at depth %d covering %d keys",
				ErrPruned, depth, len(sortedKeys))
		}
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedNodeType, n)
	}
}
