// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package proof generates and verifies membership and non
// membership proofs for merbinner trees. A proof is the list
// of encoded nodes of the tree pruned down to the keys being
// proven.
package proof

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/ChainSafe/merbinner/lib/trie"
)

// Database defines a key value Get method used
// for proof generation.
type Database interface {
	Get(key []byte) (value []byte, err error)
}

// Generate returns the encoded proof nodes proving the presence
// or absence of each key given, for the tree with the root hash
// given. The database given is used to load the tree nodes.
func Generate(rootHash common.Hash, keys []common.Hash, database Database) (
	encodedProofNodes [][]byte, err error) {
	loadedTrie, err := trie.Load(database, rootHash)
	if err != nil {
		return nil, fmt.Errorf("loading tree: %w", err)
	}

	prunedTrie, err := loadedTrie.Prune(keys)
	if err != nil {
		return nil, fmt.Errorf("pruning tree to the keys to prove: %w", err)
	}

	encodedProofNodes, err = encodeNodes(prunedTrie.RootNode())
	if err != nil {
		return nil, fmt.Errorf("encoding proof nodes: %w", err)
	}
	return encodedProofNodes, nil
}

// encodeNodes walks the subtree root first and collects the
// encoding of every node except empty and pruned inner nodes:
// the verifier reconstructs both from the child references of
// their parent inner node.
func encodeNodes(n node.Node) (encodedNodes [][]byte, err error) {
	switch n.Type() {
	case node.EmptyType, node.PrunedInnerType:
		return nil, nil
	}

	// Note we do not use sync.Pool buffers since the encoding
	// must persist in encodedNodes.
	encodingBuffer := bytes.NewBuffer(nil)
	err = n.Encode(encodingBuffer)
	if err != nil {
		return nil, fmt.Errorf("encoding node %s: %w", n.MerkleValue().Short(), err)
	}
	encodedNodes = append(encodedNodes, encodingBuffer.Bytes())

	inner, ok := n.(*node.Inner)
	if !ok {
		return encodedNodes, nil
	}

	for _, child := range []node.Node{inner.Left, inner.Right} {
		childEncodedNodes, err := encodeNodes(child)
		if err != nil {
			return nil, err
		}
		encodedNodes = append(encodedNodes, childEncodedNodes...)
	}
	return encodedNodes, nil
}
