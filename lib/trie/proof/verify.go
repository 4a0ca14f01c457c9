// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package proof

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/merbinner/internal/database"
	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/ChainSafe/merbinner/lib/trie"
)

var (
	ErrKeyNotFoundInProofTrie = errors.New("key not found in proof trie")
	ErrKeyPresentInProofTrie  = errors.New("key is present in proof trie")
	ErrValueMismatchProofTrie = errors.New("value found in proof trie does not match")
	ErrIncompleteProof        = errors.New("proof does not cover the key path")
	ErrEmptyProof             = errors.New("proof slice empty")
	ErrRootNodeNotFound       = errors.New("root node not found in proof")
)

// Verify verifies the key has the value given in the tree with
// the root hash given, by building a proof tree from the
// encoded proof nodes. The order of the encoded nodes is
// ignored. A nil error is returned on success.
func Verify(encodedProofNodes [][]byte, rootHash common.Hash, key common.Hash,
	value []byte) (err error) {
	proofTrie, err := buildTrie(encodedProofNodes, rootHash)
	if err != nil {
		return fmt.Errorf("building tree from proof encoded nodes: %w", err)
	}

	valueDigest, err := proofTrie.GetValueDigest(key)
	switch {
	case errors.Is(err, trie.ErrKeyNotFound):
		return fmt.Errorf("%w: %s for root hash %s",
			ErrKeyNotFoundInProofTrie, key.Short(), rootHash.Short())
	case errors.Is(err, trie.ErrPruned):
		return fmt.Errorf("%w: for key %s: %s",
			ErrIncompleteProof, key.Short(), err)
	case err != nil:
		return fmt.Errorf("getting value digest from proof trie: %w", err)
	}

	// The proof may only carry the value digest for the key,
	// which is as binding as the full value.
	if common.MustBlake2bHash(value) != valueDigest {
		return fmt.Errorf("%w: for key %s", ErrValueMismatchProofTrie, key.Short())
	}

	return nil
}

// VerifyNonMembership verifies the key is absent from the tree
// with the root hash given. It fails with ErrIncompleteProof if
// the proof does not cover enough of the key path to conclude.
func VerifyNonMembership(encodedProofNodes [][]byte, rootHash common.Hash,
	key common.Hash) (err error) {
	proofTrie, err := buildTrie(encodedProofNodes, rootHash)
	if err != nil {
		return fmt.Errorf("building tree from proof encoded nodes: %w", err)
	}

	_, err = proofTrie.GetValueDigest(key)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s for root hash %s",
			ErrKeyPresentInProofTrie, key.Short(), rootHash.Short())
	case errors.Is(err, trie.ErrKeyNotFound):
		return nil
	case errors.Is(err, trie.ErrPruned):
		return fmt.Errorf("%w: for key %s: %s",
			ErrIncompleteProof, key.Short(), err)
	default:
		return fmt.Errorf("getting value digest from proof trie: %w", err)
	}
}

// buildTrie builds a partial tree from the proof slice of
// encoded nodes and the root hash given.
func buildTrie(encodedProofNodes [][]byte, rootHash common.Hash) (
	proofTrie *trie.Trie, err error) {
	if rootHash == trie.EmptyHash {
		return trie.NewEmptyTrie(), nil
	}

	if len(encodedProofNodes) == 0 {
		return nil, fmt.Errorf("%w: for root hash %s",
			ErrEmptyProof, rootHash.Short())
	}

	proofDB := make(proofDatabase, len(encodedProofNodes))
	rootFound := false
	for i, encodedProofNode := range encodedProofNodes {
		decodedNode, err := node.Decode(bytes.NewReader(encodedProofNode))
		if err != nil {
			return nil, fmt.Errorf("decoding node at index %d: %w (node encoded is 0x%x)",
				i, err, encodedProofNode)
		}

		merkleValue := decodedNode.MerkleValue()
		proofDB[merkleValue] = encodedProofNode
		if merkleValue == rootHash {
			rootFound = true
		}
	}

	if !rootFound {
		return nil, fmt.Errorf("%w: for root hash %s in proof of %d encoded nodes",
			ErrRootNodeNotFound, rootHash.Short(), len(encodedProofNodes))
	}

	proofTrie, err = trie.Load(proofDB, rootHash)
	if err != nil {
		return nil, fmt.Errorf("loading tree from proof nodes: %w", err)
	}
	return proofTrie, nil
}

// proofDatabase adapts the proof node set to the database
// getter interface the tree loading expects.
type proofDatabase map[common.Hash][]byte

func (pd proofDatabase) Get(key []byte) (value []byte, err error) {
	merkleValue := common.NewHash(key)
	encoding, ok := pd[merkleValue]
	if !ok {
		return nil, fmt.Errorf("%w: node %s", database.ErrKeyNotFound, merkleValue.Short())
	}
	return encoding, nil
}
