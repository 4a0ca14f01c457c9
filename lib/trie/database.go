// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package trie

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ChainSafe/merbinner/internal/database"
	"github.com/ChainSafe/merbinner/internal/trie/node"
	"github.com/ChainSafe/merbinner/internal/trie/pools"
	"github.com/ChainSafe/merbinner/lib/common"
)

// DBGetter gets a value from a key value database.
// A missing key must return an error wrapping
// the database package ErrKeyNotFound error.
type DBGetter interface {
	Get(key []byte) (value []byte, err error)
}

// DBPutter puts a value at a key in a key value database.
type DBPutter interface {
	Put(key, value []byte) (err error)
}

// Store stores every node of the tree in the database given,
// each keyed by its merkle value. Empty nodes and pruned inner
// nodes are not stored: the former need no storage and the
// latter have nothing left to store.
func (t *Trie) Store(db DBPutter) (err error) {
	return storeNode(db, t.root)
}

func storeNode(db DBPutter, n node.Node) (err error) {
	switch n := n.(type) {
	case *node.Empty, *node.PrunedInner:
		return nil
	case *node.Leaf:
		return storeEncoding(db, n)
	case *node.Inner:
		err = storeEncoding(db, n)
		if err != nil {
			return err
		}
		err = storeNode(db, n.Left)
		if err != nil {
			return err
		}
		return storeNode(db, n.Right)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedNodeType, n)
	}
}

func storeEncoding(db DBPutter, n node.Node) (err error) {
	buffer := pools.EncodingBuffers.Get().(*bytes.Buffer)
	buffer.Reset()
	defer pools.EncodingBuffers.Put(buffer)

	err = n.Encode(buffer)
	if err != nil {
		return fmt.Errorf("encoding node: %w", err)
	}

	merkleValue := n.MerkleValue()
	err = db.Put(merkleValue[:], buffer.Bytes())
	if err != nil {
		return fmt.Errorf("putting encoding of node %s: %w",
			merkleValue.Short(), err)
	}
	return nil
}

// Load reconstructs a tree from the database given and the
// root hash of the tree. Node references not found in the
// database are loaded as pruned inner nodes, so a partially
// stored tree loads as a partially pruned tree with the same
// root hash.
func Load(db DBGetter, rootHash common.Hash) (loadedTrie *Trie, err error) {
	if rootHash == EmptyHash {
		return NewEmptyTrie(), nil
	}

	root, err := loadNode(db, rootHash)
	if err != nil {
		return nil, err
	}
	return NewTrie(root), nil
}

func loadNode(db DBGetter, merkleValue common.Hash) (n node.Node, err error) {
	encoding, err := db.Get(merkleValue[:])
	if err != nil {
		if errors.Is(err, database.ErrKeyNotFound) {
			return node.NewPrunedInner(merkleValue), nil
		}
		return nil, fmt.Errorf("getting node %s: %w", merkleValue.Short(), err)
	}

	n, err = node.Decode(bytes.NewReader(encoding))
	if err != nil {
		return nil, fmt.Errorf("decoding node %s: %w", merkleValue.Short(), err)
	}

	if n.MerkleValue() != merkleValue {
		return nil, fmt.Errorf("%w: node stored at %s has merkle value %s",
			ErrHashMismatch, merkleValue.Short(), n.MerkleValue().Short())
	}

	switch n := n.(type) {
	case *node.Leaf:
		return n, nil
	case *node.Inner:
		left, err := resolveChild(db, n.Left)
		if err != nil {
			return nil, err
		}
		right, err := resolveChild(db, n.Right)
		if err != nil {
			return nil, err
		}
		return node.NewInner(left, right), nil
	default:
		return nil, fmt.Errorf("%w: %s stored at %s",
			ErrUnsupportedNodeType, n.Type(), merkleValue.Short())
	}
}

// resolveChild loads the node behind a child reference decoded
// from an inner node encoding.
func resolveChild(db DBGetter, child node.Node) (resolved node.Node, err error) {
	if child.Type() != node.PrunedInnerType {
		// empty node reference, nothing to resolve
		return child, nil
	}
	return loadNode(db, child.MerkleValue())
}
