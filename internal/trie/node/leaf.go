// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"

	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/qdm12/gotree"
)

var _ Node = (*Leaf)(nil)

// Leaf stores a key together with its value. The value may
// have been pruned away, in which case only its digest is
// kept; the merkle value is unaffected since it only commits
// to the value digest.
type Leaf struct {
	Key         common.Hash
	ValueDigest common.Hash
	// Value is the full value, or nil if the leaf
	// only carries the value digest.
	Value       []byte
	merkleValue common.Hash
}

// NewLeaf creates a new leaf holding the full value given.
// The value is copied so the caller is free to modify it.
func NewLeaf(key common.Hash, value []byte) *Leaf {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	leaf := &Leaf{
		Key:         key,
		ValueDigest: common.MustBlake2bHash(value),
		Value:       valueCopy,
	}
	leaf.merkleValue = leafMerkleValue(leaf.Key, leaf.ValueDigest)
	return leaf
}

// NewLeafDigest creates a new leaf from the value digest only,
// with the value itself absent.
func NewLeafDigest(key, valueDigest common.Hash) *Leaf {
	return &Leaf{
		Key:         key,
		ValueDigest: valueDigest,
		merkleValue: leafMerkleValue(key, valueDigest),
	}
}

// HasValue returns true if the leaf holds its full value.
func (l *Leaf) HasValue() bool {
	return l.Value != nil
}

// WithoutValue returns the leaf reduced to its value digest.
// The receiver is returned as is if its value is already absent.
func (l *Leaf) WithoutValue() *Leaf {
	if !l.HasValue() {
		return l
	}
	return &Leaf{
		Key:         l.Key,
		ValueDigest: l.ValueDigest,
		merkleValue: l.merkleValue,
	}
}

// Type returns LeafType.
func (l *Leaf) Type() Type {
	return LeafType
}

// MerkleValue returns the merkle value of the leaf.
func (l *Leaf) MerkleValue() (merkleValue common.Hash) {
	return l.merkleValue
}

func (l *Leaf) String() string {
	return l.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (l *Leaf) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Leaf")
	stringNode.Appendf("Key: " + l.Key.String())
	stringNode.Appendf("Value digest: " + l.ValueDigest.String())
	if l.HasValue() {
		stringNode.Appendf("Value: " + bytesToString(l.Value))
	} else {
		stringNode.Appendf("Value: pruned")
	}
	stringNode.Appendf("Merkle value: " + l.merkleValue.String())
	return stringNode
}

func bytesToString(b []byte) (s string) {
	switch {
	case b == nil:
		return "nil"
	case len(b) <= 20:
		return fmt.Sprintf("0x%x", b)
	default:
		return fmt.Sprintf("0x%x...%x", b[:8], b[len(b)-8:])
	}
}
