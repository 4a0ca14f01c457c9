// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/qdm12/gotree"
)

var _ Node = (*Inner)(nil)

// Inner is an inner node with a left subtree for keys with
// bit 0 at its depth and a right subtree for keys with bit 1.
type Inner struct {
	Left        Node
	Right       Node
	merkleValue common.Hash
}

// NewInner creates a new inner node over the two children
// given, computing its merkle value from theirs.
func NewInner(left, right Node) *Inner {
	return &Inner{
		Left:        left,
		Right:       right,
		merkleValue: innerMerkleValue(left.MerkleValue(), right.MerkleValue()),
	}
}

// Child returns the left child for bit 0 and
// the right child for bit 1.
func (in *Inner) Child(bit byte) Node {
	if bit == 0 {
		return in.Left
	}
	return in.Right
}

// Sibling returns the right child for bit 0 and
// the left child for bit 1.
func (in *Inner) Sibling(bit byte) Node {
	if bit == 0 {
		return in.Right
	}
	return in.Left
}

// Type returns InnerType.
func (in *Inner) Type() Type {
	return InnerType
}

// MerkleValue returns the merkle value of the inner node.
func (in *Inner) MerkleValue() (merkleValue common.Hash) {
	return in.merkleValue
}

func (in *Inner) String() string {
	return in.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (in *Inner) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Inner")
	stringNode.Appendf("Merkle value: " + in.merkleValue.String())
	leftNode := stringNode.Appendf("left")
	leftNode.AppendNode(in.Left.StringNode())
	rightNode := stringNode.Appendf("right")
	rightNode.AppendNode(in.Right.StringNode())
	return stringNode
}
