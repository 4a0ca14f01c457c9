// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/qdm12/gotree"
)

var _ Node = (*PrunedInner)(nil)

// PrunedInner replaces a discarded inner subtree, keeping
// only its merkle value. Its contents can no longer be
// accessed but its merkle value still contributes to the
// root hash as before.
type PrunedInner struct {
	merkleValue common.Hash
}

// NewPrunedInner creates a new pruned inner node
// from the merkle value given.
func NewPrunedInner(merkleValue common.Hash) *PrunedInner {
	return &PrunedInner{
		merkleValue: merkleValue,
	}
}

// Type returns PrunedInnerType.
func (p *PrunedInner) Type() Type {
	return PrunedInnerType
}

// MerkleValue returns the merkle value recorded
// when the subtree was pruned.
func (p *PrunedInner) MerkleValue() (merkleValue common.Hash) {
	return p.merkleValue
}

func (p *PrunedInner) String() string {
	return p.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (p *PrunedInner) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Pruned inner")
	stringNode.Appendf("Merkle value: " + p.merkleValue.String())
	return stringNode
}
