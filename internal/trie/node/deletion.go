// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"github.com/ChainSafe/merbinner/lib/common"
	"github.com/qdm12/gotree"
)

var _ Node = (*Deletion)(nil)

// Deletion marks a key for removal in a patch tree.
// It only ever appears in patch trees given to Update
// and is rejected by every other tree operation.
type Deletion struct {
	Key common.Hash
}

// NewDeletion creates a new deletion marker for the key given.
func NewDeletion(key common.Hash) *Deletion {
	return &Deletion{
		Key: key,
	}
}

// Type returns DeletionType.
func (d *Deletion) Type() Type {
	return DeletionType
}

// MerkleValue returns the zero hash since deletion markers
// have no merkle value of their own.
func (d *Deletion) MerkleValue() (merkleValue common.Hash) {
	return common.Hash{}
}

func (d *Deletion) String() string {
	return d.StringNode().String()
}

// StringNode returns a gotree compatible node for String methods.
func (d *Deletion) StringNode() (stringNode *gotree.Node) {
	stringNode = gotree.New("Deletion")
	stringNode.Appendf("Key: " + d.Key.String())
	return stringNode
}
