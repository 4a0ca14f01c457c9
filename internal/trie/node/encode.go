// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"encoding/binary"
	"fmt"
	"io"
)

// The wire encoding of every node starts with its variant byte.
// Inner nodes encode their children as merkle value references,
// to be resolved against a database or a proof node set; see
// Decode for the resolution.

// Encode encodes the empty node to the writer given.
func (e *Empty) Encode(writer io.Writer) (err error) {
	_, err = writer.Write([]byte{emptyVariant})
	if err != nil {
		return fmt.Errorf("writing variant byte: %w", err)
	}
	return nil
}

// Encode encodes the leaf to the writer given. A leaf holding
// its full value encodes the value; a leaf reduced to its value
// digest encodes the digest only.
func (l *Leaf) Encode(writer io.Writer) (err error) {
	if !l.HasValue() {
		err = writeAll(writer, []byte{leafVariant}, l.Key[:], l.ValueDigest[:])
		if err != nil {
			return fmt.Errorf("writing digest only leaf: %w", err)
		}
		return nil
	}

	var valueLength [4]byte
	binary.BigEndian.PutUint32(valueLength[:], uint32(len(l.Value)))
	err = writeAll(writer, []byte{fullLeafVariant}, l.Key[:],
		l.ValueDigest[:], valueLength[:], l.Value)
	if err != nil {
		return fmt.Errorf("writing full leaf: %w", err)
	}
	return nil
}

// Encode encodes the inner node to the writer given, writing
// the merkle values of its children as references.
func (in *Inner) Encode(writer io.Writer) (err error) {
	leftMerkleValue := in.Left.MerkleValue()
	rightMerkleValue := in.Right.MerkleValue()
	err = writeAll(writer, []byte{innerVariant},
		leftMerkleValue[:], rightMerkleValue[:])
	if err != nil {
		return fmt.Errorf("writing inner node: %w", err)
	}
	return nil
}

// Encode encodes the pruned inner node to the writer given.
func (p *PrunedInner) Encode(writer io.Writer) (err error) {
	err = writeAll(writer, []byte{prunedInnerVariant}, p.merkleValue[:])
	if err != nil {
		return fmt.Errorf("writing pruned inner node: %w", err)
	}
	return nil
}

// Encode encodes the deletion marker to the writer given.
func (d *Deletion) Encode(writer io.Writer) (err error) {
	err = writeAll(writer, []byte{deletionVariant}, d.Key[:])
	if err != nil {
		return fmt.Errorf("writing deletion marker: %w", err)
	}
	return nil
}

func writeAll(writer io.Writer, slices ...[]byte) (err error) {
	for _, slice := range slices {
		_, err = writer.Write(slice)
		if err != nil {
			return err
		}
	}
	return nil
}
