// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ChainSafe/merbinner/lib/common"
)

var (
	ErrReadVariantByte      = errors.New("cannot read variant byte")
	ErrUnknownVariant       = errors.New("unknown node variant")
	ErrDecodeKey            = errors.New("cannot decode key")
	ErrDecodeValueDigest    = errors.New("cannot decode value digest")
	ErrDecodeValue          = errors.New("cannot decode value")
	ErrDecodeChildReference = errors.New("cannot decode child reference")
	ErrValueDigestMismatch  = errors.New("value does not match its digest")
	ErrValueTooLarge        = errors.New("value length is too large")
)

// maxValueLength bounds decoded value lengths so a corrupted
// length prefix cannot trigger a huge allocation.
const maxValueLength = 1 << 30

// Decode decodes a node from a reader. The children of a
// decoded inner node are pruned inner nodes holding the merkle
// value references read from the encoding, or the empty node
// where the reference is the empty node merkle value. The
// caller resolves the references against its node source.
func Decode(reader io.Reader) (n Node, err error) {
	var variant [1]byte
	_, err = io.ReadFull(reader, variant[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadVariantByte, err)
	}

	switch variant[0] {
	case emptyVariant:
		return EmptyNode(), nil
	case leafVariant, fullLeafVariant:
		n, err = decodeLeaf(reader, variant[0])
		if err != nil {
			return nil, fmt.Errorf("cannot decode leaf: %w", err)
		}
		return n, nil
	case innerVariant:
		n, err = decodeInner(reader)
		if err != nil {
			return nil, fmt.Errorf("cannot decode inner node: %w", err)
		}
		return n, nil
	case prunedInnerVariant:
		var merkleValue common.Hash
		_, err = io.ReadFull(reader, merkleValue[:])
		if err != nil {
			return nil, fmt.Errorf("cannot decode pruned inner node: %w", err)
		}
		return NewPrunedInner(merkleValue), nil
	case deletionVariant:
		var key common.Hash
		_, err = io.ReadFull(reader, key[:])
		if err != nil {
			return nil, fmt.Errorf("cannot decode deletion marker: %w", err)
		}
		return NewDeletion(key), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, variant[0])
	}
}

func decodeLeaf(reader io.Reader, variant byte) (leaf *Leaf, err error) {
	var key common.Hash
	_, err = io.ReadFull(reader, key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeKey, err)
	}

	var valueDigest common.Hash
	_, err = io.ReadFull(reader, valueDigest[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeValueDigest, err)
	}

	if variant == leafVariant {
		return NewLeafDigest(key, valueDigest), nil
	}

	var valueLength [4]byte
	_, err = io.ReadFull(reader, valueLength[:])
	if err != nil {
		return nil, fmt.Errorf("%w: reading length: %s", ErrDecodeValue, err)
	}
	length := binary.BigEndian.Uint32(valueLength[:])
	if length > maxValueLength {
		return nil, fmt.Errorf("%w: %d bytes", ErrValueTooLarge, length)
	}

	value := make([]byte, length)
	_, err = io.ReadFull(reader, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecodeValue, err)
	}

	if common.MustBlake2bHash(value) != valueDigest {
		return nil, fmt.Errorf("%w: for key %s", ErrValueDigestMismatch, key)
	}

	return NewLeaf(key, value), nil
}

func decodeInner(reader io.Reader) (inner *Inner, err error) {
	var leftReference, rightReference common.Hash
	_, err = io.ReadFull(reader, leftReference[:])
	if err != nil {
		return nil, fmt.Errorf("%w: left child: %s", ErrDecodeChildReference, err)
	}
	_, err = io.ReadFull(reader, rightReference[:])
	if err != nil {
		return nil, fmt.Errorf("%w: right child: %s", ErrDecodeChildReference, err)
	}

	return NewInner(
		nodeFromReference(leftReference),
		nodeFromReference(rightReference)), nil
}

func nodeFromReference(merkleValue common.Hash) Node {
	if merkleValue == emptyNodeMerkleValue {
		return EmptyNode()
	}
	return NewPrunedInner(merkleValue)
}
