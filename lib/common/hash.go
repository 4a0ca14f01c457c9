// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const (
	// HashLength is the expected length of the common.Hash type.
	HashLength = 32
)

// EmptyHash is the all-zero hash.
var EmptyHash = Hash{}

var (
	// ErrNoPrefix is returned when a hex string is missing its 0x prefix.
	ErrNoPrefix = errors.New("hex string has no 0x prefix")
	// ErrHashLength is returned when a byte slice has an unexpected
	// length to be a hash.
	ErrHashLength = errors.New("byte slice has wrong length for a hash")
)

// Hash is a blake2b-256 digest.
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (h Hash) {
	copy(h[:], in)
	return h
}

// ToBytes turns a hash into a byte slice.
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is the all-zero hash.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and last 4 bytes of the hex string for the hash.
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}

// Blake2bHash returns the 32-byte blake2b digest of the data given.
func Blake2bHash(data []byte) (digest Hash, err error) {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, fmt.Errorf("creating blake2b hasher: %w", err)
	}

	_, err = hasher.Write(data)
	if err != nil {
		return Hash{}, fmt.Errorf("writing to blake2b hasher: %w", err)
	}

	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// MustBlake2bHash returns the 32-byte blake2b digest of the data
// given and panics on error.
func MustBlake2bHash(data []byte) Hash {
	digest, err := Blake2bHash(data)
	if err != nil {
		panic(err)
	}
	return digest
}

// HexToHash turns a 0x prefixed hex string into a Hash.
func HexToHash(s string) (h Hash, err error) {
	if len(s) < 2 || s[:2] != "0x" {
		return Hash{}, fmt.Errorf("%w: %s", ErrNoPrefix, s)
	}

	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return Hash{}, fmt.Errorf("decoding hex string: %w", err)
	}
	if len(b) != HashLength {
		return Hash{}, fmt.Errorf("%w: expected %d bytes but got %d",
			ErrHashLength, HashLength, len(b))
	}

	copy(h[:], b)
	return h, nil
}

// MustHexToHash turns a 0x prefixed hex string into a Hash,
// and panics if it cannot.
func MustHexToHash(s string) Hash {
	h, err := HexToHash(s)
	if err != nil {
		panic(err)
	}
	return h
}
