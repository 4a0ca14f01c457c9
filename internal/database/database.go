// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package database provides the key value database abstraction
// used to persist tree nodes, together with its implementations.
package database

import (
	"errors"
	"io"
)

// ErrKeyNotFound is returned when a key cannot be found in the database.
var ErrKeyNotFound = errors.New("key not found")

// Reader is a read-only key value store.
type Reader interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
}

// Writer is a write-only key value store.
type Writer interface {
	Put(key, value []byte) error
	Del(key []byte) error
	Flush() error
}

// Iterator iterates over key/value pairs in ascending key order.
// Must be released after use.
type Iterator interface {
	Valid() bool
	Next() bool
	Key() []byte
	Value() []byte
	First() bool
	Release()
	SeekGE(key []byte) bool
}

// Batch is a write-only operation.
type Batch interface {
	io.Closer
	Writer

	ValueSize() int
	Reset()
}

// Database wraps all database operations. All methods are safe for concurrent use.
type Database interface {
	Reader
	Writer
	io.Closer

	Path() string
	NewBatch() Batch
	NewIterator() Iterator
	NewPrefixIterator(prefix []byte) Iterator
}

// Table is a database with all its keys prefixed with a common prefix.
type Table interface {
	Reader
	Writer
	Path() string
	NewBatch() Batch
	NewIterator() Iterator
}
