// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package memory provides an in-memory database implementation.
package memory

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/ChainSafe/merbinner/internal/database"
)

// Database is an in-memory database implementation.
type Database struct {
	closed    bool
	keyValues map[string][]byte
	mutex     sync.RWMutex
}

var _ database.Database = (*Database)(nil)

// New returns a new in-memory database.
func New() *Database {
	return &Database{
		keyValues: make(map[string][]byte),
	}
}

// Get retrieves a value from the database using the given key.
// It returns the wrapped error `database.ErrKeyNotFound` if the
// key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	db.panicOnClosed()

	value, ok := db.keyValues[string(key)]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
	}

	valueCpy := make([]byte, len(value))
	copy(valueCpy, value)
	return valueCpy, nil
}

// Has returns true if the key given exists in the database.
func (db *Database) Has(key []byte) (exists bool, err error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	db.panicOnClosed()

	_, exists = db.keyValues[string(key)]
	return exists, nil
}

// Put sets a value at the given key in the database.
func (db *Database) Put(key, value []byte) error {
	valueCpy := make([]byte, len(value))
	copy(valueCpy, value)

	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.panicOnClosed()

	db.keyValues[string(key)] = valueCpy
	return nil
}

// Del deletes the value at the given key from the database.
// If the key is not found, no error is returned.
func (db *Database) Del(key []byte) error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.panicOnClosed()

	delete(db.keyValues, string(key))
	return nil
}

// Flush is a no-op for the in-memory database.
func (db *Database) Flush() error {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	db.panicOnClosed()
	return nil
}

// Path returns an empty string for the in-memory database.
func (db *Database) Path() string {
	return ""
}

// NewBatch returns a new write batch for the database.
func (db *Database) NewBatch() database.Batch {
	return &writeBatch{
		database:  db,
		keyValues: make(map[string][]byte),
		deletions: make(map[string]struct{}),
	}
}

// NewIterator returns an iterator over all the database keys
// in ascending lexicographic order. The iterator operates on
// a snapshot of the database taken when this method is called.
func (db *Database) NewIterator() database.Iterator {
	return db.NewPrefixIterator(nil)
}

// NewPrefixIterator returns an iterator over all the database keys
// with the given prefix, in ascending lexicographic order.
func (db *Database) NewPrefixIterator(prefix []byte) database.Iterator {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	db.panicOnClosed()

	keys := make([]string, 0, len(db.keyValues))
	for key := range db.keyValues {
		if !bytes.HasPrefix([]byte(key), prefix) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	keyValues := make(map[string][]byte, len(keys))
	for _, key := range keys {
		value := db.keyValues[key]
		valueCpy := make([]byte, len(value))
		copy(valueCpy, value)
		keyValues[key] = valueCpy
	}

	return &iterator{
		index:     -1,
		keys:      keys,
		keyValues: keyValues,
	}
}

// Close closes the database, and any operation on it
// after closing will panic.
func (db *Database) Close() error {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.panicOnClosed()
	db.closed = true
	db.keyValues = nil
	return nil
}

func (db *Database) panicOnClosed() {
	if db.closed {
		panic("database is closed")
	}
}
