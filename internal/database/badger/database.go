// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package badger provides a database implementation using badger v3.
package badger

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/merbinner/internal/database"
	badger "github.com/dgraph-io/badger/v3"
)

// Database is a database implementation using a badger/v3 database.
type Database struct {
	path           string
	badgerDatabase *badger.DB
}

var _ database.Database = (*Database)(nil)

// New returns a new database based on a badger v3 database.
func New(settings Settings) (db *Database, err error) {
	settings.SetDefaults()
	err = settings.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	badgerOptions := badger.DefaultOptions(*settings.Path)
	badgerOptions = badgerOptions.WithLogger(nil)
	badgerOptions = badgerOptions.WithInMemory(*settings.InMemory)
	badgerDatabase, err := badger.Open(badgerOptions)
	if err != nil {
		return nil, fmt.Errorf("opening badger database: %w", err)
	}

	return &Database{
		path:           *settings.Path,
		badgerDatabase: badgerDatabase,
	}, nil
}

// Path returns the database directory path.
func (db *Database) Path() string {
	return db.path
}

// Get retrieves a value from the database using the given key.
// It returns the wrapped error `database.ErrKeyNotFound` if the
// key is not found.
func (db *Database) Get(key []byte) (value []byte, err error) {
	err = db.badgerDatabase.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return fmt.Errorf("getting item from transaction: %w", err)
		}

		value, err = item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("copying value: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: 0x%x", database.ErrKeyNotFound, key)
		}
		return nil, err
	}

	return value, nil
}

// Has returns true if the key given exists in the database.
func (db *Database) Has(key []byte) (exists bool, err error) {
	err = db.badgerDatabase.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Put sets a value at the given key in the database.
func (db *Database) Put(key, value []byte) error {
	return db.badgerDatabase.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Del deletes the value at the given key from the database.
// If the key is not found, no error is returned.
func (db *Database) Del(key []byte) error {
	return db.badgerDatabase.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Flush syncs the database to disk. It is a no-op
// for in-memory databases.
func (db *Database) Flush() error {
	err := db.badgerDatabase.Sync()
	if err != nil && !db.badgerDatabase.Opts().InMemory {
		return fmt.Errorf("syncing database: %w", err)
	}
	return nil
}

// Close closes the database.
func (db *Database) Close() error {
	return db.badgerDatabase.Close()
}

// NewBatch returns a new write batch for the database.
func (db *Database) NewBatch() database.Batch {
	return &writeBatch{
		badgerWriteBatch: db.badgerDatabase.NewWriteBatch(),
	}
}

// NewIterator returns an iterator over all the database keys
// in ascending lexicographic order.
func (db *Database) NewIterator() database.Iterator {
	return db.NewPrefixIterator(nil)
}

// NewPrefixIterator returns an iterator over all the database keys
// with the given prefix, in ascending lexicographic order.
func (db *Database) NewPrefixIterator(prefix []byte) database.Iterator {
	txn := db.badgerDatabase.NewTransaction(false)
	iteratorOptions := badger.DefaultIteratorOptions
	iteratorOptions.Prefix = prefix
	badgerIterator := txn.NewIterator(iteratorOptions)

	return &iterator{
		txn:            txn,
		badgerIterator: badgerIterator,
		prefix:         prefix,
	}
}
