// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package database

import "github.com/cockroachdb/pebble"

var _ Iterator = (*pebbleIterator)(nil)

// pebbleIterator adapts a pebble iterator to the Iterator
// interface, turning Close into the error-free Release.
type pebbleIterator struct {
	*pebble.Iterator
}

// Release closes the underlying pebble iterator. Close errors
// have no caller to flow to, so they are logged instead.
func (pi *pebbleIterator) Release() {
	err := pi.Close()
	if err != nil {
		logger.Criticalf("closing pebble iterator: %s", err)
	}
}
