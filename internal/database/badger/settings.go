// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package badger

import (
	"errors"
	"fmt"
)

// Settings is the settings for the badger database.
type Settings struct {
	// Path is the database directory path.
	// It defaults to the empty string for in-memory databases.
	Path *string
	// InMemory is true if the database is in-memory.
	// It defaults to false.
	InMemory *bool
}

// SetDefaults sets the default values on the settings.
func (s *Settings) SetDefaults() {
	if s.Path == nil {
		s.Path = new(string)
	}
	if s.InMemory == nil {
		s.InMemory = new(bool)
	}
}

var (
	ErrPathSetInMemory = errors.New("path set for in-memory database")
	ErrPathNotSet      = errors.New("path is not set")
)

// Validate validates the settings.
func (s *Settings) Validate() error {
	switch {
	case *s.InMemory && *s.Path != "":
		return fmt.Errorf("%w: %s", ErrPathSetInMemory, *s.Path)
	case !*s.InMemory && *s.Path == "":
		return ErrPathNotSet
	}
	return nil
}
