// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package log provides a leveled logger with context key values,
// used across the repository.
package log

import (
	"sync"
)

// Logger is the logger implementation structure.
// It is thread safe to use.
type Logger struct {
	settings settings
	mutex    *sync.Mutex // pointer for child loggers
}

// New creates a new logger.
// If you want to create more loggers with different settings for the
// same writer, child loggers can be created using the New method on
// the logger, to ensure thread safety on the same writer.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a new thread safe child logger.
// It can use a different writer, but it is expected to use the
// same writer since it is thread safe.
func (l *Logger) New(options ...Option) *Logger {
	s := newSettings(options)
	s.mergeWith(l.settings)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    l.mutex,
	}
}

// Patch patches the existing settings with the options given.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	patchSettings := newSettings(options)
	patchSettings.mergeWith(l.settings)
	patchSettings.setDefaults()
	l.settings = patchSettings
}

// PatchLevel patches the level of the existing settings,
// unless the level given is DoNotChange.
func (l *Logger) PatchLevel(level Level) {
	if level == DoNotChange {
		return
	}
	l.Patch(SetLevel(level))
}
