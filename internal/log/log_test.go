// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      Level
		errWrapped error
	}{
		"lowercase info": {
			s:     "info",
			level: Info,
		},
		"uppercase warn": {
			s:     "WARN",
			level: Warn,
		},
		"unknown level": {
			s:          "everything",
			errWrapped: ErrLevelNotRecognised,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.level, level)
		})
	}
}

func Test_Logger_levelFiltering(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	logger := New(SetWriter(buffer), SetLevel(Warn))

	logger.Info("filtered out")
	assert.Zero(t, buffer.Len())

	logger.Warn("kept")
	require.NotZero(t, buffer.Len())
	assert.Contains(t, buffer.String(), "kept")
}

func Test_Logger_context(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	logger := New(SetWriter(buffer), SetLevel(Trace),
		AddContext("pkg", "database"))

	child := logger.New(AddContext("backend", "pebble"))
	child.Debugf("opened at %s", "/tmp/x")

	line := buffer.String()
	assert.Contains(t, line, "pkg=database")
	assert.Contains(t, line, "backend=pebble")
	assert.Contains(t, line, "opened at /tmp/x")
}
