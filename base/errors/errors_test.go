// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	err := Wrap(io.EOF)
	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, io.EOF, e.Base)
	assert.True(t, Is(err, io.EOF))
	assert.Equal(t, "EOF", err.Error())
	assert.Same(t, e, Wrap(err))
}

func TestNew(t *testing.T) {
	err := Errorf("value %d", 3)
	assert.Equal(t, "value 3", err.Error())
	assert.Equal(t, "value 3", New("value 3").Error())
}

func TestVerbose(t *testing.T) {
	Verbose = true
	defer func() { Verbose = false }()
	err := New("bad")
	assert.Contains(t, err.Error(), "bad (")
	assert.Contains(t, err.Error(), "errors_test.go")
}

func TestRecover(t *testing.T) {
	err := Recover(func() error {
		panic("boom")
	})
	assert.Error(t, err)
	assert.True(t, IsPanic(err))
	assert.Equal(t, "panic: boom", err.Error())

	err = Recover(func() error { return io.ErrUnexpectedEOF })
	assert.False(t, IsPanic(err))
	assert.True(t, Is(err, io.ErrUnexpectedEOF))

	assert.NoError(t, Recover(func() error { return nil }))
}

func TestRecover1(t *testing.T) {
	v, err := Recover1(func() (int, error) { return 4, nil })
	assert.NoError(t, err)
	assert.Equal(t, 4, v)

	v, err = Recover1(func() (int, error) {
		var m map[string]int
		m["x"] = 1
		return 5, nil
	})
	assert.True(t, IsPanic(err))
	assert.Equal(t, 0, v)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 3, Ignore1(3, io.EOF))
	assert.Equal(t, 3, Must1(3, nil))
	assert.Panics(t, func() { Must(io.EOF) })
}
