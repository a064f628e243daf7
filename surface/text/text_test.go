// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"bytes"
	"testing"

	"cogentcore.org/deepinspect/surface"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	var b bytes.Buffer
	s := New(&b, termenv.WithProfile(termenv.Ascii))
	assert.False(t, s.Foldout("Stats", false, 0))
	s.BeginBox()
	v, changed := s.Field("Armor", surface.Int, int64(5), surface.FieldOptions{Indent: 1})
	s.EndBox()
	assert.False(t, changed)
	assert.Equal(t, int64(5), v)
	assert.False(t, s.Button("Add", 0))
	assert.False(t, s.Confirm("Warning", "sure?", "Yes", "No"))
	assert.Equal(t, "▸ Stats\n    Armor: 5\n[Add]\nWarning: sure?\n", b.String())

	b.Reset()
	s.ExpandAll = true
	assert.True(t, s.Foldout("Stats", false, 0))
	assert.Equal(t, "▾ Stats\n", b.String())
}
