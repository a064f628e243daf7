// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type player struct {
	Health int
	Items  []string
}

func TestUndoRedo(t *testing.T) {
	um := New()
	p := &player{Health: 10, Items: []string{"sword"}}

	assert.NoError(t, um.Save("Set Health", p))
	p.Health = 15
	assert.NoError(t, um.Save("Add Item", p))
	p.Items = append(p.Items, "shield")

	assert.True(t, um.IsUndoAvail())
	assert.False(t, um.IsRedoAvail())

	assert.Equal(t, "Add Item", um.Undo())
	assert.Equal(t, []string{"sword"}, p.Items)
	assert.Equal(t, "Set Health", um.Undo())
	assert.Equal(t, 10, p.Health)
	assert.Equal(t, "", um.Undo())

	assert.Equal(t, "Set Health", um.Redo())
	assert.Equal(t, 15, p.Health)
	assert.Equal(t, "Add Item", um.Redo())
	assert.Equal(t, []string{"sword", "shield"}, p.Items)
	assert.Equal(t, "", um.Redo())
}

func TestSaveTruncatesRedo(t *testing.T) {
	um := New()
	p := &player{Health: 1}
	assert.NoError(t, um.Save("a", p))
	p.Health = 2
	um.Undo()
	assert.True(t, um.IsRedoAvail())
	assert.NoError(t, um.Save("b", p))
	assert.False(t, um.IsRedoAvail())
	assert.Len(t, um.Recs, 1)
}

func TestSaveErrors(t *testing.T) {
	um := New()
	assert.Error(t, um.Save("x", player{}))
	var p *player
	assert.Error(t, um.Save("x", p))
}

func TestMaxRecs(t *testing.T) {
	um := New()
	um.MaxRecs = 2
	p := &player{}
	for range 5 {
		assert.NoError(t, um.Save("x", p))
	}
	assert.Len(t, um.Recs, 2)
	assert.Equal(t, 1, um.Idx)
}

type tagged struct {
	Name string
	id   int
}

func TestUnexportedKept(t *testing.T) {
	um := New()
	tg := &tagged{Name: "a", id: 7}
	assert.NoError(t, um.Save("Rename", tg))
	tg.Name = "b"
	um.Undo()
	assert.Equal(t, "a", tg.Name)
	assert.Equal(t, 7, tg.id)
}

type linked struct {
	Scores map[string][]int
	Next   *linked
}

func TestReferencesKept(t *testing.T) {
	um := New()
	other := &linked{}
	l := &linked{Scores: map[string][]int{"a": {1, 2}}, Next: other}
	assert.NoError(t, um.Save("Set Score", l))
	l.Scores["a"][0] = 5
	l.Next = nil
	um.Undo()
	assert.Equal(t, []int{1, 2}, l.Scores["a"])
	assert.Same(t, other, l.Next)
	um.Redo()
	assert.Equal(t, []int{5, 2}, l.Scores["a"])
	assert.Nil(t, l.Next)
}
