// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"testing"

	"cogentcore.org/deepinspect/surface"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type demo struct {
	open      bool
	health    int64
	clicks    int
	confirmed bool
}

func (d *demo) frame(s surface.Surface) {
	d.open = s.Foldout("Player", d.open, 0)
	if !d.open {
		return
	}
	if v, ok := s.Field("Health", surface.Int, d.health, surface.FieldOptions{Indent: 1}); ok {
		d.health = v.(int64)
	}
	if s.Button("Clear", 1) && s.Confirm("Warning", "Clear?", "Yes", "No") {
		d.confirmed = true
	}
	s.SetDisabled(true)
	if s.Button("Locked", 1) {
		d.clicks++
	}
	s.SetDisabled(false)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func TestModel(t *testing.T) {
	d := &demo{health: 10}
	m := New("Inspector", d.frame)
	assert.Len(t, m.rows, 1)

	press(m, "enter")
	assert.True(t, d.open)
	assert.Len(t, m.rows, 4)

	press(m, "down", "enter", "backspace", "backspace", "1", "5", "enter")
	assert.Equal(t, int64(15), d.health)

	press(m, "down", "enter")
	assert.NotNil(t, m.asking)
	assert.Contains(t, m.View(), "Warning: Clear?")
	press(m, "y")
	assert.Nil(t, m.asking)
	assert.True(t, d.confirmed)

	press(m, "down", "enter")
	assert.Equal(t, 0, d.clicks)
	assert.True(t, m.rows[3].disabled)
}

func TestParse(t *testing.T) {
	v, err := parse(surface.Float, " 2.5 ")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, v)
	_, err = parse(surface.Int, "x")
	assert.Error(t, err)
	v, err = parse(surface.Text, " a ")
	assert.NoError(t, err)
	assert.Equal(t, " a ", v)
}
