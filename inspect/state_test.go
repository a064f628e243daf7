// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"reflect"
	"testing"

	"cogentcore.org/deepinspect/host/scene"
	"cogentcore.org/deepinspect/surface/record"
	"github.com/stretchr/testify/assert"
)

type label struct{ text string }

func (l label) String() string { return l.text }

func TestTreeSharing(t *testing.T) {
	tr := NewTree(NewClassifier(NewSettings()))
	typ := reflect.TypeFor[*stats]()

	a := tr.Get(reflect.ValueOf(&stats{}), typ, "Stats")
	b := tr.Get(reflect.ValueOf(&stats{Armor: 2}), typ, "Stats")
	assert.Same(t, a, b)

	null := tr.Get(reflect.ValueOf((*stats)(nil)), typ, "Stats")
	assert.NotSame(t, a, null)
	assert.Same(t, null, tr.Get(reflect.Value{}, typ, "Other"))
	assert.NotSame(t, a, tr.Get(reflect.ValueOf(&stats{}), typ, "Other"))
	assert.Equal(t, 3, tr.Len())

	lt := reflect.TypeFor[label]()
	x := tr.Get(reflect.ValueOf(label{"x"}), lt, "")
	assert.Same(t, x, tr.Get(reflect.ValueOf(label{"x"}), lt, ""))
	assert.NotSame(t, x, tr.Get(reflect.ValueOf(label{"y"}), lt, ""))
}

func TestNewState(t *testing.T) {
	tr := NewTree(NewClassifier(NewSettings()))
	get := func(typ reflect.Type) *ShowState {
		return tr.Get(reflect.Value{}, typ, "")
	}

	ps := get(reflect.TypeFor[*scene.ParticleSystem]())
	assert.False(t, ps.Expanded)
	assert.True(t, ps.RequiresConfirmation)

	tf := get(reflect.TypeFor[*scene.Transform]())
	assert.True(t, tf.Expanded)
	assert.False(t, tf.AlwaysExpanded)

	mat := get(reflect.TypeFor[*scene.Material]())
	assert.False(t, mat.Expanded)

	assert.True(t, get(reflect.TypeFor[int]()).AlwaysExpanded)
	assert.True(t, get(reflect.TypeFor[stats]()).Expanded)
}

func TestPageState(t *testing.T) {
	p := NewPageState()
	assert.Equal(t, -1, p.Current())
	assert.True(t, p.IsFolded(0))

	p.Toggle(2)
	assert.Equal(t, 2, p.Current())
	assert.False(t, p.IsFolded(2))
	assert.True(t, p.IsFolded(0))

	p.Toggle(1)
	assert.True(t, p.IsFolded(2))
	assert.False(t, p.IsFolded(1))

	p.Toggle(1)
	assert.Equal(t, -1, p.Current())
}

func TestShowStateChildren(t *testing.T) {
	s := &ShowState{}
	d := s.Dict(3)
	d.Show = true
	assert.Same(t, d, s.Dict(3))
	assert.NotSame(t, d, s.Dict(4))
	d.Key = reflect.ValueOf("k")
	d.Reset()
	assert.False(t, d.Key.IsValid())
	assert.True(t, d.Show)
	assert.Same(t, s.Page(1), s.Page(1))
	assert.Equal(t, -1, s.Page(2).Current())
}

func TestDisabledStack(t *testing.T) {
	rs := record.New()
	d := &DisabledStack{Surface: rs}
	d.Begin(false)
	assert.False(t, d.Active())
	d.Begin(true)
	assert.True(t, rs.IsDisabled())
	d.Begin(true)
	d.Begin(false)
	assert.True(t, d.Active())
	assert.Equal(t, 4, d.Depth())
	d.End()
	d.End()
	assert.True(t, rs.IsDisabled())
	d.End()
	assert.False(t, rs.IsDisabled())
	assert.False(t, d.Active())
	d.End()
	d.End()
	assert.Equal(t, 0, d.Depth())
	assert.Equal(t, 2, rs.DisabledCalls)
}
