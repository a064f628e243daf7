// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"fmt"
	"reflect"

	"cogentcore.org/deepinspect/base/errors"
	"cogentcore.org/deepinspect/base/reflectx"
	"cogentcore.org/deepinspect/host"
)

// ShowState is the show and hide state of one drawn value,
// kept across frames.
type ShowState struct {
	Expanded       bool
	AlwaysExpanded bool

	MethodsExpanded      bool
	ShowInheritedMethods bool
	ShowInheritedMembers bool

	// RequiresConfirmation values are only expanded after the user
	// confirms, which sets Confirmed.
	RequiresConfirmation bool
	Confirmed            bool

	dicts map[int]*DictState
	pages map[int]*PageState
}

// Dict returns the dictionary state of the map slot with the given index.
func (s *ShowState) Dict(index int) *DictState {
	if s.dicts == nil {
		s.dicts = map[int]*DictState{}
	}
	d := s.dicts[index]
	if d == nil {
		d = &DictState{}
		s.dicts[index] = d
	}
	return d
}

// Page returns the page state of the collection slot with the given index.
func (s *ShowState) Page(index int) *PageState {
	if s.pages == nil {
		s.pages = map[int]*PageState{}
	}
	p := s.pages[index]
	if p == nil {
		p = NewPageState()
		s.pages[index] = p
	}
	return p
}

// DictState is the staging state of a map for adding a new entry.
type DictState struct {

	// Show is whether the staging panel is shown.
	Show bool

	// Key and Value are the staged entry.
	Key, Value reflect.Value
}

// Reset clears the staged entry.
func (d *DictState) Reset() {
	d.Key = reflect.Value{}
	d.Value = reflect.Value{}
}

// PageState is which page of a paged list is open.
// At most one page is open at a time.
type PageState struct {
	current int
}

// NewPageState returns a new page state with no page open.
func NewPageState() *PageState {
	return &PageState{current: -1}
}

// Current returns the index of the open page, or -1 if none is open.
func (p *PageState) Current() int {
	return p.current
}

// IsFolded returns whether the given page is closed.
func (p *PageState) IsFolded(page int) bool {
	return p.current != page
}

// Toggle opens the given page, closing any other, or closes it
// if it is open.
func (p *PageState) Toggle(page int) {
	if p.current == page {
		p.current = -1
	} else {
		p.current = page
	}
}

type stateBucket struct {
	null  *ShowState
	named map[string]*ShowState
}

// Tree holds the [ShowState] of every drawn value, created on first
// access and never removed.
type Tree struct {
	Classifier *Classifier
	buckets    map[reflect.Type]*stateBucket
}

// NewTree returns a new empty state tree.
func NewTree(c *Classifier) *Tree {
	return &Tree{Classifier: c, buckets: map[reflect.Type]*stateBucket{}}
}

// Get returns the state of the given value of the given type. An absent
// (nil) value shares a single state per type. Otherwise the state is keyed
// by name, or by the display string of the value if name is empty, so
// distinct values drawn under the same name share their state.
func (t *Tree) Get(owner reflect.Value, typ reflect.Type, name string) *ShowState {
	b := t.buckets[typ]
	if b == nil {
		b = &stateBucket{named: map[string]*ShowState{}}
		t.buckets[typ] = b
	}
	if reflectx.IsNil(owner) {
		if b.null == nil {
			b.null = t.newState(typ)
		}
		return b.null
	}
	key := name
	if key == "" {
		key = displayKey(owner, typ)
	}
	s := b.named[key]
	if s == nil {
		s = t.newState(typ)
		b.named[key] = s
	}
	return s
}

// Len returns the number of states in the tree.
func (t *Tree) Len() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b.named)
		if b.null != nil {
			n++
		}
	}
	return n
}

// displayKey returns the String of a [fmt.Stringer] value and
// the type name otherwise.
func displayKey(v reflect.Value, typ reflect.Type) string {
	if s, ok := reflectx.Interface(reflectx.PointerValue(v)).(fmt.Stringer); ok {
		str, err := errors.Recover1(func() (string, error) { return s.String(), nil })
		if err == nil {
			return str
		}
	}
	return typ.String()
}

func (t *Tree) newState(typ reflect.Type) *ShowState {
	s := &ShowState{Expanded: true}
	cl := t.Classifier.Classify(typ)
	npt := nonPointer(typ)
	switch {
	case t.Classifier.Settings.IsDangerous(typ):
		s.Expanded = false
		s.RequiresConfirmation = true
	case host.IsComponentType(typ):
	case host.IsObjectType(typ) && npt != nil && t.Classifier.Settings.IsFrameworkPackage(npt.PkgPath()):
		s.Expanded = false
	case cl.Category == Leaf || cl.Category == AlwaysExpanded:
		s.AlwaysExpanded = true
	}
	return s
}
