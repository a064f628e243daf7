// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a generic undo / redo manager that records
// snapshots of edited objects.
package undo

import (
	"log/slog"
	"reflect"
	"sync"

	"cogentcore.org/deepinspect/base/errors"
)

// DefaultMaxRecs is the default maximum number of records kept.
var DefaultMaxRecs = 100

// Rec is one undo record, associated with one action that changed the state
// of one target object.
type Rec struct {

	// description of this action, for user to see
	Action string

	// pointer to the object that the action changed
	Target any

	// copy of the target state to restore; it is swapped with
	// the current state on each undo / redo
	Snapshot any
}

// Mgr is the undo manager, managing the undo / redo process
type Mgr struct {

	// current index in the undo records: this is the record that will be undone if user hits undo
	Idx int

	// the list of saved state / action records
	Recs []*Rec

	// maximum number of records; oldest records are dropped beyond this
	MaxRecs int

	// mutex that protects updates
	Mu sync.Mutex
}

// New returns a new empty undo manager.
func New() *Mgr {
	return &Mgr{Idx: -1, MaxRecs: DefaultMaxRecs}
}

// snapshot returns a copy of the value pointed to by target.
func snapshot(target any) (any, error) {
	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.IsNil() {
		return nil, errors.Errorf("undo: target must be a non-nil pointer, not %T", target)
	}
	snap := reflect.New(tv.Type().Elem())
	snap.Elem().Set(clone(tv.Elem()))
	return snap.Interface(), nil
}

// clone returns a copy of v in which exported structs, arrays, slices
// and maps are copied deeply. Pointers, interfaces, funcs and chans are
// kept as is, so that references to other objects are restored as
// references to the same objects.
func clone(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Struct:
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		for i := range cp.NumField() {
			if f := cp.Field(i); f.CanSet() {
				f.Set(clone(v.Field(i)))
			}
		}
		return cp
	case reflect.Array:
		cp := reflect.New(v.Type()).Elem()
		for i := range v.Len() {
			cp.Index(i).Set(clone(v.Index(i)))
		}
		return cp
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			cp.Index(i).Set(clone(v.Index(i)))
		}
		return cp
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), clone(iter.Value()))
		}
		return cp
	}
	return v
}

// Save records the current state of the given target, which must be a
// pointer, before the given action changes it. Any records that could
// have been redone are discarded.
func (um *Mgr) Save(action string, target any) error {
	snap, err := snapshot(target)
	if err != nil {
		return err
	}
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.MaxRecs == 0 {
		um.MaxRecs = DefaultMaxRecs
	}
	// recs will be [old..., Idx] after this
	um.Recs = append(um.Recs[:um.Idx+1], &Rec{Action: action, Target: target, Snapshot: snap})
	if len(um.Recs) > um.MaxRecs {
		um.Recs = um.Recs[len(um.Recs)-um.MaxRecs:]
	}
	um.Idx = len(um.Recs) - 1
	return nil
}

// swap restores the snapshot of the given record into its target,
// keeping the replaced state as the new snapshot.
func (um *Mgr) swap(rec *Rec) {
	cur, err := snapshot(rec.Target)
	if err != nil {
		slog.Error("undo: could not record current state", "action", rec.Action, "err", err)
		return
	}
	restore(reflect.ValueOf(rec.Target).Elem(), reflect.ValueOf(rec.Snapshot).Elem())
	rec.Snapshot = cur
}

// restore sets the settable parts of to from the snapshot value from,
// recursing into structs so that unexported state is left in place.
func restore(to, from reflect.Value) {
	if to.Kind() != reflect.Struct {
		to.Set(from)
		return
	}
	for i := range to.NumField() {
		f := to.Field(i)
		switch {
		case f.Kind() == reflect.Struct:
			restore(f, from.Field(i))
		case f.CanSet():
			f.Set(from.Field(i))
		}
	}
}

// IsUndoAvail returns true if there is at least one undo record available.
func (um *Mgr) IsUndoAvail() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Idx >= 0
}

// IsRedoAvail returns true if there is at least one redo record available.
func (um *Mgr) IsRedoAvail() bool {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	return um.Idx < len(um.Recs)-1
}

// Undo restores the state recorded at the current index, decrements the
// index, and returns the action that was undone. If already at the start
// (Idx = -1) it returns "".
func (um *Mgr) Undo() string {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Idx < 0 {
		return ""
	}
	rec := um.Recs[um.Idx]
	um.swap(rec)
	um.Idx--
	return rec.Action
}

// Redo re-applies the action at the next index and returns it,
// returning "" if already at end of saved records.
func (um *Mgr) Redo() string {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	if um.Idx >= len(um.Recs)-1 {
		return ""
	}
	um.Idx++
	rec := um.Recs[um.Idx]
	um.swap(rec)
	return rec.Action
}

// Reset resets the undo state
func (um *Mgr) Reset() {
	um.Mu.Lock()
	defer um.Mu.Unlock()
	um.Recs = nil
	um.Idx = -1
}
