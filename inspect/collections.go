// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inspect

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/deepinspect/base/labels"
	"cogentcore.org/deepinspect/base/reflectx"
	"cogentcore.org/deepinspect/surface"
)

// pages draws a foldout for each page of n elements and calls draw
// with the element range of the open page.
func (in *Inspector) pages(n int, ps *PageState, depth int, draw func(start, end int)) {
	size := max(in.Settings.PageSize, 1)
	for p := 0; p*size < n; p++ {
		start, end := p*size, min((p+1)*size, n)
		open := !ps.IsFolded(p)
		if in.Surface.Foldout(labels.PageTitle(start, end), open, depth) != open {
			ps.Toggle(p)
		}
		if !ps.IsFolded(p) {
			draw(start, end)
		}
	}
}

// elementEdit is an edit of a list element or map entry that is
// applied after drawing all of the elements.
type elementEdit struct {
	index  int
	key    reflect.Value
	value  reflect.Value
	remove bool
}

// drawList draws the given slice or array and returns the new slice
// if its length changed.
func (in *Inspector) drawList(s slot, v reflect.Value, state *ShowState, owner reflect.Type, stack, depth int) (reflect.Value, bool) {
	changed := false
	isSlice := v.Kind() == reflect.Slice
	et := v.Type().Elem()
	editable := !in.Disabled.Active()
	if isSlice {
		res, ch := in.Surface.Field("Size", surface.Int, int64(v.Len()), surface.FieldOptions{Indent: depth})
		if ch && editable {
			if size, err := reflectx.Convert(res, reflect.TypeFor[int]()); err == nil {
				nv, err := reflectx.SliceResize(v, max(int(size.Int()), 0), func() reflect.Value { return in.Classifier.NewValue(et) })
				if err == nil {
					v, changed = nv, true
				}
			}
		}
		if in.Surface.Button("Add", depth) && editable {
			if in.Classifier.CanCreate(et) {
				if nv, err := reflectx.SliceAppend(v, in.Classifier.NewValue(et)); err == nil {
					v, changed = nv, true
				}
			} else {
				in.Logger.Warn(fmt.Sprintf("Can not create a new element of type %v", et))
			}
		}
		if in.Surface.Button("Clear", depth) && editable &&
			in.Surface.Confirm(WarningTitle, "You're going to clear this list.", "Yes", "No") {
			v, changed = reflect.MakeSlice(v.Type(), 0, 0), true
		}
	} else {
		in.Surface.Label("Size: "+strconv.Itoa(v.Len()), depth)
	}

	var edits []elementEdit
	in.pages(v.Len(), state.Page(s.index), depth, func(start, end int) {
		for i := start; i < end; i++ {
			nv, ch := in.drawSlot(slot{name: "Element " + strconv.Itoa(i), raw: true, typ: et, value: v.Index(i), index: i, editable: s.editable}, owner, stack+1, depth+1)
			if ch {
				edits = append(edits, elementEdit{index: i, value: nv})
			}
		}
	})
	if len(edits) == 0 || !editable {
		return v, changed
	}
	av, copied := reflectx.Addressable(v)
	in.recordUndo("Set " + s.name)
	for _, e := range edits {
		cv, err := reflectx.Convert(e.value, et)
		if err != nil {
			in.diagnose(fmt.Errorf("%w: element %d: %w", ErrUncommittable, e.index, err))
			continue
		}
		av.Index(e.index).Set(cv)
	}
	return av, changed || copied
}

// drawMap draws the given map, editing it in place.
func (in *Inspector) drawMap(s slot, v reflect.Value, state *ShowState, owner reflect.Type, stack, depth int) (reflect.Value, bool) {
	mt := v.Type()
	editable := !in.Disabled.Active()
	ds := state.Dict(s.index)
	in.Surface.Label("Size: "+strconv.Itoa(v.Len()), depth)
	if in.Surface.Button("Add", depth) && editable {
		ds.Show = !ds.Show
	}
	if in.Surface.Button("Clear", depth) && editable &&
		in.Surface.Confirm(WarningTitle, "You're going to clear this dictionary.", "Yes", "No") {
		in.recordUndo("Clear " + s.name)
		reflectx.MapClear(v)
	}
	if ds.Show && editable {
		in.drawStaging(ds, v, owner, stack, depth)
	}

	keys := reflectx.MapKeysSorted(v)
	var edits []elementEdit
	in.pages(len(keys), state.Page(s.index), depth, func(start, end int) {
		for i := start; i < end; i++ {
			k := keys[i]
			in.Surface.BeginBox()
			in.drawSlot(slot{name: "Key", raw: true, typ: mt.Key(), value: k, index: i}, owner, stack+1, depth+1)
			nv, ch := in.drawSlot(slot{name: "Value", raw: true, typ: mt.Elem(), value: v.MapIndex(k), index: i, editable: s.editable}, owner, stack+1, depth+1)
			if ch {
				edits = append(edits, elementEdit{index: i, key: k, value: nv})
			}
			if in.Surface.Button("Remove", depth) && editable &&
				in.Surface.Confirm(WarningTitle, "You're going to remove this key.", "Yes", "No") {
				edits = append(edits, elementEdit{index: i, key: k, remove: true})
			}
			in.Surface.EndBox()
		}
	})
	if len(edits) == 0 || !editable {
		return v, false
	}
	in.recordUndo("Set " + s.name)
	for _, e := range edits {
		if e.remove {
			reflectx.MapDelete(v, e.key)
			continue
		}
		cv, err := reflectx.Convert(e.value, mt.Elem())
		if err != nil {
			in.diagnose(fmt.Errorf("%w: value of key %v: %w", ErrUncommittable, reflectx.ToString(e.key), err))
			continue
		}
		v.SetMapIndex(e.key, cv)
	}
	return v, false
}

// drawStaging draws the panel for adding a new entry to a map.
func (in *Inspector) drawStaging(ds *DictState, v reflect.Value, owner reflect.Type, stack, depth int) {
	mt := v.Type()
	if !ds.Key.IsValid() {
		ds.Key = in.Classifier.NewValue(mt.Key())
	}
	if !ds.Value.IsValid() {
		ds.Value = in.Classifier.NewValue(mt.Elem())
	}
	in.Surface.BeginBox()
	if nk, ch := in.drawSlot(slot{name: "Key (" + labels.FriendlyTypeName(mt.Key()) + "):", raw: true, typ: mt.Key(), value: ds.Key, editable: true}, owner, stack, depth); ch {
		ds.Key = nk
	}
	if nv, ch := in.drawSlot(slot{name: "Value (" + labels.FriendlyTypeName(mt.Elem()) + "):", raw: true, typ: mt.Elem(), value: ds.Value, index: 1, editable: true}, owner, stack, depth); ch {
		ds.Value = nv
	}
	if in.Surface.Button("Add New Object", depth) {
		if !reflectx.MapHas(v, ds.Key) {
			in.recordUndo("Add")
		}
		if err := reflectx.MapAdd(v, ds.Key, ds.Value); err != nil {
			in.Logger.Warn(err.Error())
		} else {
			ds.Reset()
			ds.Show = false
		}
	}
	in.Surface.EndBox()
}
